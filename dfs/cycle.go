// Package dfs — directed cycle extraction.
//
// FindCycle walks out-edges from start with parent pointers and three-color
// marking. The first edge v → u that lands on a Gray vertex u closes a
// directed cycle; it is rebuilt by walking parents from v back to u.
//
// The returned slice lists the cycle against the edge direction:
//
//	[u, v, parent(v), …, child of u on the path]
//
// so every element's parent (the vertex with an edge into it) is the next
// element, and the last element's parent is the first. If no Gray vertex is
// met the reachable part is a tree and [start] is returned.
//
// The traversal assumes at most one directed cycle is reachable from start.
//
// Complexity: O(V + E) time, O(V) memory.
package dfs

// FindCycle returns the directed cycle reachable from start, or [start].
func (g *DirectedGraph) FindCycle(start int) []int {
	if !g.HasVertex(start) {
		return []int{start}
	}

	var (
		state  = make(map[int]int)
		parent = make(map[int]int)
		stack  = []frame{{v: start}}
	)
	state[start] = Gray

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(g.adj[top.v]) {
			state[top.v] = Black
			stack = stack[:len(stack)-1]
			continue
		}
		v := top.v
		u := g.adj[v][top.next]
		top.next++

		switch state[u] {
		case White:
			state[u] = Gray
			parent[u] = v
			stack = append(stack, frame{v: u})
		case Gray:
			return rebuild(u, v, parent)
		}
	}

	return []int{start}
}

// rebuild walks parent pointers from v up to u.
func rebuild(u, v int, parent map[int]int) []int {
	cyc := []int{u}
	for next := v; next != u; next = parent[next] {
		cyc = append(cyc, next)
	}

	return cyc
}

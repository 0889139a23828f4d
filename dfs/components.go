// Package dfs — weak-component representatives.
//
// FindComponents runs a colored depth-first search from every unvisited
// vertex in insertion order. Each new traversal root is tentatively a
// representative. Whenever a traversal reaches a vertex that is already
// Black, that vertex loses representative status: something else reaches
// it, so it cannot be the entry point of its component.
//
// On graphs where every vertex has in-degree ≤ 1 (each weak component is a
// tree hanging off at most one directed cycle) the survivors are exactly
// one vertex per component: the tree root, or a vertex of the cycle, from
// which the whole component is reachable. Meeting a Gray vertex is the
// cycle closing on itself and does not demote anything.
//
// Complexity: O(V + E) time, O(V) memory (explicit stack, no recursion).
package dfs

// FindComponents returns one representative per weakly connected component,
// in insertion order.
func (g *DirectedGraph) FindComponents() []int {
	var (
		state = make(map[int]int, len(g.order))
		rep   = make(map[int]bool)
		stack []frame
	)

	for _, root := range g.order {
		if state[root] != White {
			continue
		}
		rep[root] = true

		// 1) Push the root and mark it Gray.
		state[root] = Gray
		stack = append(stack[:0], frame{v: root})

		// 2) Iterative DFS over out-neighbors.
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(g.adj[top.v]) {
				state[top.v] = Black
				stack = stack[:len(stack)-1]
				continue
			}
			u := g.adj[top.v][top.next]
			top.next++

			switch state[u] {
			case White:
				state[u] = Gray
				stack = append(stack, frame{v: u})
			case Black:
				// Reached from elsewhere after it finished: not an entry point.
				delete(rep, u)
			}
		}
	}

	out := make([]int, 0, len(rep))
	for _, v := range g.order {
		if rep[v] {
			out = append(out, v)
		}
	}

	return out
}

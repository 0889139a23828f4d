package dfs

// PostOrder returns the vertices reachable from start in depth-first
// post-order: every vertex appears after all of its descendants. Children
// are explored in insertion order. Vertices already on the stack are not
// re-entered, so a cycle cannot loop the traversal.
//
// Complexity: O(V + E) time, O(V) memory.
func (g *DirectedGraph) PostOrder(start int) []int {
	if !g.HasVertex(start) {
		return nil
	}

	var (
		state = map[int]int{start: Gray}
		stack = []frame{{v: start}}
		out   []int
	)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(g.adj[top.v]) {
			state[top.v] = Black
			out = append(out, top.v)
			stack = stack[:len(stack)-1]
			continue
		}
		u := g.adj[top.v][top.next]
		top.next++
		if state[u] == White {
			state[u] = Gray
			stack = append(stack, frame{v: u})
		}
	}

	return out
}

package bipartite

// New returns an empty bipartite graph.
func New() *Graph {
	return &Graph{
		adj:    make(map[int][]int),
		labels: make(map[int]map[int]int),
	}
}

// AddEdge connects first-part vertex first to second-part vertex second.
// When the pair already exists the first label is kept.
func (g *Graph) AddEdge(first, second, label int) {
	ls, ok := g.labels[first]
	if !ok {
		ls = make(map[int]int)
		g.labels[first] = ls
		g.order = append(g.order, first)
	}
	if _, dup := ls[second]; dup {
		return
	}
	ls[second] = label
	g.adj[first] = append(g.adj[first], second)
}

// FirstPart returns the first-part vertices in insertion order.
func (g *Graph) FirstPart() []int {
	return append([]int(nil), g.order...)
}

// Size returns the number of edges.
func (g *Graph) Size() int {
	n := 0
	for _, ns := range g.adj {
		n += len(ns)
	}

	return n
}

// FindOptimalMatching returns a maximum matching keyed by second-part vertex.
func (g *Graph) FindOptimalMatching() map[int]Match {
	var (
		match   = make(map[int]int) // second → first
		matched = g.greedy(match)
		visited = make(map[int]bool)
	)

	for _, f := range g.order {
		if matched[f] {
			continue
		}
		if g.augment(f, visited, match) {
			matched[f] = true
			visited = make(map[int]bool)
		}
	}

	out := make(map[int]Match, len(match))
	for s, f := range match {
		out[s] = Match{First: f, Label: g.labels[f][s]}
	}

	return out
}

// greedy assigns every first-part vertex its first unused neighbor.
func (g *Graph) greedy(match map[int]int) map[int]bool {
	matched := make(map[int]bool, len(g.order))
	for _, f := range g.order {
		for _, s := range g.adj[f] {
			if _, taken := match[s]; !taken {
				match[s] = f
				matched[f] = true
				break
			}
		}
	}

	return matched
}

// augment searches an alternating path from the unmatched vertex root to a
// free second-part vertex and flips it. The path is kept on an explicit
// stack; via records the second-part vertex each stacked vertex was
// reached through.
func (g *Graph) augment(root int, visited map[int]bool, match map[int]int) bool {
	type step struct {
		first int
		next  int
	}
	if visited[root] {
		return false
	}
	visited[root] = true

	var (
		stack = []step{{first: root}}
		via   = make(map[int]int)
	)
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(g.adj[top.first]) {
			stack = stack[:len(stack)-1]
			continue
		}
		s := g.adj[top.first][top.next]
		top.next++

		owner, taken := match[s]
		if !taken {
			// Flip the path: the top takes s, every ancestor takes the
			// second-part vertex its child was reached through.
			match[s] = stack[len(stack)-1].first
			for i := len(stack) - 1; i > 0; i-- {
				match[via[stack[i].first]] = stack[i-1].first
			}
			return true
		}
		if visited[owner] {
			continue
		}
		visited[owner] = true
		via[owner] = s
		stack = append(stack, step{first: owner})
	}

	return false
}

package dfs

// NewDirectedGraph returns an empty graph.
func NewDirectedGraph() *DirectedGraph {
	return &DirectedGraph{
		adj:   make(map[int][]int),
		edges: make(map[[2]int]struct{}),
		in:    make(map[int]int),
	}
}

// AddEdge inserts from → to, adding both vertices if needed.
// Adding the same edge twice has no effect.
func (g *DirectedGraph) AddEdge(from, to int) {
	g.AddVertex(from)
	g.AddVertex(to)
	key := [2]int{from, to}
	if _, dup := g.edges[key]; dup {
		return
	}
	g.edges[key] = struct{}{}
	g.adj[from] = append(g.adj[from], to)
	g.in[to]++
}

// AddVertex inserts an isolated vertex; existing vertices are left alone.
func (g *DirectedGraph) AddVertex(v int) {
	if _, ok := g.adj[v]; ok {
		return
	}
	g.adj[v] = nil
	g.order = append(g.order, v)
}

// HasVertex reports whether v was added.
func (g *DirectedGraph) HasVertex(v int) bool {
	_, ok := g.adj[v]
	return ok
}

// Vertices returns all vertices in insertion order.
func (g *DirectedGraph) Vertices() []int {
	return append([]int(nil), g.order...)
}

// Neighbors returns the out-neighbors of v in insertion order.
func (g *DirectedGraph) Neighbors(v int) []int {
	return append([]int(nil), g.adj[v]...)
}

// InDegree returns the number of edges entering v.
func (g *DirectedGraph) InDegree(v int) int { return g.in[v] }

// EdgeCount returns the number of distinct edges.
func (g *DirectedGraph) EdgeCount() int { return len(g.edges) }

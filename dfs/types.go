// Package dfs defines the directed graph used to plan cycle fusions and the
// vertex coloring shared by its traversals.
package dfs

// Vertex visitation state during a traversal.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the traversal stack (visiting).
	Black        // Black: the vertex and all its descendants have been fully explored.
)

// DirectedGraph is a sparse directed graph over int vertices.
//
// Vertices and out-neighbors keep insertion order, so every traversal is
// deterministic for a given sequence of AddEdge calls. Parallel edges are
// collapsed.
type DirectedGraph struct {
	order []int               // vertices in first-seen order
	adj   map[int][]int       // out-neighbors in insertion order
	edges map[[2]int]struct{} // dedupe set for (from, to)
	in    map[int]int         // in-degree per vertex
}

// frame is one explicit-stack entry: a vertex and the index of the next
// out-neighbor to examine.
type frame struct {
	v    int
	next int
}

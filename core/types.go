// Package core defines the Graph, Weight and Edge types shared by every
// cycletsp package, together with the sentinel errors for graph construction.
//
// The Graph is a complete undirected graph on vertices 0..n-1 whose edges
// carry one of two weights: Light (1) or Heavy (2). It is built once and
// then only read.
//
// Errors:
//
//	ErrEmptyGraph        - graph order is not positive.
//	ErrVertexOutOfRange  - vertex index outside [0..n-1].
//	ErrLoopNotAllowed    - an edge from a vertex to itself was requested.
//	ErrBadWeight         - weight outside the {1,2} domain.
//	ErrNonSquare         - weight matrix is not n×n.
//	ErrAsymmetry         - weight matrix differs across the diagonal.
//	ErrIncompleteGraph   - some vertex pair has no weight assigned.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyGraph indicates a graph with no vertices was requested.
	ErrEmptyGraph = errors.New("core: graph must have at least one vertex")

	// ErrVertexOutOfRange indicates an operation referenced a vertex outside [0..n-1].
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a weight other than Light or Heavy.
	ErrBadWeight = errors.New("core: weight must be 1 or 2")

	// ErrNonSquare indicates the weight matrix is not square.
	ErrNonSquare = errors.New("core: weight matrix is not square")

	// ErrAsymmetry indicates w[i][j] != w[j][i] for some pair.
	ErrAsymmetry = errors.New("core: weight matrix is not symmetric")

	// ErrIncompleteGraph indicates that at least one vertex pair was never assigned a weight.
	ErrIncompleteGraph = errors.New("core: graph is not complete")
)

// Weight is the class of an edge.
type Weight int

const (
	// NoEdge is reported for pairs that were never set, including u == v.
	NoEdge Weight = 0

	// Light edges are preferred in the final tour.
	Light Weight = 1

	// Heavy edges are the ones the algorithm tries to avoid.
	Heavy Weight = 2
)

// Valid reports whether w is Light or Heavy.
func (w Weight) Valid() bool {
	return w == Light || w == Heavy
}

// String implements fmt.Stringer.
func (w Weight) String() string {
	switch w {
	case Light:
		return "light"
	case Heavy:
		return "heavy"
	default:
		return "none"
	}
}

// Edge is an ordered vertex pair. Cycles use it for directed cycle edges
// (From → To) and for connected edges (From inside the cycle, To outside).
type Edge struct {
	From int
	To   int
}

// Graph is a complete undirected graph with weights in {Light, Heavy}.
//
// Weights live in a dense n×n table; the diagonal stays NoEdge.
// Graph is not safe for concurrent mutation, but read-only use after
// construction is safe.
type Graph struct {
	n int
	w [][]Weight
}

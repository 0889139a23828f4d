package cycle

import (
	"errors"

	"github.com/katalvlaran/cycletsp/core"
)

var (
	// ErrEmptyCycle is returned when a cycle is built from an empty sequence.
	ErrEmptyCycle = errors.New("cycle: empty vertex sequence")

	// ErrDuplicateVertex is returned when a vertex appears twice in a sequence.
	ErrDuplicateVertex = errors.New("cycle: duplicate vertex")

	// ErrVertexNotInCycle is returned when an edge is rewired at a vertex the cycle does not own.
	ErrVertexNotInCycle = errors.New("cycle: vertex not in cycle")

	// ErrNoConnectedEdge is returned when the connected edge is read before it was set.
	ErrNoConnectedEdge = errors.New("cycle: connected edge not set")

	// ErrBrokenCycle is returned by Validate when the successor/predecessor
	// maps do not describe exactly one closed orbit.
	ErrBrokenCycle = errors.New("cycle: structure is not a single cycle")
)

// Weigher reports edge weights. *core.Graph satisfies it.
type Weigher interface {
	GetEdgeWeight(u, v int) core.Weight
}

// Cycle is a mutable simple cycle stored as mutual successor/predecessor maps.
//
// Invariants (checked by Validate):
//   - succ and pred are exact inverses;
//   - following succ from any vertex visits every vertex once and returns;
//   - heavy holds exactly the origins u whose edge (u, succ[u]) is heavy.
//
// A Cycle with one vertex has a self-loop, which is never heavy.
type Cycle struct {
	succ  map[int]int
	pred  map[int]int
	heavy map[int]struct{}

	connected    core.Edge // (inside, outside) splice point chosen by matching
	hasConnected bool
}

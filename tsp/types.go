package tsp

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cycletsp/cycle"
)

// Sentinel errors. Structural violations during fusion are reported with
// these instead of crashing; they indicate an input that breaks the
// algorithm's assumptions (see Approximate).
var (
	// ErrEmptyCover is returned when the cycle cover has no cycles.
	ErrEmptyCover = errors.New("tsp: empty cycle cover")

	// ErrEmptyCycle is returned when the cover contains an empty vertex list.
	ErrEmptyCycle = errors.New("tsp: empty cycle in cover")

	// ErrVertexOutOfRange is returned when a cover or tour names a vertex outside [0..n-1].
	ErrVertexOutOfRange = errors.New("tsp: vertex out of range")

	// ErrNotPartition is returned when the cover repeats or misses a vertex.
	ErrNotPartition = errors.New("tsp: cycle cover is not a partition of the vertices")

	// ErrNoConnectedEdge is returned when a matched fusion meets a cycle
	// that was never given a connected edge.
	ErrNoConnectedEdge = cycle.ErrNoConnectedEdge

	// ErrHeavySplice is returned when a splice point that must be light is heavy.
	ErrHeavySplice = errors.New("tsp: splice edge is not light")

	// ErrBrokenSplice is returned when splice vertices are not where a fusion expects them.
	ErrBrokenSplice = errors.New("tsp: splice vertices are not adjacent or not owned by the fused cycles")

	// ErrInvariant is returned by the optional invariant checks.
	ErrInvariant = errors.New("tsp: structural invariant violated")

	// ErrDimensionMismatch is returned by tour utilities on wrong lengths or repeated vertices.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange is returned when a rotation start is not in the tour.
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")
)

// FusionKind names a fusion strategy.
type FusionKind int

const (
	// TwoCycles breaks the maximum-weight edge of both cycles and cross-connects them.
	TwoCycles FusionKind = iota

	// TwoCyclesWithRoot splices a child into a root through one light edge.
	TwoCyclesWithRoot

	// ThreeCycles fuses a matched chain a → b → c around its middle cycle.
	ThreeCycles

	// ThreeCyclesWithRoot splices two children into two adjacent root vertices.
	ThreeCyclesWithRoot

	// Subtree splices any number of children into one root.
	Subtree
)

// String implements fmt.Stringer.
func (k FusionKind) String() string {
	switch k {
	case TwoCycles:
		return "two-cycles"
	case TwoCyclesWithRoot:
		return "two-cycles-with-root"
	case ThreeCycles:
		return "three-cycles"
	case ThreeCyclesWithRoot:
		return "three-cycles-with-root"
	case Subtree:
		return "subtree"
	default:
		return "unknown"
	}
}

// Stats reports what each phase did.
type Stats struct {
	InitialCycles int // cycles in the input cover
	InitialBad    int // input cycles with at least one heavy edge
	Collapsed     int // bad-with-bad fusions
	Absorbed      int // good cycles spliced into the bad cycle through a light edge
	Matched       int // good cycles that received a connected edge
	Components    int // weak components of the matching digraph
	Terminal      int // fusions done by the final accumulation

	// Fusions counts every fusion by kind. Group fusions (Subtree,
	// ThreeCycles) are counted together with the primitives they run.
	Fusions map[FusionKind]int
}

// Result is the outcome of Approximate.
type Result struct {
	// Tour visits every vertex exactly once, starting at vertex 0.
	// The closing edge Tour[n-1] → Tour[0] is implicit.
	Tour []int

	// Cost is the total weight of the closed tour.
	Cost int

	// HeavyEdges is the number of heavy edges in the closed tour.
	HeavyEdges int

	Stats Stats
}

// Options configures Approximate.
type Options struct {
	// Logger receives one Debug entry per phase. Defaults to a discarding logger.
	Logger logrus.FieldLogger

	// CheckInvariants verifies, after every fusion, that the cycles still
	// partition the vertices, that every cycle is structurally valid and that
	// the bad set matches the cycles' heavy edges.
	CheckInvariants bool
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with a discarding logger and no invariant checks.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Logger: l}
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("tsp: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithInvariantChecks enables or disables the per-fusion invariant checks.
func WithInvariantChecks(on bool) Option {
	return func(o *Options) {
		o.CheckInvariants = on
	}
}

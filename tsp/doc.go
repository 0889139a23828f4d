// Package tsp approximates the Travelling Salesman Problem on complete
// graphs whose edges weigh 1 (light) or 2 (heavy), starting from a cycle
// cover of the vertices.
//
// Approximate merges the cover into one Hamiltonian cycle: bad cycles
// (those with a heavy edge) are collapsed into one, good cycles are spliced
// into it through light edges where possible, the rest are grouped by a
// maximum bipartite matching of light edges and fused group by group, and
// whatever is left is joined at the end.
//
// Usage:
//
//	res, err := tsp.Approximate(weights, cover,
//		tsp.WithLogger(logrus.StandardLogger()),
//		tsp.WithInvariantChecks(true),
//	)
//
// Result.Tour starts at vertex 0; its cost counts the closing edge.
//
// The package also exposes tour utilities (ValidatePermutation, TourCost,
// HeavyEdgeCount, RotateTourToStart, EqualToursModuloRotation,
// EqualCyclesUpToDirection) usable on any tour over a core.Graph.
//
// The result is always a valid tour; its quality depends on the cover.
// Running time is polynomial: O(n²) scans plus the matching.
package tsp

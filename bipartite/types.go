// Package bipartite provides a bipartite graph with maximum-cardinality
// matching.
//
// First-part vertices carry, per second-part neighbor, an integer label;
// matching results report the label of every chosen edge. The cycletsp
// orchestrator uses cycle ids as the first part, graph vertices as the
// second part and the internal endpoint of the light edge as the label.
//
// FindOptimalMatching:
//
//  1. A greedy pass gives each first-part vertex its first free neighbor.
//  2. Every first-part vertex still unmatched gets one augmenting-path
//     search (Kuhn). The visited set is shared between attempts and reset
//     only after an augmentation succeeds: as long as the matching does not
//     change, a vertex that failed once cannot succeed again.
//
// Keeping a single visited set for the whole call would be cheaper but can
// stop short of a maximum matching once an augmentation has rewired the
// paths it blocks; the reset trades that for maximality.
//
// The result is a maximum matching. Iteration follows insertion order, so a
// run is reproducible, but callers must not rely on which of several
// maximum matchings is returned.
//
// Complexity: O(V·E) worst case; the greedy pass is O(E).
package bipartite

// Match describes the first-part vertex matched to a second-part vertex.
type Match struct {
	// First is the matched first-part vertex.
	First int

	// Label is the label stored on the edge (First, second).
	Label int
}

// Graph is a bipartite graph from first-part to second-part vertices.
// The two parts are independent int namespaces.
type Graph struct {
	order  []int               // first-part vertices in insertion order
	adj    map[int][]int       // first → seconds in insertion order
	labels map[int]map[int]int // first → second → label
}

// Package cycletsp approximates the traveling salesman problem on complete
// graphs whose edge weights are 1 (light) or 2 (heavy), starting from a
// partition of the vertices into disjoint cycles.
//
// 🚀 What is cycletsp?
//
//	A deterministic tour builder that merges a cycle cover into one
//	Hamiltonian cycle while keeping the number of heavy edges low:
//		• Bad cycles (those holding a heavy edge) are collapsed into one
//		• Good cycles with a light edge to a heavy origin are absorbed
//		• The rest are matched, grouped into components and fused
//		• Whatever remains is joined into the final tour
//
// Layout:
//
//	core/      — 1/2-weighted complete graph, validation
//	cycle/     — successor/predecessor cycle with splicing
//	dfs/       — directed graph, components, cycle search, post-order
//	bipartite/ — maximum matching with labeled edges
//	tsp/       — the approximation, tour and cost utilities
//	builder/   — planted, perturbed and demo instances; YAML I/O
//	cmd/       — the cycletsp command (solve, generate, bench)
//
// Quick ASCII example, two light triangles joined by a light bridge 2─3:
//
//	0───1       3───4
//	 \ /  ····   \ /
//	  2─────────── 5
//
//	go install github.com/katalvlaran/cycletsp/cmd/cycletsp@latest
package cycletsp

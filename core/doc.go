// Package core provides the weighted graph every other cycletsp package reads.
//
// The graph is complete, undirected and binary-weighted:
//
//   - Vertices are the integers 0..n-1.
//   - Every unordered pair {u, v}, u != v, carries Light (1) or Heavy (2).
//   - The diagonal is unused and reports NoEdge.
//
// Construction:
//
//	g, err := core.NewGraph(n)      // empty table
//	err = g.AddEdge(u, v, core.Light)
//
//	g, err := core.FromMatrix(w)    // dense symmetric matrix, validated
//
// Lookups (GetEdgeWeight, IsLight, EdgesByVertex, LightNeighbors) are O(1)
// or O(n) and never mutate the graph.
//
// Complexity:
//
//   - NewGraph, FromMatrix: O(n²) time and memory.
//   - GetEdgeWeight:        O(1).
//   - EdgesByVertex:        O(n).
package core

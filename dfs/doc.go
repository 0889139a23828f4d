// Package dfs provides the directed graph and depth-first traversals that
// plan how matched cycles are grouped for fusion.
//
// What:
//
//   - DirectedGraph: sparse int-keyed digraph with insertion-ordered
//     vertices and out-neighbors (deterministic traversals).
//   - FindComponents: one representative vertex per weakly connected
//     component, chosen so that the whole component is reachable from it.
//   - FindCycle: the directed cycle reachable from a representative, or the
//     representative alone when its component is a tree.
//   - PostOrder: children-before-parent order for bottom-up tree reduction.
//
// Why:
//
//   - The matching phase links every matched cycle to exactly one parent,
//     so every vertex has in-degree ≤ 1 and every component is a set of
//     trees hanging off at most one directed cycle. The traversals here rely
//     on that shape; they do not enumerate multiple cycles.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers.
//   - DirectedGraph: the graph itself.
//
// All traversals use explicit stacks, so depth is bounded by memory rather
// than by the goroutine stack.
//
// Complexity:
//
//   - FindComponents, FindCycle, PostOrder: Time O(V+E), Memory O(V).
package dfs

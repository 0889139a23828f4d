// Package tsp - decomposition of the matching digraph.
//
// Nodes are cycle ids. An edge parent → child means the child's connected
// edge lands in the parent, so every node has at most one parent and each
// weak component is either a tree or a single directed cycle with trees
// hanging off it. Every component is cut into vertex-disjoint groups, each
// fused with one strategy:
//
//   - trees: post-order; a node whose children include leaves absorbs
//     them (Subtree) and stops being a leaf itself,
//   - the directed cycle: anchors (cycle nodes with leaf children) absorb
//     their leaves plus the cycle node just below them when the run of
//     plain nodes below is odd; the rest of each run is fused in pairs
//     (TwoCyclesWithRoot),
//   - a cycle without anchors: pairs, plus one chain (ThreeCycles) when
//     its length is odd.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/cycletsp/core"
	"github.com/katalvlaran/cycletsp/dfs"
)

// decompose fuses every component of dg.
func (a *approximation) decompose(dg *dfs.DirectedGraph) error {
	reps := dg.FindComponents()
	a.stats.Components = len(reps)

	for _, rep := range reps {
		ring := dg.FindCycle(rep)
		if len(ring) == 1 {
			if _, err := a.reduce(dg, rep); err != nil {
				return err
			}
			continue
		}
		if err := a.resolveRing(dg, ring); err != nil {
			return err
		}
	}

	return nil
}

// reduce fuses the tree below top bottom-up and reports whether top is
// still a leaf afterwards. top must not lie on a directed cycle.
func (a *approximation) reduce(dg *dfs.DirectedGraph, top int) (bool, error) {
	leaf := make(map[int]bool)
	for _, v := range dg.PostOrder(top) {
		var leaves []int
		for _, ch := range dg.Neighbors(v) {
			if leaf[ch] {
				leaves = append(leaves, ch)
			}
		}
		if len(leaves) == 0 {
			leaf[v] = true
			continue
		}
		if err := a.fuse(fusion{kind: Subtree, root: v, children: leaves}); err != nil {
			return false, err
		}
	}

	return leaf[top], nil
}

// resolveRing fuses a component built around the directed cycle ring, where
// the parent of ring[j] is ring[j+1] (cyclically).
func (a *approximation) resolveRing(dg *dfs.DirectedGraph, ring []int) error {
	var (
		m      = len(ring)
		onRing = make(map[int]bool, m)
		leaves = make([][]int, m)
		anchor = make([]bool, m)
		nAnch  int
	)
	for _, z := range ring {
		onRing[z] = true
	}

	// 1) Reduce the trees hanging off the ring; keep the leaves.
	for j, z := range ring {
		for _, ch := range dg.Neighbors(z) {
			if onRing[ch] {
				continue
			}
			isLeaf, err := a.reduce(dg, ch)
			if err != nil {
				return err
			}
			if isLeaf {
				leaves[j] = append(leaves[j], ch)
			}
		}
		if len(leaves[j]) > 0 {
			anchor[j] = true
			nAnch++
		}
	}

	at := func(j int) int { return ((j % m) + m) % m }

	// 2) No anchors: pairs, with one chain for odd rings.
	if nAnch == 0 {
		lo := 0
		if m%2 == 1 {
			if err := a.fuse(fusion{kind: ThreeCycles, root: ring[1], children: []int{ring[0], ring[2]}}); err != nil {
				return err
			}
			lo = 3
		}
		for t := lo; t+1 < m; t += 2 {
			if err := a.fusePair(ring[t], ring[t+1]); err != nil {
				return err
			}
		}

		return nil
	}

	// 3) Every anchor takes its leaves and, for an odd run below it, the
	// ring node directly below; the rest of the run is paired bottom-up.
	for b := 0; b < m; b++ {
		if !anchor[b] {
			continue
		}
		gap := 0
		for gap < m-1 && !anchor[at(b-1-gap)] {
			gap++
		}

		children := leaves[b]
		if gap%2 == 1 {
			children = append(children, ring[at(b-1)])
		}
		if err := a.fuse(fusion{kind: Subtree, root: ring[b], children: children}); err != nil {
			return err
		}

		for t := b - gap; t+1 <= b-1-gap%2; t += 2 {
			if err := a.fusePair(ring[at(t)], ring[at(t+1)]); err != nil {
				return err
			}
		}
	}

	return nil
}

// fusePair splices child into its matched parent through the child's
// connected edge.
func (a *approximation) fusePair(child, parent int) error {
	e, err := a.cycles[child].GetConnectedEdge()
	if err != nil {
		return fmt.Errorf("cycle %d: %w", child, err)
	}

	return a.fuse(fusion{kind: TwoCyclesWithRoot, root: parent, children: []int{child}, splices: []core.Edge{e}})
}

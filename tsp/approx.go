// Package tsp — cover-merging approximation for TSP(1,2).
//
// Approximate turns a cycle cover of a complete {1,2}-weighted graph into a
// single Hamiltonian cycle. A cycle is good when all its edges are light,
// bad otherwise. The pipeline:
//
//  1. Load the cover: one cycle per vertex list, owner[v] = cycle id.
//  2. Collapse: while two or more cycles are bad, fuse the two smallest bad
//     ids with TwoCycles (each loses a heavy edge, two new edges come in).
//  3. Absorb: while some heavy edge (h, h⁺) of the bad cycle has a light
//     neighbor w in a good cycle, splice that cycle in with the light edge
//     h → w. The heavy edge disappears, at most one heavy edge appears.
//  4. Match: bipartite graph between good cycles and the vertices of other
//     good cycles they reach through a light edge; a maximum matching gives
//     every matched cycle one connected edge (x inside, y outside).
//  5. Digraph: owner(y) → matched cycle for every matched pair. In-degree
//     is at most one, so components are trees or one directed cycle with
//     trees attached; decompose fuses them group by group (decompose.go).
//  6. Terminate: fuse every remaining cycle into the bad one with the
//     smallest id (or the smallest id overall) with TwoCycles, in
//     ascending id order.
//
// Determinism: cycles, vertices and neighbors are always visited in
// ascending order and ties go to the smallest id, so equal inputs give
// equal tours.
//
// Complexity: O(n²) for the light-edge scans plus O(V·E) for the matching,
// with V the number of cycles and E the number of light edges between
// cycles. Memory O(n + E).
//
// Errors: input errors from core (matrix shape and weights) and from
// validateCover; ErrNoConnectedEdge, ErrHeavySplice, ErrBrokenSplice and
// ErrInvariant if a fusion finds its preconditions broken.
package tsp

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cycletsp/bipartite"
	"github.com/katalvlaran/cycletsp/core"
	"github.com/katalvlaran/cycletsp/dfs"
)

// Approximate builds a Hamiltonian cycle for the weight matrix by merging
// the cycles of cover. weights must be a symmetric n×n matrix with entries
// in {1,2} off the diagonal; cover must partition {0..n-1} into vertex
// sequences, each read as a closed cycle.
func Approximate(weights [][]int, cover [][]int, opts ...Option) (Result, error) {
	g, err := core.FromMatrix(weights)
	if err != nil {
		return Result{}, err
	}

	return ApproximateGraph(g, cover, opts...)
}

// ApproximateGraph is Approximate for an already built graph. g must be complete.
func ApproximateGraph(g *core.Graph, cover [][]int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := g.Complete(); err != nil {
		return Result{}, err
	}
	if err := validateCover(cover, g.Order()); err != nil {
		return Result{}, err
	}

	a, err := newApproximation(g, cover, o)
	if err != nil {
		return Result{}, err
	}
	a.log.WithFields(logrus.Fields{
		"phase":    "load",
		"vertices": g.Order(),
		"cycles":   a.stats.InitialCycles,
		"bad":      a.stats.InitialBad,
	}).Debug("cycle cover loaded")

	if err = a.run(); err != nil {
		return Result{}, err
	}

	return a.result()
}

// run executes phases 2–6.
func (a *approximation) run() error {
	if a.opts.CheckInvariants {
		if err := a.checkInvariants(); err != nil {
			return err
		}
	}
	if err := a.collapseBad(); err != nil {
		return err
	}
	if err := a.absorbIntoBad(); err != nil {
		return err
	}
	dg := a.matchGood()
	if a.opts.CheckInvariants {
		if err := checkMatchDigraph(dg); err != nil {
			return err
		}
	}
	if err := a.decompose(dg); err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"phase":      "decompose",
		"components": a.stats.Components,
		"cycles":     len(a.cycles),
	}).Debug("matching digraph fused")

	return a.terminate()
}

// collapseBad fuses bad cycles pairwise until at most one remains.
func (a *approximation) collapseBad() error {
	for len(a.bad) > 1 {
		ids := a.badIDs()
		if err := a.fuse(fusion{kind: TwoCycles, root: ids[0], children: []int{ids[1]}}); err != nil {
			return err
		}
		a.stats.Collapsed++
	}
	a.log.WithFields(logrus.Fields{
		"phase":     "collapse",
		"collapsed": a.stats.Collapsed,
		"bad":       len(a.bad),
	}).Debug("bad cycles collapsed")

	return nil
}

// absorbIntoBad splices good cycles into the bad cycle through light edges
// leaving its heavy-edge origins, until no such edge is left.
func (a *approximation) absorbIntoBad() error {
	for {
		root, ok := a.badCycle()
		if !ok {
			break
		}
		h, w, found := a.findAbsorbable(root)
		if !found {
			break
		}
		if err := a.fuse(fusion{
			kind:     TwoCyclesWithRoot,
			root:     root,
			children: []int{a.owner[w]},
			splices:  []core.Edge{{From: w, To: h}},
		}); err != nil {
			return err
		}
		a.stats.Absorbed++
	}
	a.log.WithFields(logrus.Fields{
		"phase":    "absorb",
		"absorbed": a.stats.Absorbed,
		"cycles":   len(a.cycles),
	}).Debug("good cycles absorbed into the bad cycle")

	return nil
}

// findAbsorbable returns the first heavy origin h of the bad cycle with a
// light neighbor w in a good cycle, scanning both in ascending order.
func (a *approximation) findAbsorbable(root int) (h, w int, found bool) {
	for _, h = range a.cycles[root].HeavyOrigins() {
		for _, w = range a.g.LightNeighbors(h) {
			if id := a.owner[w]; id != root && a.cycles[id].IsGood() {
				return h, w, true
			}
		}
	}

	return 0, 0, false
}

// matchGood matches good cycles to vertices of other good cycles, records
// the connected edges and returns the digraph parent → child of the match.
func (a *approximation) matchGood() *dfs.DirectedGraph {
	bad, hasBad := a.badCycle()
	skip := func(id int) bool { return hasBad && id == bad }

	// 1) Light edges between distinct good cycles; label = the vertex u on
	// the first-part side, smallest first.
	bg := bipartite.New()
	var u, v, cu, cv int
	for u = 0; u < a.g.Order(); u++ {
		if cu = a.owner[u]; skip(cu) {
			continue
		}
		for _, v = range a.g.LightNeighbors(u) {
			if cv = a.owner[v]; cv == cu || skip(cv) {
				continue
			}
			bg.AddEdge(cu, v, u)
		}
	}

	// 2) Maximum matching, applied in ascending order of the matched vertex.
	matching := bg.FindOptimalMatching()
	matched := make([]int, 0, len(matching))
	for v = range matching {
		matched = append(matched, v)
	}
	sort.Ints(matched)

	dg := dfs.NewDirectedGraph()
	for _, v = range matched {
		m := matching[v]
		a.cycles[m.First].SetConnectedEdge(core.Edge{From: m.Label, To: v})
		dg.AddEdge(a.owner[v], m.First)
	}
	a.stats.Matched = len(matched)

	a.log.WithFields(logrus.Fields{
		"phase":      "match",
		"candidates": len(bg.FirstPart()),
		"edges":      bg.Size(),
		"matched":    a.stats.Matched,
		"arcs":       dg.EdgeCount(),
	}).Debug("good cycles matched")

	return dg
}

// terminate fuses every remaining cycle into one accumulator: the smallest
// bad id when there is one, the smallest id otherwise.
func (a *approximation) terminate() error {
	ids := a.ids()
	acc := ids[0]
	if bad := a.badIDs(); len(bad) > 0 {
		acc = bad[0]
	}
	for _, id := range ids {
		if id == acc {
			continue
		}
		if err := a.fuse(fusion{kind: TwoCycles, root: acc, children: []int{id}}); err != nil {
			return err
		}
		a.stats.Terminal++
	}
	a.log.WithFields(logrus.Fields{
		"phase":    "terminate",
		"terminal": a.stats.Terminal,
	}).Debug("remaining cycles fused")

	return nil
}

// result reads the final cycle from vertex 0 and prices it.
func (a *approximation) result() (Result, error) {
	if len(a.cycles) != 1 {
		return Result{}, fmt.Errorf("%d cycles left after termination: %w", len(a.cycles), ErrInvariant)
	}
	var last int
	for id := range a.cycles {
		last = id
	}
	c := a.cycles[last]
	if err := c.Validate(a.g); err != nil {
		return Result{}, fmt.Errorf("final cycle: %v: %w", err, ErrInvariant)
	}

	tour := c.Vertices()
	cost, err := TourCost(a.g, tour)
	if err != nil {
		return Result{}, err
	}
	a.log.WithFields(logrus.Fields{
		"phase": "result",
		"cost":  cost,
		"heavy": c.HeavyCount(),
	}).Debug("tour built")

	return Result{Tour: tour, Cost: cost, HeavyEdges: c.HeavyCount(), Stats: a.stats}, nil
}

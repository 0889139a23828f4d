package tsp

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cycletsp/core"
	"github.com/katalvlaran/cycletsp/cycle"
	"github.com/katalvlaran/cycletsp/dfs"
)

// approximation owns every live cycle of one run.
//
// Cycles are addressed by their index in the input cover. A fusion keeps
// the root's id and retires the absorbed ids, so ids stay stable for the
// whole run and owner never has to be renumbered.
type approximation struct {
	g      *core.Graph
	owner  []int                // vertex → id of the cycle holding it
	cycles map[int]*cycle.Cycle // live cycles
	bad    map[int]struct{}     // ids of live cycles with a heavy edge
	opts   Options
	log    logrus.FieldLogger
	stats  Stats
}

func newApproximation(g *core.Graph, cover [][]int, opts Options) (*approximation, error) {
	a := &approximation{
		g:      g,
		owner:  make([]int, g.Order()),
		cycles: make(map[int]*cycle.Cycle, len(cover)),
		bad:    make(map[int]struct{}),
		opts:   opts,
		log:    opts.Logger,
		stats:  Stats{Fusions: make(map[FusionKind]int)},
	}

	for id, seq := range cover {
		c, err := cycle.New(seq, g)
		if err != nil {
			return nil, fmt.Errorf("cycle %d: %w", id, err)
		}
		for _, v := range seq {
			a.owner[v] = id
		}
		a.cycles[id] = c
		if !c.IsGood() {
			a.bad[id] = struct{}{}
		}
	}
	a.stats.InitialCycles = len(a.cycles)
	a.stats.InitialBad = len(a.bad)

	return a, nil
}

// ids returns the live cycle ids in ascending order.
func (a *approximation) ids() []int {
	out := make([]int, 0, len(a.cycles))
	for id := range a.cycles {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// badIDs returns the bad cycle ids in ascending order.
func (a *approximation) badIDs() []int {
	out := make([]int, 0, len(a.bad))
	for id := range a.bad {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// badCycle returns the smallest bad id. Right after the collapse phase it is
// the only one; matched fusions in decompose may create more.
func (a *approximation) badCycle() (int, bool) {
	if len(a.bad) == 0 {
		return 0, false
	}

	return a.badIDs()[0], true
}

// absorb moves every vertex of child under root, unions the two cycles and
// retires child. The edges must already be rewired.
func (a *approximation) absorb(root, child int) {
	rc, cc := a.cycles[root], a.cycles[child]
	for _, v := range cc.Members() {
		a.owner[v] = root
	}
	rc.AddCycle(cc)
	delete(a.cycles, child)
	delete(a.bad, child)

	if rc.IsGood() {
		delete(a.bad, root)
	} else {
		a.bad[root] = struct{}{}
	}
}

// checkInvariants verifies that the live cycles partition the vertices,
// that owner agrees with them, that each one is a valid cycle and that the
// bad set is exactly the cycles with a heavy edge.
func (a *approximation) checkInvariants() error {
	seen := 0
	for _, id := range a.ids() {
		c := a.cycles[id]
		if err := c.Validate(a.g); err != nil {
			return fmt.Errorf("cycle %d: %v: %w", id, err, ErrInvariant)
		}
		for _, v := range c.Members() {
			if a.owner[v] != id {
				return fmt.Errorf("vertex %d in cycle %d but owned by %d: %w", v, id, a.owner[v], ErrInvariant)
			}
		}
		seen += c.Len()

		_, marked := a.bad[id]
		if marked == c.IsGood() {
			return fmt.Errorf("cycle %d good=%t, marked bad=%t: %w", id, c.IsGood(), marked, ErrInvariant)
		}
	}
	if seen != a.g.Order() {
		return fmt.Errorf("cycles hold %d of %d vertices: %w", seen, a.g.Order(), ErrInvariant)
	}
	for id := range a.bad {
		if _, ok := a.cycles[id]; !ok {
			return fmt.Errorf("retired cycle %d still marked bad: %w", id, ErrInvariant)
		}
	}

	return nil
}

// checkMatchDigraph verifies that every cycle has at most one parent in the
// matching digraph, so each component is a tree or a single ring with trees.
func checkMatchDigraph(dg *dfs.DirectedGraph) error {
	for _, v := range dg.Vertices() {
		if d := dg.InDegree(v); d > 1 {
			return fmt.Errorf("cycle %d has %d parents: %w", v, d, ErrInvariant)
		}
	}

	return nil
}

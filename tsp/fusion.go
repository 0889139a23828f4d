// Package tsp - cycle fusion.
//
// A fusion merges several live cycles into one by rewiring a constant
// number of edges per absorbed cycle. Every strategy is a value of the
// fusion variant below; fuse dispatches on its kind.
//
// Splice edges are (x, y) pairs with x in the absorbed cycle and y in the
// root. They come from the connected edges chosen by the matching phase,
// except when the absorption phase builds them itself, and must be light.
//
// Conventions used in the comments below: for a vertex v, v⁺ is its
// successor and v⁻ its predecessor in the cycle that holds it.
package tsp

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cycletsp/core"
)

// fusion is one merge step. root survives; children are retired.
// splices[i], when present, is the splice edge of children[i]; otherwise the
// child's connected edge is used.
type fusion struct {
	kind     FusionKind
	root     int
	children []int
	splices  []core.Edge
}

// fuse runs f and, when enabled, checks the invariants afterwards.
func (a *approximation) fuse(f fusion) error {
	var err error
	switch f.kind {
	case TwoCycles:
		err = a.fuseTwo(f.root, f.children[0])
	case TwoCyclesWithRoot:
		err = a.fuseTwoWithRoot(f.root, f.children[0], f.splices[0])
	case ThreeCyclesWithRoot:
		err = a.fuseThreeWithRoot(f.root, f.children[0], f.splices[0], f.children[1], f.splices[1])
	case ThreeCycles:
		err = a.fuseChain(f.children[0], f.root, f.children[1])
	case Subtree:
		err = a.fuseSubtree(f.root, f.children)
	default:
		err = fmt.Errorf("fusion kind %d: %w", int(f.kind), ErrInvariant)
	}
	if err != nil {
		return fmt.Errorf("%s into cycle %d: %w", f.kind, f.root, err)
	}
	a.stats.Fusions[f.kind]++

	if a.opts.CheckInvariants {
		return a.checkInvariants()
	}

	return nil
}

// fuseTwo breaks the maximum-weight edge (a, a⁺) of c1 and (b, b⁺) of c2 and
// reconnects them as a → b⁺ and b → a⁺. Either cycle may be a singleton.
func (a *approximation) fuseTwo(id1, id2 int) error {
	c1, c2 := a.cycles[id1], a.cycles[id2]
	e1 := c1.GetEdgeOfMaximumWeight()
	e2 := c2.GetEdgeOfMaximumWeight()

	if err := c1.ChangeEdge(e1.From, e2.To, a.g.GetEdgeWeight(e1.From, e2.To)); err != nil {
		return err
	}
	if err := c2.ChangeEdge(e2.From, e1.To, a.g.GetEdgeWeight(e2.From, e1.To)); err != nil {
		return err
	}
	a.absorb(id1, id2)

	return nil
}

// fuseTwoWithRoot splices the child into the root through the light pair
// (x, y): y → x replaces (y, y⁺) and x⁻ → y⁺ replaces (x⁻, x).
// The heavy count can increase by one: both removed edges may be light
// while (x⁻, y⁺) is heavy.
func (a *approximation) fuseTwoWithRoot(root, child int, sp core.Edge) error {
	if err := a.checkSplice(root, child, sp); err != nil {
		return err
	}
	rc, cc := a.cycles[root], a.cycles[child]
	x, y := sp.From, sp.To
	yNext, _ := rc.Next(y)
	xPrev, _ := cc.Prev(x)

	if err := rc.ChangeEdge(y, x, core.Light); err != nil {
		return err
	}
	if err := cc.ChangeEdge(xPrev, yNext, a.g.GetEdgeWeight(xPrev, yNext)); err != nil {
		return err
	}
	a.absorb(root, child)

	return nil
}

// fuseThreeWithRoot splices two children at adjacent root vertices y1 → y2.
// The root edge (y1, y2) is replaced by the path
//
//	y1 → x1 ⋯ x1⁻ → x2⁺ ⋯ x2 → y2
//
// so both light splice edges land in the result.
func (a *approximation) fuseThreeWithRoot(root, c1 int, s1 core.Edge, c2 int, s2 core.Edge) error {
	if err := a.checkSplice(root, c1, s1); err != nil {
		return err
	}
	if err := a.checkSplice(root, c2, s2); err != nil {
		return err
	}
	rc, cc1, cc2 := a.cycles[root], a.cycles[c1], a.cycles[c2]
	x1, y1 := s1.From, s1.To
	x2, y2 := s2.From, s2.To
	if next, _ := rc.Next(y1); next != y2 {
		return fmt.Errorf("root vertices %d and %d are not consecutive: %w", y1, y2, ErrBrokenSplice)
	}
	x1Prev, _ := cc1.Prev(x1)
	x2Next, _ := cc2.Next(x2)

	if err := rc.ChangeEdge(y1, x1, core.Light); err != nil {
		return err
	}
	if err := cc1.ChangeEdge(x1Prev, x2Next, a.g.GetEdgeWeight(x1Prev, x2Next)); err != nil {
		return err
	}
	if err := cc2.ChangeEdge(x2, y2, core.Light); err != nil {
		return err
	}
	a.absorb(root, c1)
	a.absorb(root, c2)

	return nil
}

// fuseChain merges a matched chain first → mid → last, where first's
// connected edge lands in mid and mid's connected edge lands in last.
// Both edges are re-read as splices into mid (the second one reversed) and
// the three cycles are fused as a star around mid.
func (a *approximation) fuseChain(first, mid, last int) error {
	e0, err := a.cycles[first].GetConnectedEdge()
	if err != nil {
		return fmt.Errorf("cycle %d: %w", first, err)
	}
	e1, err := a.cycles[mid].GetConnectedEdge()
	if err != nil {
		return fmt.Errorf("cycle %d: %w", mid, err)
	}

	return a.fuseStar(mid, []int{first, last}, []core.Edge{e0, {From: e1.To, To: e1.From}})
}

// fuseSubtree splices every child into root through its connected edge.
func (a *approximation) fuseSubtree(root int, children []int) error {
	splices := make([]core.Edge, len(children))
	for i, ch := range children {
		e, err := a.cycles[ch].GetConnectedEdge()
		if err != nil {
			return fmt.Errorf("cycle %d: %w", ch, err)
		}
		splices[i] = e
	}

	return a.fuseStar(root, children, splices)
}

// fuseStar splices children[i] into root at splices[i].To.
//
// The root is walked once from a fixed start. When two consecutive root
// vertices both carry children, their first children go in together with
// fuseThreeWithRoot and the pair is skipped; every other child goes in on
// its own with fuseTwoWithRoot. The walk does not wrap, so a pair is never
// formed across the start, which is chosen not to be a splice point when
// possible.
func (a *approximation) fuseStar(root int, children []int, splices []core.Edge) error {
	type spliced struct {
		child int
		edge  core.Edge
	}

	// 1) Group children by root vertex, smallest child id first.
	at := make(map[int][]spliced, len(children))
	for i, ch := range children {
		y := splices[i].To
		at[y] = append(at[y], spliced{child: ch, edge: splices[i]})
	}
	for _, group := range at {
		sort.Slice(group, func(i, j int) bool { return group[i].child < group[j].child })
	}

	// 2) Snapshot the root from its maximum-weight edge origin, moved
	// forward to the first vertex without children.
	rc := a.cycles[root]
	start := rc.GetEdgeOfMaximumWeight().From
	for i, v := 0, start; i < rc.Len(); i++ {
		if len(at[v]) == 0 {
			start = v
			break
		}
		v, _ = rc.Next(v)
	}
	walk := make([]int, 0, rc.Len())
	for i, v := 0, start; i < rc.Len(); i++ {
		walk = append(walk, v)
		v, _ = rc.Next(v)
	}

	// 3) Splice.
	two := func(s spliced) error {
		return a.fuse(fusion{kind: TwoCyclesWithRoot, root: root, children: []int{s.child}, splices: []core.Edge{s.edge}})
	}
	for i := 0; i < len(walk); {
		here := at[walk[i]]
		if len(here) == 0 {
			i++
			continue
		}
		if i+1 < len(walk) && len(at[walk[i+1]]) > 0 {
			there := at[walk[i+1]]
			if err := a.fuse(fusion{
				kind:     ThreeCyclesWithRoot,
				root:     root,
				children: []int{here[0].child, there[0].child},
				splices:  []core.Edge{here[0].edge, there[0].edge},
			}); err != nil {
				return err
			}
			for _, s := range here[1:] {
				if err := two(s); err != nil {
					return err
				}
			}
			for _, s := range there[1:] {
				if err := two(s); err != nil {
					return err
				}
			}
			i += 2
			continue
		}
		for _, s := range here {
			if err := two(s); err != nil {
				return err
			}
		}
		i++
	}

	return nil
}

// checkSplice verifies that sp joins child (sp.From) to root (sp.To) with a
// light edge.
func (a *approximation) checkSplice(root, child int, sp core.Edge) error {
	if a.owner[sp.From] != child || a.owner[sp.To] != root {
		return fmt.Errorf("splice %d → %d, cycles %d → %d: %w", sp.From, sp.To, child, root, ErrBrokenSplice)
	}
	if !a.g.IsLight(sp.From, sp.To) {
		return fmt.Errorf("splice %d → %d: %w", sp.From, sp.To, ErrHeavySplice)
	}

	return nil
}

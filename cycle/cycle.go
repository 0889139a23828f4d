// Package cycle implements the mutable cycle used by the cover-merging
// approximation: a closed vertex orbit with O(1) successor and predecessor
// lookups, a set of heavy-edge origins and one connected edge chosen by the
// matching phase.
//
// Cycles are built once from the input cover and then only grow: fusion
// rewires a few edges with ChangeEdge and unions the absorbed cycle with
// AddCycle. Keeping the result a single valid cycle is the caller's job;
// Validate checks it.
package cycle

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cycletsp/core"
)

// New links seq into a cycle (seq[i] → seq[i+1], last → first) and records
// every heavy edge origin according to g.
//
// Complexity: O(len(seq)).
func New(seq []int, g Weigher) (*Cycle, error) {
	if len(seq) == 0 {
		return nil, ErrEmptyCycle
	}
	n := len(seq)
	c := &Cycle{
		succ:  make(map[int]int, n),
		pred:  make(map[int]int, n),
		heavy: make(map[int]struct{}),
	}

	var (
		i    int
		u, v int
	)
	for i = 0; i < n; i++ {
		u = seq[i]
		if _, dup := c.succ[u]; dup {
			return nil, fmt.Errorf("vertex %d: %w", u, ErrDuplicateVertex)
		}
		v = seq[(i+1)%n]
		c.succ[u] = v
		c.pred[v] = u
		if u != v && g.GetEdgeWeight(u, v) == core.Heavy {
			c.heavy[u] = struct{}{}
		}
	}

	return c, nil
}

// IsGood reports whether the cycle has no heavy edge.
func (c *Cycle) IsGood() bool { return len(c.heavy) == 0 }

// Len returns the number of vertices.
func (c *Cycle) Len() int { return len(c.succ) }

// Contains reports whether v belongs to the cycle.
func (c *Cycle) Contains(v int) bool {
	_, ok := c.succ[v]
	return ok
}

// Next returns the successor of u.
func (c *Cycle) Next(u int) (int, bool) {
	v, ok := c.succ[u]
	return v, ok
}

// Prev returns the predecessor of u.
func (c *Cycle) Prev(u int) (int, bool) {
	v, ok := c.pred[u]
	return v, ok
}

// ChangeEdge rewires the edge leaving u so that it points to next, which
// carries weight w. u keeps its place; the old successor loses its
// predecessor entry and next gains one. u enters or leaves the heavy set
// according to w.
//
// next may belong to another cycle that is about to be merged with AddCycle.
func (c *Cycle) ChangeEdge(u, next int, w core.Weight) error {
	old, ok := c.succ[u]
	if !ok {
		return fmt.Errorf("ChangeEdge(%d → %d): %w", u, next, ErrVertexNotInCycle)
	}
	if p, ok := c.pred[old]; ok && p == u {
		delete(c.pred, old)
	}
	c.succ[u] = next
	c.pred[next] = u

	delete(c.heavy, u)
	if w == core.Heavy {
		c.heavy[u] = struct{}{}
	}

	return nil
}

// AddCycle copies the edges and heavy origins of other into c.
// other is left untouched and should be discarded by the caller.
func (c *Cycle) AddCycle(other *Cycle) {
	for u, v := range other.succ {
		c.succ[u] = v
	}
	for v, u := range other.pred {
		c.pred[v] = u
	}
	for u := range other.heavy {
		c.heavy[u] = struct{}{}
	}
}

// GetEdgeOfMaximumWeight returns the heavy edge with the smallest origin,
// or, for a good cycle, the edge leaving the smallest vertex.
func (c *Cycle) GetEdgeOfMaximumWeight() core.Edge {
	var from int
	if len(c.heavy) > 0 {
		from = minKey(c.heavy)
	} else {
		from = c.minVertex()
	}

	return core.Edge{From: from, To: c.succ[from]}
}

// GetConnectedEdge returns the (inside, outside) pair set by SetConnectedEdge.
func (c *Cycle) GetConnectedEdge() (core.Edge, error) {
	if !c.hasConnected {
		return core.Edge{}, ErrNoConnectedEdge
	}

	return c.connected, nil
}

// SetConnectedEdge records where this cycle splices into its matched neighbor:
// e.From lies in the cycle, e.To outside of it.
func (c *Cycle) SetConnectedEdge(e core.Edge) {
	c.connected = e
	c.hasConnected = true
}

// HeavyOrigins returns the origins of heavy edges in ascending order.
func (c *Cycle) HeavyOrigins() []int { return sortedKeys(c.heavy) }

// HeavyCount returns the number of heavy edges.
func (c *Cycle) HeavyCount() int { return len(c.heavy) }

// Vertices walks the cycle from its smallest vertex.
//
// Complexity: O(Len()).
func (c *Cycle) Vertices() []int {
	if len(c.succ) == 0 {
		return nil
	}
	start := c.minVertex()
	out := make([]int, 0, len(c.succ))
	out = append(out, start)
	for v := c.succ[start]; v != start && len(out) <= len(c.succ); v = c.succ[v] {
		out = append(out, v)
	}

	return out
}

// Members returns the vertices in ascending order without walking the
// orbit, so it is safe to call while a fusion has the cycle half rewired.
func (c *Cycle) Members() []int {
	out := make([]int, 0, len(c.succ))
	for v := range c.succ {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Validate checks the structural invariants. When g is non-nil it also
// checks that the heavy set matches the weights of the current edges.
func (c *Cycle) Validate(g Weigher) error {
	if len(c.succ) == 0 {
		return ErrEmptyCycle
	}
	if len(c.succ) != len(c.pred) {
		return fmt.Errorf("%d successors, %d predecessors: %w", len(c.succ), len(c.pred), ErrBrokenCycle)
	}
	for u, v := range c.succ {
		if p, ok := c.pred[v]; !ok || p != u {
			return fmt.Errorf("edge %d → %d has no inverse: %w", u, v, ErrBrokenCycle)
		}
	}
	if walked := len(c.Vertices()); walked != len(c.succ) {
		return fmt.Errorf("orbit of %d covers %d of %d vertices: %w",
			c.minVertex(), walked, len(c.succ), ErrBrokenCycle)
	}
	for u := range c.heavy {
		if _, ok := c.succ[u]; !ok {
			return fmt.Errorf("heavy origin %d outside cycle: %w", u, ErrBrokenCycle)
		}
	}
	if g == nil {
		return nil
	}
	for u, v := range c.succ {
		_, marked := c.heavy[u]
		isHeavy := u != v && g.GetEdgeWeight(u, v) == core.Heavy
		if marked != isHeavy {
			return fmt.Errorf("edge %d → %d heavy=%t, marked=%t: %w", u, v, isHeavy, marked, ErrBrokenCycle)
		}
	}

	return nil
}

func (c *Cycle) minVertex() int {
	first := true
	m := 0
	for v := range c.succ {
		if first || v < m {
			m, first = v, false
		}
	}

	return m
}

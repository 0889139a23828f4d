// Package tsp — cost utilities.
//
// Costs are integer sums of {1,2} weights over the closed tour, including
// the implicit edge tour[n-1] → tour[0]. A single-vertex tour costs 0.
//
// Complexity: O(n) time, O(1) extra space.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/cycletsp/core"
)

// TourCost returns the total weight of the closed tour.
// The tour must be a permutation of the graph's vertices.
func TourCost(g *core.Graph, tour []int) (int, error) {
	var sum int
	if err := walkTour(g, tour, func(w core.Weight) { sum += int(w) }); err != nil {
		return 0, err
	}

	return sum, nil
}

// ValidateTour checks that tour is a permutation of the graph's vertices
// whose closed edges all carry a weight.
func ValidateTour(g *core.Graph, tour []int) error {
	return walkTour(g, tour, func(core.Weight) {})
}

// HeavyEdgeCount returns the number of heavy edges in the closed tour.
func HeavyEdgeCount(g *core.Graph, tour []int) (int, error) {
	var heavy int
	if err := walkTour(g, tour, func(w core.Weight) {
		if w == core.Heavy {
			heavy++
		}
	}); err != nil {
		return 0, err
	}

	return heavy, nil
}

// LowerBound returns a lower bound on the optimal tour cost: every edge
// weighs at least 1, so a closed tour on n ≥ 2 vertices costs at least n.
func LowerBound(g *core.Graph) int {
	if g.Order() < 2 {
		return 0
	}

	return g.Order()
}

// walkTour validates tour and calls visit with the weight of every closed
// tour edge.
func walkTour(g *core.Graph, tour []int, visit func(core.Weight)) error {
	n := g.Order()
	if err := ValidatePermutation(tour, n); err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	var (
		i    int
		u, v int
		w    core.Weight
	)
	for i = 0; i < n; i++ {
		u, v = tour[i], tour[(i+1)%n]
		if w = g.GetEdgeWeight(u, v); w == core.NoEdge {
			return fmt.Errorf("edge %d → %d: %w", u, v, core.ErrIncompleteGraph)
		}
		visit(w)
	}

	return nil
}

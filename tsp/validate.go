// Package tsp - input validation for the cover-merging approximation.
//
// The weight matrix itself is validated by core.FromMatrix (shape,
// symmetry, {1,2} domain). This file checks the cycle cover against the
// graph order:
//   - at least one cycle,
//   - every cycle non-empty,
//   - every vertex in [0..n-1],
//   - every vertex in exactly one cycle.
//
// Complexity: O(n) time, O(n) extra space.
package tsp

import "fmt"

// validateCover checks that cover partitions {0..n-1}.
func validateCover(cover [][]int, n int) error {
	if len(cover) == 0 {
		return ErrEmptyCover
	}

	var (
		seen  = make([]bool, n)
		total int
	)
	for i, seq := range cover {
		if len(seq) == 0 {
			return fmt.Errorf("cycle %d: %w", i, ErrEmptyCycle)
		}
		for _, v := range seq {
			if v < 0 || v >= n {
				return fmt.Errorf("cycle %d, vertex %d: %w", i, v, ErrVertexOutOfRange)
			}
			if seen[v] {
				return fmt.Errorf("vertex %d appears twice: %w", v, ErrNotPartition)
			}
			seen[v] = true
			total++
		}
	}
	if total != n {
		return fmt.Errorf("cover has %d vertices, graph has %d: %w", total, n, ErrNotPartition)
	}

	return nil
}

// Package tsp — tour utilities.
//
// Tours are open vertex sequences: a tour of n vertices has length n and the
// closing edge tour[n-1] → tour[0] is implicit. Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - RotateTourToStart: cyclic shift so the tour starts at a given vertex.
//   - EqualToursModuloRotation: equality under rotation, same direction.
//   - EqualCyclesUpToDirection: equality under rotation and reversal.
//   - DebugString: compact printable representation for tests and logs.
//
// No logging, no panics on user input; only sentinel errors from types.go.
package tsp

import (
	"fmt"
	"strings"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1}.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("len %d, want %d: %w", len(perm), n, ErrDimensionMismatch)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("position %d: vertex %d: %w", i, v, ErrVertexOutOfRange)
		}
		if seen[v] {
			return fmt.Errorf("vertex %d repeated: %w", v, ErrDimensionMismatch)
		}
		seen[v] = true
	}

	return nil
}

// RotateTourToStart returns a copy of tour shifted so that out[0] == start.
//
// Complexity: O(n) time, O(n) space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	n := len(tour)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}
	pivot := indexOf(tour, start)
	if pivot == -1 {
		return nil, fmt.Errorf("vertex %d: %w", start, ErrStartOutOfRange)
	}

	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}

	return out, nil
}

// EqualToursModuloRotation reports whether b is a rotation of a.
//
// Complexity: O(n) time.
func EqualToursModuloRotation(a, b []int) bool {
	n := len(a)
	if n != len(b) || n == 0 {
		return false
	}
	p := indexOf(b, a[0])
	if p == -1 {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}

// EqualCyclesUpToDirection reports whether a and b describe the same closed
// cycle, allowing both rotation and reversal.
//
// Complexity: O(n) time.
func EqualCyclesUpToDirection(a, b []int) bool {
	if EqualToursModuloRotation(a, b) {
		return true
	}
	rev := make([]int, len(b))
	for i, v := range b {
		rev[len(b)-1-i] = v
	}

	return EqualToursModuloRotation(a, rev)
}

// DebugString returns a compact representation such as "[0 3 1 2 | 0]",
// where the bar marks the implicit closing edge.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range tour {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", v)
	}
	fmt.Fprintf(&sb, " | %d]", tour[0])

	return sb.String()
}

func indexOf(tour []int, v int) int {
	for i, u := range tour {
		if u == v {
			return i
		}
	}

	return -1
}

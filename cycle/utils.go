package cycle

import "sort"

// minKey returns the smallest key of a non-empty set.
func minKey(s map[int]struct{}) int {
	first := true
	m := 0
	for k := range s {
		if first || k < m {
			m, first = k, false
		}
	}

	return m
}

// sortedKeys returns the keys of s in ascending order.
func sortedKeys(s map[int]struct{}) []int {
	out := make([]int, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

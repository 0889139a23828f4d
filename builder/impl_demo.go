// SPDX-License-Identifier: MIT
// Package: cycletsp/builder
//
// impl_demo.go — the fixed 21-vertex demonstration instance.
//
// Seven triangles {0,1,2}, {3,4,5}, …, {18,19,20}. Five are fully light;
// {9,10,11} and {12,13,14} each have one heavy side (10–11 and 13–14), so
// the instance starts with two bad cycles. Light bridges 1–4, 7–10, 1–17
// and 4–20 connect the triangles.

package builder

import "github.com/katalvlaran/cycletsp/core"

// demoLight lists the light pairs of Demo21.
var demoLight = [][2]int{
	{0, 1}, {1, 2}, {0, 2},
	{3, 4}, {4, 5}, {3, 5},
	{6, 7}, {7, 8}, {6, 8},
	{9, 10}, {9, 11},
	{12, 13}, {12, 14},
	{15, 16}, {16, 17}, {15, 17},
	{18, 19}, {18, 20}, {19, 20},
	{1, 4}, {7, 10}, {1, 17}, {4, 20},
}

// Demo21 returns the 21-vertex demonstration instance.
func Demo21() *Instance {
	const n = 21
	w := newWeights(n)
	for _, p := range demoLight {
		setPair(w, p[0], p[1], core.Light)
	}

	cover := make([][]int, 0, n/3)
	for v := 0; v < n; v += 3 {
		cover = append(cover, []int{v, v + 1, v + 2})
	}

	return &Instance{Name: "demo21", Weights: w, Cover: cover}
}

// SPDX-License-Identifier: MIT
// Package: cycletsp/builder
//
// impl_planted.go — random instances with a planted cycle cover.
//
// The vertices are shuffled and cut into consecutive chunks of cycleLen
// (the last chunk may be shorter); each chunk is one cover cycle. Cover
// edges are light, except the closing edge of the first badCycles cycles
// with at least two vertices, which is heavy. Every pair outside the cover
// is light with probability lightProb, heavy otherwise.
//
// Complexity: O(n²) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cycletsp/core"
)

// Planted returns a random n-vertex instance with a planted cover.
// Requires WithSeed or WithRand.
func Planted(n int, opts ...BuilderOption) (*Instance, error) {
	cfg := newBuilderConfig(opts...)
	if n < 1 {
		return nil, builderErrorf(MethodPlanted, ErrTooFewVertices, "n=%d", n)
	}
	if cfg.rng == nil {
		return nil, builderErrorf(MethodPlanted, ErrNeedRandSource, "n=%d", n)
	}

	// 1) Random partition into cycles.
	perm := cfg.rng.Perm(n)
	var cover [][]int
	for lo := 0; lo < n; lo += cfg.cycleLen {
		hi := lo + cfg.cycleLen
		if hi > n {
			hi = n
		}
		cover = append(cover, append([]int(nil), perm[lo:hi]...))
	}

	// 2) Off-cover pairs, drawn in row-major order.
	w := newWeights(n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if cfg.rng.Float64() < cfg.lightProb {
				setPair(w, i, j, core.Light)
			}
		}
	}

	// 3) Cover edges; the first badCycles cycles keep a heavy closing edge.
	bad := 0
	for _, seq := range cover {
		m := len(seq)
		for k := 0; k < m; k++ {
			if u, v := seq[k], seq[(k+1)%m]; u != v {
				setPair(w, u, v, core.Light)
			}
		}
		if bad < cfg.badCycles && m >= 2 {
			setPair(w, seq[m-1], seq[0], core.Heavy)
			bad++
		}
	}

	return &Instance{
		Name:    fmt.Sprintf("planted-%d", n),
		Weights: w,
		Cover:   cover,
	}, nil
}

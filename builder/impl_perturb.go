// SPDX-License-Identifier: MIT
// Package: cycletsp/builder
//
// impl_perturb.go — random weight flips outside the cover.

package builder

import (
	"github.com/katalvlaran/cycletsp/core"
)

// Perturb returns a copy of in where every pair not joined by a cover edge
// has its weight flipped (light ↔ heavy) with probability q. Cover edges,
// and therefore the good/bad status of every cover cycle, are kept.
// Requires WithSeed or WithRand.
//
// Complexity: O(n²).
func Perturb(in *Instance, q float64, opts ...BuilderOption) (*Instance, error) {
	cfg := newBuilderConfig(opts...)
	if q < 0 || q > 1 {
		return nil, builderErrorf(MethodPerturb, ErrInvalidProbability, "q=%g", q)
	}
	if cfg.rng == nil {
		return nil, builderErrorf(MethodPerturb, ErrNeedRandSource, "q=%g", q)
	}

	out := in.Clone()
	out.Name = in.Name + "-perturbed"
	keep := in.coverPairs()

	var (
		n    = out.Order()
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if _, ok := keep[[2]int{i, j}]; ok {
				continue
			}
			if cfg.rng.Float64() >= q {
				continue
			}
			if core.Weight(out.Weights[i][j]) == core.Light {
				setPair(out.Weights, i, j, core.Heavy)
			} else {
				setPair(out.Weights, i, j, core.Light)
			}
		}
	}

	return out, nil
}

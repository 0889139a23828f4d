// SPDX-License-Identifier: MIT
// Package: cycletsp/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng        = nil   (random generators fail with ErrNeedRandSource)
//   • cycleLen   = 3     (triangles, as in the demonstration instance)
//   • lightProb  = 0.1   (chance that an off-cover pair is light)
//   • badCycles  = 0     (every planted cycle is good)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by the generators.
// It is passed by value.
type builderConfig struct {
	rng       *rand.Rand
	cycleLen  int
	lightProb float64
	badCycles int
}

const (
	defaultCycleLen  = 3
	defaultLightProb = 0.1
	defaultBadCycles = 0
)

// newBuilderConfig starts from the defaults and applies opts in order;
// later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		cycleLen:  defaultCycleLen,
		lightProb: defaultLightProb,
		badCycles: defaultBadCycles,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

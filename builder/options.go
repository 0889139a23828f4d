// SPDX-License-Identifier: MIT
// Package: cycletsp/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs;
//     generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a generator by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCycleLength sets the length of planted cover cycles. Panics if k < 1.
func WithCycleLength(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithCycleLength(k<1)")
	}
	return func(c *builderConfig) {
		c.cycleLen = k
	}
}

// WithLightProbability sets the chance that a pair outside the cover is
// light. Panics if p is outside [0,1].
func WithLightProbability(p float64) BuilderOption {
	if p < 0 || p > 1 {
		panic("builder: WithLightProbability(p∉[0,1])")
	}
	return func(c *builderConfig) {
		c.lightProb = p
	}
}

// WithBadCycles sets how many planted cycles get a heavy closing edge.
// Panics if b < 0.
func WithBadCycles(b int) BuilderOption {
	if b < 0 {
		panic("builder: WithBadCycles(b<0)")
	}
	return func(c *builderConfig) {
		c.badCycles = b
	}
}

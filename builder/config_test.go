// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaults checks the documented deterministic defaults.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, defaultCycleLen, cfg.cycleLen)
	assert.Equal(t, defaultLightProb, cfg.lightProb)
	assert.Equal(t, defaultBadCycles, cfg.badCycles)
}

// TestOptionsLastWins verifies in-order application.
func TestOptionsLastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithCycleLength(4), WithCycleLength(6),
		WithLightProbability(0.5), WithLightProbability(0.25),
		WithBadCycles(1), WithBadCycles(2),
	)
	assert.Equal(t, 6, cfg.cycleLen)
	assert.Equal(t, 0.25, cfg.lightProb)
	assert.Equal(t, 2, cfg.badCycles)
}

// TestSeedReproducible verifies that WithSeed yields identical streams.
func TestSeedReproducible(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	for i := 0; i < 8; i++ {
		assert.Equal(t, a.rng.Int63(), b.rng.Int63())
	}

	r := rand.New(rand.NewSource(7))
	c := newBuilderConfig(WithRand(r))
	assert.Same(t, r, c.rng)
}

// TestOptionPanics verifies that meaningless option values fail fast.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithCycleLength(0) })
	assert.Panics(t, func() { WithLightProbability(-0.1) })
	assert.Panics(t, func() { WithLightProbability(1.1) })
	assert.Panics(t, func() { WithBadCycles(-1) })
	assert.NotPanics(t, func() { WithLightProbability(0); WithLightProbability(1) })
}

// TestDeriveSeed checks determinism and stream separation.
func TestDeriveSeed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DeriveSeed(1, 0), DeriveSeed(1, 0))
	assert.NotEqual(t, DeriveSeed(1, 0), DeriveSeed(1, 1))
	assert.NotEqual(t, DeriveSeed(1, 0), DeriveSeed(2, 0))
}

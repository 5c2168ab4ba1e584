// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfigDefaults: no options means no RNG.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
}

// TestWithSeed: equal seeds give equal streams; seed 0 maps to the default seed.
func TestWithSeed(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.rng.Int63(), b.rng.Int63())
	}

	zero := newBuilderConfig(WithSeed(0))
	def := newBuilderConfig(WithSeed(defaultRNGSeed))
	assert.Equal(t, def.rng.Int63(), zero.rng.Int63())
}

// TestWithRand: last option wins; nil panics at option construction.
func TestWithRand(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(9))
	cfg := newBuilderConfig(WithSeed(1), WithRand(r))
	assert.Same(t, r, cfg.rng)

	assert.Panics(t, func() { WithRand(nil) })
}

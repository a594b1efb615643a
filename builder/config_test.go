// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexspace/sampler"
	"github.com/katalvlaran/lexspace/space"
)

// TestIDSchemeOptions verifies that ID scheme options are applied in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", newBuilderConfig().idFn(7))
	assert.Equal(t, "A", newBuilderConfig(WithSymbolIDs()).idFn(0))
	assert.Equal(t, "c", newBuilderConfig(WithLowerIDs()).idFn(2))
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))
	assert.Equal(t, "z", newBuilderConfig(WithAlphanumericIDs()).idFn(35))
	assert.Equal(t, "ff", newBuilderConfig(WithHexIDs()).idFn(255))
	assert.Equal(t, "k4", newBuilderConfig(WithSymbNumb("k")).idFn(4))

	// last wins
	assert.Equal(t, "3", newBuilderConfig(WithSymbolIDs(), WithDefaultIDs()).idFn(3))

	assert.Panics(t, func() { WithIDScheme(nil) })
}

// TestRNGOptions verifies RNG wiring and seed reproducibility.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng)

	r := rand.New(rand.NewSource(123))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
	assert.Panics(t, func() { WithRand(nil) })

	a, b := newBuilderConfig(WithSeed(42)).rng, newBuilderConfig(WithSeed(42)).rng
	require.NotNil(t, a)
	for i := 0; i < 4; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestTraversalOptions(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.constraint)
	assert.Equal(t, sampler.DefaultScanLimit, cfg.scanLimit)
	assert.Equal(t, context.Background(), cfg.ctx)

	assert.Equal(t, uint64(9), newBuilderConfig(WithScanLimit(9)).scanLimit)
	assert.Zero(t, newBuilderConfig(WithScanLimit(9), WithUnboundedScan()).scanLimit)
	assert.Panics(t, func() { WithScanLimit(0) })
	assert.Panics(t, func() { WithContext(nil) }) //nolint:staticcheck
	assert.Panics(t, func() { WithConstraint(nil) })
}

func TestWithConstraintCombines(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithConstraint(sampler.Contains("A")),
		WithConstraint(sampler.Excludes("C")),
	)
	require.NotNil(t, cfg.constraint)

	assert.True(t, cfg.constraint(space.NewElement([]string{"A", "B"})))
	assert.False(t, cfg.constraint(space.NewElement([]string{"B"})))
	assert.False(t, cfg.constraint(space.NewElement([]string{"A", "C"})))
}

func TestSamplerOptions(t *testing.T) {
	t.Parallel()

	o := sampler.DefaultOptions()
	for _, fn := range newBuilderConfig(WithUnboundedScan()).samplerOptions() {
		fn(&o)
	}
	assert.Zero(t, o.ScanLimit)
	assert.Nil(t, o.Constraint)

	o = sampler.DefaultOptions()
	for _, fn := range newBuilderConfig(WithScanLimit(5), WithConstraint(sampler.DistinctItems())).samplerOptions() {
		fn(&o)
	}
	assert.Equal(t, uint64(5), o.ScanLimit)
	assert.NotNil(t, o.Constraint)
}

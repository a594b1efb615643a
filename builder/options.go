// SPDX-License-Identifier: MIT
// Package: lexspace/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/lexspace/sampler"
)

// BuilderOption customizes Build by mutating a builderConfig instance before
// dimensions are resolved.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic pool item generator used by
// Symbols(n): idx -> item. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for Generator.Random. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithConstraint installs a pure post-filter on assembled elements. It turns
// "n-th element" into "n-th element satisfying p", computed by forward scan.
// Panics on nil. Multiple WithConstraint options combine with sampler.All.
func WithConstraint(p sampler.Predicate) BuilderOption {
	if p == nil {
		panic("builder: WithConstraint(nil)")
	}
	return func(c *builderConfig) {
		if c.constraint == nil {
			c.constraint = p
			return
		}
		c.constraint = sampler.All(c.constraint, p)
	}
}

// WithScanLimit caps consecutive rejections of a filtered scan.
// Panics on 0; use WithUnboundedScan to lift the cap deliberately.
func WithScanLimit(limit uint64) BuilderOption {
	if limit == 0 {
		panic("builder: WithScanLimit(0)")
	}
	return func(c *builderConfig) {
		c.scanLimit = limit
	}
}

// WithUnboundedScan removes the scan cap: a filtered step may scan the
// whole remaining space.
func WithUnboundedScan() BuilderOption {
	return func(c *builderConfig) {
		c.scanLimit = 0
	}
}

// WithContext sets the context checked between scan iterations.
// Panics on nil.
func WithContext(ctx context.Context) BuilderOption {
	if ctx == nil {
		panic("builder: WithContext(nil)")
	}
	return func(c *builderConfig) {
		c.ctx = ctx
	}
}

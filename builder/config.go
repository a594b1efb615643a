// SPDX-License-Identifier: MIT
// Package: lexspace/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • idFn        = decimalID                  ("0","1","2",...)
//   • rng         = nil                        (Random requires WithSeed/WithRand)
//   • constraint  = nil                        (every element is valid)
//   • scanLimit   = sampler.DefaultScanLimit   (bounded filtered scans)
//   • ctx         = context.Background()

package builder

import (
	"context"
	"math/rand" // RNG for Generator.Random
	"strconv"   // decimal pool items ("0","1",...)

	"github.com/katalvlaran/lexspace/sampler"
)

// builderConfig aggregates all knobs used by dimensions and the Generator.
// It is passed by VALUE to dimensions (immutable to callers).
type builderConfig struct {
	// Pool item strategy for Symbols(n): index -> item (deterministic).
	idFn func(int) string
	// RNG for Generator.Random; nil means "no randomness".
	rng *rand.Rand

	// Post-assembly filter; nil accepts everything.
	constraint sampler.Predicate
	// Consecutive rejections tolerated by filtered scans; 0 = unbounded.
	scanLimit uint64
	// Cancellation for traversals.
	ctx context.Context
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      decimalID,
		rng:       nil,
		scanLimit: sampler.DefaultScanLimit,
		ctx:       context.Background(),
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// samplerOptions translates the traversal knobs into sampler options.
func (c builderConfig) samplerOptions() []sampler.Option {
	opts := []sampler.Option{
		sampler.WithContext(c.ctx),
		sampler.WithConstraint(c.constraint),
	}
	if c.scanLimit == 0 {
		opts = append(opts, sampler.WithUnboundedScan())
	} else {
		opts = append(opts, sampler.WithScanLimit(c.scanLimit))
	}

	return opts
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}

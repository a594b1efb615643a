// SPDX-License-Identifier: MIT
// Package: lexspace/builder
//
// api.go — thin public entry-points for the builder package.
//
// Design contract (strict):
//   • One orchestrator: Build(bopts, dims...). Resolves cfg, runs dims in order.
//   • Functional options (BuilderOption) resolve into an immutable builderConfig.
//   • Determinism: same dims/options ⇒ identical Space and identical sequences.
//   • Safety: never panic; return sentinel errors from dimensions.

package builder

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lexspace/sampler"
	"github.com/katalvlaran/lexspace/space"
)

// Generator is the immutable result of Build: a composite space plus the
// traversal configuration (constraint, scan limit, context, RNG).
// All methods are safe for concurrent use except Random, which draws from
// the shared *rand.Rand configured by WithSeed/WithRand.
type Generator struct {
	sp  *space.Space
	cfg builderConfig
}

// Build resolves bopts, applies every Dimension in declaration order and
// joins the results into a composite space. Any dimension error is wrapped
// with "Build: dimension <i>: %w" and returned immediately.
//
// Complexity: O(len(bopts)) + Σ cost of each dimension (pool resolution and
// count computation); no element is enumerated.
func Build(bopts []BuilderOption, dims ...Dimension) (*Generator, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("%s: %w", MethodBuild, ErrNoDimensions)
	}

	cfg := newBuilderConfig(bopts...)

	sels := make([]space.Selection, len(dims))
	for i, fn := range dims {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil dimension at index %d: %w", MethodBuild, i, ErrConstructFailed)
		}
		sel, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: dimension %d: %w", MethodBuild, i, err)
		}
		sels[i] = sel
	}

	sp, err := space.New(sels...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	return &Generator{sp: sp, cfg: cfg}, nil
}

// Space returns the underlying composite space.
func (g *Generator) Space() *space.Space { return g.sp }

// Count returns the unfiltered number of elements.
func (g *Generator) Count() *big.Int { return g.sp.Count() }

// Constrained reports whether WithConstraint was used.
func (g *Generator) Constrained() bool { return g.cfg.constraint != nil }

// Unrank returns the element at an absolute (unfiltered) rank.
func (g *Generator) Unrank(rank *big.Int) (space.Element, error) { return g.sp.Unrank(rank) }

// Rank returns the absolute (unfiltered) rank of e.
func (g *Generator) Rank(e space.Element) (*big.Int, error) { return g.sp.Rank(e) }

// Accept reports whether e satisfies the configured constraint.
func (g *Generator) Accept(e space.Element) bool {
	return g.cfg.constraint == nil || g.cfg.constraint(e)
}

// LexOrder returns the full in-order traversal from rank 0, honoring the
// configured constraint. Extra sampler options are applied last.
func (g *Generator) LexOrder(extra ...sampler.Option) (*sampler.Sequence, error) {
	return sampler.New(g.sp, append(g.cfg.samplerOptions(), extra...)...)
}

// LexOrderNth returns the sampled traversal offset, offset+step, … (or,
// under a constraint, every step-th valid element at or after offset).
func (g *Generator) LexOrderNth(offset, step int64, extra ...sampler.Option) (*sampler.Sequence, error) {
	return g.LexOrderNthBig(big.NewInt(offset), big.NewInt(step), extra...)
}

// LexOrderNthBig is LexOrderNth with arbitrary-precision offset and step.
func (g *Generator) LexOrderNthBig(offset, step *big.Int, extra ...sampler.Option) (*sampler.Sequence, error) {
	if offset == nil || offset.Sign() < 0 || step == nil || step.Sign() <= 0 {
		return nil, fmt.Errorf("%s: offset=%v step=%v: %w", MethodLexOrderNth, offset, step, ErrBadStride)
	}
	opts := append(g.cfg.samplerOptions(), sampler.WithOffset(offset), sampler.WithStep(step))

	return sampler.New(g.sp, append(opts, extra...)...)
}

// Nth returns the n-th element of the sampled traversal described by extra
// (offset 0, step 1 by default), honoring the configured constraint.
func (g *Generator) Nth(n *big.Int, extra ...sampler.Option) (space.Element, *big.Int, error) {
	return sampler.NthValid(g.sp, n, append(g.cfg.samplerOptions(), extra...)...)
}

// Random draws a uniformly random rank and returns it with its element.
// The constraint is not consulted. Requires WithSeed or WithRand.
func (g *Generator) Random() (space.Element, *big.Int, error) {
	if g.cfg.rng == nil {
		return space.Element{}, nil, fmt.Errorf("Random: %w", ErrNeedRandSource)
	}
	r := new(big.Int).Rand(g.cfg.rng, g.sp.Count())
	e, err := g.sp.Unrank(r)
	if err != nil {
		return space.Element{}, nil, err
	}

	return e, r, nil
}

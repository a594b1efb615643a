// SPDX-License-Identifier: MIT
// Package: lexspace/builder
//
// dimensions.go — Dimension constructors.
//
// Contract:
//   • Each constructor returns a closure; Build supplies the resolved cfg.
//   • Parameters are validated when the closure runs (inside Build), never
//     at Unrank time.
//   • Errors wrap ErrInvalidDimension and space.ErrInvalidSpec; engine causes
//     (combin.ErrInvalidSize) stay reachable through errors.Is.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lexspace/space"
)

// Dimension resolves one declarative dimension into a space.Selection using
// the resolved builderConfig. Dimensions MUST NOT panic.
type Dimension func(cfg builderConfig) (space.Selection, error)

// fixedDim shares the resolve-then-construct path of the fixed-size kinds.
func fixedDim(method string, count int, pool PoolSource, mk func(int, space.Pool) (space.Selection, error)) Dimension {
	return func(cfg builderConfig) (space.Selection, error) {
		if err := validateMin(method, count, 0); err != nil {
			return space.Selection{}, err
		}
		p, err := resolvePool(method, pool, cfg)
		if err != nil {
			return space.Selection{}, wrapSpec(err)
		}
		sel, err := mk(count, p)
		if err != nil {
			return space.Selection{}, wrapSpec(err)
		}

		return sel, nil
	}
}

// wrapSpec adds ErrInvalidDimension to spec violations reported by space.
func wrapSpec(err error) error {
	if errors.Is(err, space.ErrInvalidSpec) && !errors.Is(err, ErrInvalidDimension) {
		return fmt.Errorf("%w: %w", ErrInvalidDimension, err)
	}
	return err
}

// FixedRepeated chooses count items from pool, repetition allowed, order
// mattering: a base-|pool| numeral of count digits. count ≥ 0.
func FixedRepeated(count int, pool PoolSource) Dimension {
	return fixedDim(MethodFixedRepeated, count, pool, space.FixedRepeated)
}

// FixedDistinct chooses count distinct items from pool, unordered
// (reported in pool order). 0 ≤ count ≤ |pool|.
func FixedDistinct(count int, pool PoolSource) Dimension {
	return fixedDim(MethodFixedDistinct, count, pool, space.FixedDistinct)
}

// Permutation chooses and orders count distinct items. 0 ≤ count ≤ |pool|.
func Permutation(count int, pool PoolSource) Dimension {
	return fixedDim(MethodPermutation, count, pool, space.Permutation)
}

// Ranged is the union of FixedDistinct(size, pool) for size in [min,max],
// ordered by size first. 0 ≤ min ≤ max ≤ |pool|.
func Ranged(min, max int, pool PoolSource) Dimension {
	return RangedOf(space.KindDistinct, min, max, pool)
}

// RangedOf is Ranged with repeated or permutation bands.
func RangedOf(band space.Kind, min, max int, pool PoolSource) Dimension {
	return func(cfg builderConfig) (space.Selection, error) {
		if err := validateRange(MethodRanged, min, max); err != nil {
			return space.Selection{}, err
		}
		p, err := resolvePool(MethodRanged, pool, cfg)
		if err != nil {
			return space.Selection{}, wrapSpec(err)
		}
		sel, err := space.RangedOf(band, min, max, p)
		if err != nil {
			return space.Selection{}, wrapSpec(err)
		}

		return sel, nil
	}
}

// Arrangement orders the multiset in which pool item i occurs counts[i]
// times; len(counts) must equal |pool|.
func Arrangement(pool PoolSource, counts ...int) Dimension {
	fixed := append([]int(nil), counts...)
	return func(cfg builderConfig) (space.Selection, error) {
		p, err := resolvePool(MethodArrangement, pool, cfg)
		if err != nil {
			return space.Selection{}, wrapSpec(err)
		}
		sel, err := space.Arrangement(p, fixed)
		if err != nil {
			return space.Selection{}, wrapSpec(err)
		}

		return sel, nil
	}
}

// BitString is every length-bit string with exactly ones "1" bits, ordered
// with "1" before "0": BitString(8, 4) has C(8,4) = 70 elements and rank 0
// is "11110000". 0 ≤ ones ≤ length.
func BitString(length, ones int) Dimension {
	return func(cfg builderConfig) (space.Selection, error) {
		if err := validateRange(MethodBitString, ones, length); err != nil {
			return space.Selection{}, err
		}

		return Arrangement(Items(BitOne, BitZero), ones, length-ones)(cfg)
	}
}

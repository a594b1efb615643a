// SPDX-License-Identifier: MIT
// Package: lexspace/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Dimension errors also wrap space.ErrInvalidSpec and the engine cause,
//     so errors.Is(err, space.ErrInvalidSpec) holds for every invalid dimension.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrNoDimensions indicates Build was called without any Dimension.
var ErrNoDimensions = errors.New("builder: no dimensions")

// ErrInvalidDimension indicates that a Dimension constructor received
// parameters outside its domain (negative count, min > max, count > pool
// size for distinct kinds, empty or duplicate pool).
// Usage: if errors.Is(err, ErrInvalidDimension) { /* report bad dimension */ }.
var ErrInvalidDimension = errors.New("builder: invalid dimension")

// ErrBadStride indicates a sampled traversal with offset < 0 or step < 1.
var ErrBadStride = errors.New("builder: invalid offset or step")

// ErrConstructFailed indicates a programmer error surfaced at Build time,
// e.g. a nil Dimension or an ID scheme that panicked while generating a pool.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrNeedRandSource indicates Generator.Random was used without WithSeed or
// WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>"; %w verbs
// in format keep their wrapping semantics.
func builderErrorf(method, format string, args ...interface{}) error {
	inner := fmt.Errorf(format, args...)
	return fmt.Errorf("%s: %w", method, inner)
}

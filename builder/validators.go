// Package builder provides validation helpers to enforce parameter
// contracts in Dimension constructors.
//
// Each function returns an error wrapping ErrInvalidDimension when its
// precondition is violated. Pool-size constraints are left to the space
// package, which owns them.
package builder

import "github.com/katalvlaran/lexspace/space"

// validateMin ensures that got ≥ min.
// Returns "<Method>: parameter must be ≥ <min>, got <got>" otherwise.
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return builderErrorf(method, "parameter must be ≥ %d, got %d: %w: %w", min, got, ErrInvalidDimension, space.ErrInvalidSpec)
	}

	return nil
}

// validateRange checks 0 ≤ lo ≤ hi.
// Complexity: O(1) time and space.
func validateRange(method string, lo, hi int) error {
	if lo < 0 || lo > hi {
		return builderErrorf(method, "need 0 ≤ min ≤ max, got min=%d max=%d: %w: %w", lo, hi, ErrInvalidDimension, space.ErrInvalidSpec)
	}

	return nil
}

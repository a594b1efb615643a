package space

import "errors"

var (
	// ErrInvalidSpec indicates a Pool or Selection that violates its
	// construction invariants. Always reported by the constructor, never
	// deferred to Unrank.
	ErrInvalidSpec = errors.New("space: invalid spec")

	// ErrRankOutOfRange indicates rank < 0 or rank ≥ Count().
	ErrRankOutOfRange = errors.New("space: rank out of range")

	// ErrNotInSpace indicates that Rank was asked for an element the space
	// does not contain (unknown item, wrong size, wrong dimension count, ...).
	ErrNotInSpace = errors.New("space: element not in space")
)

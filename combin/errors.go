package combin

import "errors"

var (
	// ErrInvalidSize indicates a pool size or selection size outside the
	// domain of the requested kind (n < 1, k < 0, or k > n where distinctness
	// is required).
	ErrInvalidSize = errors.New("combin: invalid size")

	// ErrRankOutOfRange indicates rank < 0 or rank ≥ Count. Never clamped.
	ErrRankOutOfRange = errors.New("combin: rank out of range")

	// ErrInvalidSelection indicates that Rank received an index sequence which
	// is not a member of the space (wrong length, index out of range,
	// duplicate where distinctness is required, or wrong multiplicities).
	ErrInvalidSelection = errors.New("combin: invalid selection")
)

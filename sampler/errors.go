package sampler

import "errors"

var (
	// ErrSpaceExhausted reports that a traversal asked for an element beyond
	// the last valid position. Distinct from space.ErrRankOutOfRange: under a
	// constraint it occurs mid-stream although every scanned rank is in range.
	ErrSpaceExhausted = errors.New("sampler: space exhausted")

	// ErrScanLimitExceeded reports that the forward scan rejected more
	// consecutive candidates than the configured limit. The Sequence keeps
	// its position; calling Next again resumes the scan.
	ErrScanLimitExceeded = errors.New("sampler: scan limit exceeded")
)

package sampler

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lexspace/space"
)

// NthValid returns the n-th (zero-based) element of the sampled sequence
// described by opts, together with its rank.
//
// Unconstrained, this is Unrank(offset + n·step): a single unrank.
// Constrained, it is valid element number n·step at or after offset, found
// by forward scan (see the package caveat on unbounded scans).
func NthValid(sp *space.Space, n *big.Int, opts ...Option) (space.Element, *big.Int, error) {
	if n == nil || n.Sign() < 0 {
		return space.Element{}, nil, fmt.Errorf("NthValid: n %v must be ≥ 0: %w", n, space.ErrRankOutOfRange)
	}
	s, err := New(sp, opts...)
	if err != nil {
		return space.Element{}, nil, err
	}

	// n·step strides from offset
	jump := new(big.Int).Mul(n, s.opts.Step)
	if s.opts.Constraint == nil {
		s.cursor.Add(s.cursor, jump)
	} else {
		s.skip.Set(jump)
	}

	e, err := s.Next()
	if err != nil {
		return space.Element{}, nil, fmt.Errorf("NthValid(%v): %w", n, err)
	}

	return e, s.Rank(), nil
}

// AlignedRanges splits the unconstrained sampled traversal
// offset, offset+step, … < Count() into at most parts rank ranges, each
// starting on a sampled rank. A worker running
//
//	New(sp, WithRange(r), WithStep(step))
//
// for each returned r produces a disjoint slice of the single-worker
// sequence, and the concatenation in range order equals it.
//
// Under a constraint the stride counts accepted elements, which depends on
// everything scanned before; per-range workers therefore each restart that
// count and their union is not the single-worker sequence.
func AlignedRanges(sp *space.Space, parts int, offset, step *big.Int) ([]space.Range, error) {
	if sp == nil {
		return nil, fmt.Errorf("AlignedRanges: nil space: %w", space.ErrInvalidSpec)
	}
	if offset == nil || offset.Sign() < 0 || step == nil || step.Sign() <= 0 {
		return nil, fmt.Errorf("AlignedRanges: need offset ≥ 0 and step ≥ 1: %w", space.ErrInvalidSpec)
	}
	count := sp.Count()
	if offset.Cmp(count) >= 0 {
		return nil, fmt.Errorf("AlignedRanges: offset %v ≥ %v: %w", offset, count, ErrSpaceExhausted)
	}

	// samples = ceil((count - offset) / step)
	samples := new(big.Int).Sub(count, offset)
	samples.Add(samples, step)
	samples.Sub(samples, big.NewInt(1))
	samples.Quo(samples, step)

	sampleRanges, err := space.Partition(samples, parts)
	if err != nil {
		return nil, fmt.Errorf("AlignedRanges: %w", err)
	}

	out := make([]space.Range, len(sampleRanges))
	for i, sr := range sampleRanges {
		start := new(big.Int).Mul(sr.Start, step)
		start.Add(start, offset)
		// one past the last sampled rank of this range
		end := new(big.Int).Sub(sr.End, big.NewInt(1))
		end.Mul(end, step)
		end.Add(end, offset)
		end.Add(end, big.NewInt(1))
		out[i] = space.Range{Start: start, End: end}
	}

	return out, nil
}

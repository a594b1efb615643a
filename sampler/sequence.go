package sampler

import (
	"errors"
	"fmt"
	"iter"
	"math/big"

	"github.com/katalvlaran/lexspace/space"
)

// Sequence is a lazy, restartable traversal of a Space. It holds at most
// one element and a handful of counters; nothing of the space is buffered.
type Sequence struct {
	sp     *space.Space
	opts   Options
	end    *big.Int
	cursor *big.Int // next rank to examine
	skip   *big.Int // valid elements to pass over before the next emit
	last   *big.Int // rank of the last emitted element
	one    *big.Int
}

// New returns a Sequence over sp configured by opts. A nil sp is rejected
// with space.ErrInvalidSpec.
func New(sp *space.Space, opts ...Option) (*Sequence, error) {
	if sp == nil {
		return nil, fmt.Errorf("sampler.New: nil space: %w", space.ErrInvalidSpec)
	}

	o := resolve(opts)
	end := sp.Count()
	if o.End != nil && o.End.Cmp(end) < 0 {
		end.Set(o.End)
	}

	s := &Sequence{sp: sp, opts: o, end: end, one: big.NewInt(1)}
	s.Reset()

	return s, nil
}

// Reset rewinds the sequence to its initial offset. The sequence then
// reproduces exactly the elements it produced before.
func (s *Sequence) Reset() {
	s.cursor = new(big.Int).Set(s.opts.Offset)
	s.skip = new(big.Int)
	s.last = nil
}

// Seek moves the cursor to an absolute rank: the next element produced is
// the first one (valid, if constrained) at or after rank, and striding
// continues from there. Panics on nil or negative rank.
func (s *Sequence) Seek(rank *big.Int) {
	if rank == nil || rank.Sign() < 0 {
		panic("sampler: Seek(rank<0)")
	}
	s.cursor = new(big.Int).Set(rank)
	s.skip = new(big.Int)
}

// Rank returns the rank of the element most recently returned by Next, or
// nil if none has been returned since construction or Reset.
func (s *Sequence) Rank() *big.Int {
	if s.last == nil {
		return nil
	}
	return new(big.Int).Set(s.last)
}

// Cursor returns the next rank the sequence will examine.
func (s *Sequence) Cursor() *big.Int { return new(big.Int).Set(s.cursor) }

// Options returns the resolved options.
func (s *Sequence) Options() Options { return s.opts }

// Next returns the next sampled element. It returns ErrSpaceExhausted once
// no element remains below the end rank, and ErrScanLimitExceeded when a
// constrained scan rejects more than ScanLimit candidates in a row (calling
// Next again resumes where the scan stopped).
func (s *Sequence) Next() (space.Element, error) {
	if s.opts.Constraint == nil {
		return s.nextDirect()
	}

	return s.nextFiltered()
}

// nextDirect: one unrank per step.
func (s *Sequence) nextDirect() (space.Element, error) {
	if err := s.opts.Ctx.Err(); err != nil {
		return space.Element{}, err
	}
	if s.cursor.Cmp(s.end) >= 0 {
		return space.Element{}, fmt.Errorf("Next: rank %v ≥ %v: %w", s.cursor, s.end, ErrSpaceExhausted)
	}

	e, err := s.sp.Unrank(s.cursor)
	if err != nil {
		return space.Element{}, err
	}
	s.last = new(big.Int).Set(s.cursor)
	s.cursor.Add(s.cursor, s.opts.Step)

	return e, nil
}

// nextFiltered scans forward rank by rank; only accepted elements count
// toward the stride.
func (s *Sequence) nextFiltered() (space.Element, error) {
	var (
		rejected uint64
		e        space.Element
		err      error
	)
	for {
		select {
		case <-s.opts.Ctx.Done():
			return space.Element{}, s.opts.Ctx.Err()
		default:
		}

		if s.cursor.Cmp(s.end) >= 0 {
			return space.Element{}, fmt.Errorf("Next: no valid element below %v: %w", s.end, ErrSpaceExhausted)
		}
		if e, err = s.sp.Unrank(s.cursor); err != nil {
			return space.Element{}, err
		}
		rank := new(big.Int).Set(s.cursor)
		s.cursor.Add(s.cursor, s.one)

		if !s.opts.Constraint(e) {
			rejected++
			if s.opts.ScanLimit > 0 && rejected > s.opts.ScanLimit {
				return space.Element{}, fmt.Errorf("Next: %d consecutive rejections up to rank %v: %w", rejected, rank, ErrScanLimitExceeded)
			}
			continue
		}
		rejected = 0

		if s.skip.Sign() > 0 {
			s.skip.Sub(s.skip, s.one)
			continue
		}

		s.last = rank
		s.skip.Sub(s.opts.Step, s.one)

		return e, nil
	}
}

// All adapts the sequence to a range-over-func loop. Exhaustion ends the
// loop silently; any other error is yielded once and ends the loop.
//
//	for e, err := range seq.All() { … }
func (s *Sequence) All() iter.Seq2[space.Element, error] {
	return func(yield func(space.Element, error) bool) {
		for {
			e, err := s.Next()
			if errors.Is(err, ErrSpaceExhausted) {
				return
			}
			if !yield(e, err) || err != nil {
				return
			}
		}
	}
}

// Collect returns up to limit further elements (limit ≤ 0: until
// exhaustion). Exhaustion is not an error here; other errors are returned
// together with the elements gathered so far.
func (s *Sequence) Collect(limit int) ([]space.Element, error) {
	var out []space.Element
	for e, err := range s.All() {
		if err != nil {
			return out, err
		}
		out = append(out, e)
		if limit > 0 && len(out) >= limit {
			break
		}
	}

	return out, nil
}

package space

import (
	"fmt"
	"math/big"
)

// Range is the half-open rank interval [Start, End).
type Range struct {
	Start *big.Int
	End   *big.Int
}

// Len returns End - Start.
func (r Range) Len() *big.Int { return new(big.Int).Sub(r.End, r.Start) }

// Contains reports whether Start ≤ rank < End.
func (r Range) Contains(rank *big.Int) bool {
	return rank.Cmp(r.Start) >= 0 && rank.Cmp(r.End) < 0
}

// String renders the range as "[start,end)".
func (r Range) String() string { return fmt.Sprintf("[%v,%v)", r.Start, r.End) }

// Partition splits [0,Count()) into at most parts contiguous, non-empty,
// near-equal ranges (sizes differ by at most one, larger ranges first).
// Each range can be handed to an independent worker; since every rank is
// unranked independently, no coordination is needed.
func (sp *Space) Partition(parts int) ([]Range, error) {
	return Partition(sp.total, parts)
}

// Partition splits [0,count) as described on (*Space).Partition.
func Partition(count *big.Int, parts int) ([]Range, error) {
	if parts < 1 {
		return nil, fmt.Errorf("Partition: parts must be ≥ 1, got %d: %w", parts, ErrInvalidSpec)
	}
	if count == nil || count.Sign() <= 0 {
		return nil, fmt.Errorf("Partition: count must be > 0: %w", ErrInvalidSpec)
	}

	p := big.NewInt(int64(parts))
	if count.Cmp(p) < 0 {
		p.Set(count)
	}
	size, extra := new(big.Int).QuoRem(count, p, new(big.Int))

	n := int(p.Int64())
	out := make([]Range, 0, n)
	start := new(big.Int)
	for i := 0; i < n; i++ {
		end := new(big.Int).Add(start, size)
		if big.NewInt(int64(i)).Cmp(extra) < 0 {
			end.Add(end, big.NewInt(1))
		}
		out = append(out, Range{Start: new(big.Int).Set(start), End: end})
		start.Set(end)
	}

	return out, nil
}

package space

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/lexspace/combin"
)

// Kind tags the variant held by a Selection.
type Kind int

const (
	// KindRepeated selects k items with repetition; order matters.
	KindRepeated Kind = iota
	// KindDistinct selects k distinct items; unordered (increasing pool order).
	KindDistinct
	// KindPermutation selects and orders k distinct items.
	KindPermutation
	// KindRanged is the union of fixed-size bands for every size in [min,max].
	KindRanged
	// KindArrangement orders a multiset of pool items with fixed multiplicities.
	KindArrangement
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindRepeated:
		return "repeated"
	case KindDistinct:
		return "distinct"
	case KindPermutation:
		return "permutation"
	case KindRanged:
		return "ranged"
	case KindArrangement:
		return "arrangement"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Selection is one dimension of a Space: a kind, a pool and size
// parameters. Selections are immutable once constructed; the zero value is
// invalid and rejected by New.
type Selection struct {
	kind   Kind
	band   Kind // fixed kind of each band when kind == KindRanged
	size   int  // fixed kinds
	min    int  // ranged
	max    int  // ranged
	counts []int
	pool   Pool
	total  *big.Int
	bands  []*big.Int // bands[s-min] = count at size s
}

// FixedRepeated selects count items from pool with repetition, order mattering.
func FixedRepeated(count int, pool Pool) (Selection, error) {
	return fixed("FixedRepeated", KindRepeated, count, pool)
}

// FixedDistinct selects count distinct items from pool, unordered.
func FixedDistinct(count int, pool Pool) (Selection, error) {
	return fixed("FixedDistinct", KindDistinct, count, pool)
}

// Permutation selects and orders count distinct items from pool.
func Permutation(count int, pool Pool) (Selection, error) {
	return fixed("Permutation", KindPermutation, count, pool)
}

// Ranged is the union of FixedDistinct(size, pool) for size in [min,max],
// ordered by increasing size first.
func Ranged(min, max int, pool Pool) (Selection, error) {
	return RangedOf(KindDistinct, min, max, pool)
}

// RangedOf is Ranged with an explicit band kind (KindDistinct, KindRepeated
// or KindPermutation). Repeated bands accept max > pool size.
func RangedOf(band Kind, min, max int, pool Pool) (Selection, error) {
	const method = "Ranged"
	if band != KindDistinct && band != KindRepeated && band != KindPermutation {
		return Selection{}, fmt.Errorf("%s: unsupported band kind %s: %w", method, band, ErrInvalidSpec)
	}
	if pool.Len() == 0 {
		return Selection{}, fmt.Errorf("%s: empty pool: %w", method, ErrInvalidSpec)
	}
	if min < 0 || min > max {
		return Selection{}, fmt.Errorf("%s: need 0 ≤ min ≤ max, got min=%d max=%d: %w", method, min, max, ErrInvalidSpec)
	}

	s := Selection{kind: KindRanged, band: band, min: min, max: max, pool: pool, total: new(big.Int)}
	s.bands = make([]*big.Int, 0, max-min+1)
	for size := min; size <= max; size++ {
		c, err := fixedCount(band, pool.Len(), size)
		if err != nil {
			return Selection{}, fmt.Errorf("%s: size %d: %w: %w", method, size, ErrInvalidSpec, err)
		}
		s.bands = append(s.bands, c)
		s.total.Add(s.total, c)
	}

	return s, nil
}

// Arrangement orders the multiset in which pool item i occurs counts[i]
// times. len(counts) must equal the pool size.
func Arrangement(pool Pool, counts []int) (Selection, error) {
	const method = "Arrangement"
	if pool.Len() == 0 {
		return Selection{}, fmt.Errorf("%s: empty pool: %w", method, ErrInvalidSpec)
	}
	if len(counts) != pool.Len() {
		return Selection{}, fmt.Errorf("%s: %d counts for %d items: %w", method, len(counts), pool.Len(), ErrInvalidSpec)
	}
	total, err := combin.MultisetCount(counts)
	if err != nil {
		return Selection{}, fmt.Errorf("%s: %w: %w", method, ErrInvalidSpec, err)
	}
	size := 0
	for _, c := range counts {
		size += c
	}

	return Selection{
		kind:   KindArrangement,
		size:   size,
		counts: append([]int(nil), counts...),
		pool:   pool,
		total:  total,
	}, nil
}

func fixed(method string, kind Kind, count int, pool Pool) (Selection, error) {
	if pool.Len() == 0 {
		return Selection{}, fmt.Errorf("%s: empty pool: %w", method, ErrInvalidSpec)
	}
	total, err := fixedCount(kind, pool.Len(), count)
	if err != nil {
		return Selection{}, fmt.Errorf("%s: %w: %w", method, ErrInvalidSpec, err)
	}

	return Selection{kind: kind, size: count, pool: pool, total: total}, nil
}

func fixedCount(kind Kind, n, k int) (*big.Int, error) {
	switch kind {
	case KindRepeated:
		return combin.RepeatedCount(n, k)
	case KindDistinct:
		return combin.DistinctCount(n, k)
	default:
		return combin.PermutationCount(n, k)
	}
}

// Kind returns the variant tag.
func (s Selection) Kind() Kind { return s.kind }

// Band returns the per-size kind of a ranged selection, or Kind() otherwise.
func (s Selection) Band() Kind {
	if s.kind == KindRanged {
		return s.band
	}
	return s.kind
}

// Pool returns the source pool.
func (s Selection) Pool() Pool { return s.pool }

// Size returns the fixed selection length; for ranged selections it
// returns max.
func (s Selection) Size() int {
	if s.kind == KindRanged {
		return s.max
	}
	return s.size
}

// Range returns [min,max] for ranged selections and [size,size] otherwise.
func (s Selection) Range() (lo, hi int) {
	if s.kind == KindRanged {
		return s.min, s.max
	}
	return s.size, s.size
}

// Counts returns the multiplicities of an arrangement (nil otherwise).
func (s Selection) Counts() []int { return append([]int(nil), s.counts...) }

// Count returns the number of sub-selections, as a new *big.Int.
func (s Selection) Count() *big.Int {
	if s.total == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(s.total)
}

func (s Selection) valid() bool { return s.total != nil }

// UnrankIndices returns the pool indices of the sub-selection at rank.
func (s Selection) UnrankIndices(rank *big.Int) ([]int, error) {
	if !s.valid() {
		return nil, fmt.Errorf("Selection.Unrank: zero Selection: %w", ErrInvalidSpec)
	}
	if rank == nil || rank.Sign() < 0 || rank.Cmp(s.total) >= 0 {
		return nil, fmt.Errorf("Selection.Unrank: rank %v not in [0,%v): %w", rank, s.total, ErrRankOutOfRange)
	}

	n := s.pool.Len()
	switch s.kind {
	case KindRepeated:
		return combin.UnrankRepeated(n, s.size, rank)
	case KindDistinct:
		return combin.UnrankDistinct(n, s.size, rank)
	case KindPermutation:
		return combin.UnrankPermutation(n, s.size, rank)
	case KindArrangement:
		return combin.UnrankMultiset(s.counts, rank)
	default:
		// locate the size band, then delegate with the residual rank
		r := new(big.Int).Set(rank)
		for i, c := range s.bands {
			if r.Cmp(c) < 0 {
				return unrankFixed(s.band, n, s.min+i, r)
			}
			r.Sub(r, c)
		}
		// unreachable: total = Σ bands
		return nil, fmt.Errorf("Selection.Unrank: rank %v beyond bands: %w", rank, ErrRankOutOfRange)
	}
}

func unrankFixed(kind Kind, n, k int, r *big.Int) ([]int, error) {
	switch kind {
	case KindRepeated:
		return combin.UnrankRepeated(n, k, r)
	case KindDistinct:
		return combin.UnrankDistinct(n, k, r)
	default:
		return combin.UnrankPermutation(n, k, r)
	}
}

func rankFixed(kind Kind, n int, idx []int) (*big.Int, error) {
	switch kind {
	case KindRepeated:
		return combin.RankRepeated(n, idx)
	case KindDistinct:
		return combin.RankDistinct(n, idx)
	default:
		return combin.RankPermutation(n, idx)
	}
}

// RankIndices is the inverse of UnrankIndices.
func (s Selection) RankIndices(idx []int) (*big.Int, error) {
	if !s.valid() {
		return nil, fmt.Errorf("Selection.Rank: zero Selection: %w", ErrInvalidSpec)
	}

	var (
		r   *big.Int
		err error
	)
	n := s.pool.Len()
	switch s.kind {
	case KindArrangement:
		r, err = combin.RankMultiset(s.counts, idx)
	case KindRanged:
		size := len(idx)
		if size < s.min || size > s.max {
			return nil, fmt.Errorf("Selection.Rank: size %d not in [%d,%d]: %w", size, s.min, s.max, ErrNotInSpace)
		}
		if r, err = rankFixed(s.band, n, idx); err == nil {
			for i := 0; i < size-s.min; i++ {
				r.Add(r, s.bands[i])
			}
		}
	default:
		if len(idx) != s.size {
			return nil, fmt.Errorf("Selection.Rank: size %d, want %d: %w", len(idx), s.size, ErrNotInSpace)
		}
		r, err = rankFixed(s.kind, n, idx)
	}
	if err != nil {
		if errors.Is(err, combin.ErrInvalidSelection) {
			return nil, fmt.Errorf("Selection.Rank: %w: %w", ErrNotInSpace, err)
		}
		return nil, fmt.Errorf("Selection.Rank: %w", err)
	}

	return r, nil
}

// Unrank returns the items of the sub-selection at rank.
func (s Selection) Unrank(rank *big.Int) ([]string, error) {
	idx, err := s.UnrankIndices(rank)
	if err != nil {
		return nil, err
	}

	return s.pool.resolve(idx), nil
}

// Rank returns the rank of the given items within this selection.
func (s Selection) Rank(items []string) (*big.Int, error) {
	if !s.valid() {
		return nil, fmt.Errorf("Selection.Rank: zero Selection: %w", ErrInvalidSpec)
	}
	idx, err := s.pool.lookup(items)
	if err != nil {
		return nil, fmt.Errorf("Selection.Rank: %w", err)
	}

	return s.RankIndices(idx)
}

// String describes the selection, e.g. "distinct(2 of 5)".
func (s Selection) String() string {
	switch s.kind {
	case KindRanged:
		return fmt.Sprintf("ranged(%s %d..%d of %d)", s.band, s.min, s.max, s.pool.Len())
	case KindArrangement:
		return fmt.Sprintf("arrangement(%v)", s.counts)
	default:
		return fmt.Sprintf("%s(%d of %d)", s.kind, s.size, s.pool.Len())
	}
}

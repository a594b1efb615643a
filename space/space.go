package space

import (
	"fmt"
	"math/big"
)

// Space is the Cartesian product of its Selections, ordered as mixed-radix
// digits where the last dimension is least significant.
type Space struct {
	dims  []Selection
	total *big.Int
}

// New builds a Space from at least one valid Selection.
// Count() = Π dims[i].Count().
func New(dims ...Selection) (*Space, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("space.New: no dimensions: %w", ErrInvalidSpec)
	}

	sp := &Space{dims: make([]Selection, len(dims)), total: big.NewInt(1)}
	for i, d := range dims {
		if !d.valid() {
			return nil, fmt.Errorf("space.New: dimension %d is a zero Selection: %w", i, ErrInvalidSpec)
		}
		sp.dims[i] = d
		sp.total.Mul(sp.total, d.total)
	}

	return sp, nil
}

// Count returns the number of elements, as a new *big.Int.
func (sp *Space) Count() *big.Int { return new(big.Int).Set(sp.total) }

// Dims returns the number of dimensions.
func (sp *Space) Dims() int { return len(sp.dims) }

// Dim returns dimension i.
func (sp *Space) Dim(i int) Selection { return sp.dims[i] }

// Contains reports whether 0 ≤ rank < Count().
func (sp *Space) Contains(rank *big.Int) bool {
	return rank != nil && rank.Sign() >= 0 && rank.Cmp(sp.total) < 0
}

// UnrankIndices returns, per dimension, the pool indices of the element at
// rank. Local ranks are peeled off from the last dimension to the first:
// local_i = rank mod count_i, rank = rank div count_i.
func (sp *Space) UnrankIndices(rank *big.Int) ([][]int, error) {
	if !sp.Contains(rank) {
		return nil, fmt.Errorf("Unrank: rank %v not in [0,%v): %w", rank, sp.total, ErrRankOutOfRange)
	}

	out := make([][]int, len(sp.dims))
	r := new(big.Int).Set(rank)
	local := new(big.Int)
	var err error
	for i := len(sp.dims) - 1; i >= 0; i-- {
		r.QuoRem(r, sp.dims[i].total, local)
		if out[i], err = sp.dims[i].UnrankIndices(local); err != nil {
			return nil, fmt.Errorf("Unrank: dimension %d: %w", i, err)
		}
	}

	return out, nil
}

// Unrank returns the element at rank without enumerating earlier elements.
func (sp *Space) Unrank(rank *big.Int) (Element, error) {
	idx, err := sp.UnrankIndices(rank)
	if err != nil {
		return Element{}, err
	}

	e := Element{parts: make([][]string, len(idx))}
	for i, part := range idx {
		e.parts[i] = sp.dims[i].pool.resolve(part)
	}

	return e, nil
}

// RankIndices is the inverse of UnrankIndices: rank = rank·count_i + local_i,
// first dimension to last.
func (sp *Space) RankIndices(parts [][]int) (*big.Int, error) {
	if len(parts) != len(sp.dims) {
		return nil, fmt.Errorf("Rank: %d parts for %d dimensions: %w", len(parts), len(sp.dims), ErrNotInSpace)
	}

	rank := new(big.Int)
	for i, part := range parts {
		local, err := sp.dims[i].RankIndices(part)
		if err != nil {
			return nil, fmt.Errorf("Rank: dimension %d: %w", i, err)
		}
		rank.Mul(rank, sp.dims[i].total)
		rank.Add(rank, local)
	}

	return rank, nil
}

// Rank returns the rank of e.
func (sp *Space) Rank(e Element) (*big.Int, error) {
	if len(e.parts) != len(sp.dims) {
		return nil, fmt.Errorf("Rank: %d parts for %d dimensions: %w", len(e.parts), len(sp.dims), ErrNotInSpace)
	}

	parts := make([][]int, len(e.parts))
	for i, p := range e.parts {
		idx, err := sp.dims[i].pool.lookup(p)
		if err != nil {
			return nil, fmt.Errorf("Rank: dimension %d: %w", i, err)
		}
		parts[i] = idx
	}

	return sp.RankIndices(parts)
}

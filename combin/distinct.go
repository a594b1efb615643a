package combin

import (
	"fmt"
	"math/big"
)

// DistinctCount returns C(n,k), the number of k-subsets of n items.
func DistinctCount(n, k int) (*big.Int, error) {
	if err := checkSizes("DistinctCount", n, k, true); err != nil {
		return nil, err
	}

	return Binomial(n, k), nil
}

// UnrankDistinct returns the rank-th k-subset of {0..n-1} in lexicographic
// order, as a strictly increasing index slice.
//
// The lexicographic rank r of a subset {a₀<…<a_{k-1}} relates to the
// combinadic of its mirror image {n-1-a_{k-1} < … < n-1-a₀}:
//
//	C(n,k) - 1 - r = Σ C(n-1-a_j, k-j)
//
// so the greedy combinadic decomposition of the complement rank yields the
// elements in increasing order. Within one position the candidate binomial is
// updated incrementally (C(c-1,i) = C(c,i)·(c-i)/c), and candidates only ever
// decrease, so the total scan is O(n) plus O(k²) for seeding each position.
func UnrankDistinct(n, k int, rank *big.Int) ([]int, error) {
	count, err := DistinctCount(n, k)
	if err != nil {
		return nil, err
	}
	if err = checkRank("UnrankDistinct", rank, count); err != nil {
		return nil, err
	}

	// complement rank
	rem := new(big.Int).Sub(count, big.NewInt(1))
	rem.Sub(rem, rank)

	out := make([]int, k)
	upper := n
	var (
		c, i int
		b    *big.Int
	)
	for pos := 0; pos < k; pos++ {
		i = k - pos
		c = upper - 1
		b = Binomial(c, i)
		// largest c with C(c,i) ≤ rem
		for b.Cmp(rem) > 0 {
			b.Mul(b, big.NewInt(int64(c-i)))
			b.Quo(b, big.NewInt(int64(c)))
			c--
		}
		rem.Sub(rem, b)
		out[pos] = n - 1 - c
		upper = c
	}

	return out, nil
}

// RankDistinct is the inverse of UnrankDistinct. idx must be strictly
// increasing with every index in [0,n).
func RankDistinct(n int, idx []int) (*big.Int, error) {
	k := len(idx)
	count, err := DistinctCount(n, k)
	if err != nil {
		return nil, err
	}

	acc := new(big.Int)
	prev := -1
	for pos, v := range idx {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("RankDistinct: index %d at position %d not in [0,%d): %w", v, pos, n, ErrInvalidSelection)
		}
		if v <= prev {
			return nil, fmt.Errorf("RankDistinct: indices must be strictly increasing at position %d: %w", pos, ErrInvalidSelection)
		}
		acc.Add(acc, Binomial(n-1-v, k-pos))
		prev = v
	}

	rank := new(big.Int).Sub(count, big.NewInt(1))

	return rank.Sub(rank, acc), nil
}

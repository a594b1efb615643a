package combin

import (
	"fmt"
	"math/big"
)

// PermutationCount returns P(n,k) = n!/(n-k)!.
func PermutationCount(n, k int) (*big.Int, error) {
	if err := checkSizes("PermutationCount", n, k, true); err != nil {
		return nil, err
	}

	return Falling(n, k), nil
}

// UnrankPermutation returns the rank-th ordered k-sequence of distinct
// indices from [0,n) in lexicographic order.
//
// rank is decomposed into a truncated Lehmer code d₀…d_{k-1} with radices
// n, n-1, …, n-k+1 (d₀ most significant), by successive division starting
// from the least significant radix n-k+1. Digit d_j then selects the d_j-th
// smallest index not yet used.
func UnrankPermutation(n, k int, rank *big.Int) ([]int, error) {
	count, err := PermutationCount(n, k)
	if err != nil {
		return nil, err
	}
	if err = checkRank("UnrankPermutation", rank, count); err != nil {
		return nil, err
	}

	code := make([]int, k)
	r := new(big.Int).Set(rank)
	digit := new(big.Int)
	for j := k - 1; j >= 0; j-- {
		r.QuoRem(r, big.NewInt(int64(n-j)), digit)
		code[j] = int(digit.Int64())
	}

	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}
	out := make([]int, k)
	for j, d := range code {
		out[j] = remaining[d]
		remaining = append(remaining[:d], remaining[d+1:]...)
	}

	return out, nil
}

// RankPermutation is the inverse of UnrankPermutation. idx must hold
// distinct indices in [0,n).
func RankPermutation(n int, idx []int) (*big.Int, error) {
	k := len(idx)
	if err := checkSizes("RankPermutation", n, k, true); err != nil {
		return nil, err
	}

	used := make([]bool, n)
	rank := new(big.Int)
	var d int
	for j, v := range idx {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("RankPermutation: index %d at position %d not in [0,%d): %w", v, j, n, ErrInvalidSelection)
		}
		if used[v] {
			return nil, fmt.Errorf("RankPermutation: index %d repeated at position %d: %w", v, j, ErrInvalidSelection)
		}
		// Lehmer digit: unused indices smaller than v
		d = 0
		for u := 0; u < v; u++ {
			if !used[u] {
				d++
			}
		}
		used[v] = true
		rank.Mul(rank, big.NewInt(int64(n-j)))
		rank.Add(rank, big.NewInt(int64(d)))
	}

	return rank, nil
}

package combin

import (
	"fmt"
	"math/big"
)

// RepeatedCount returns n^k, the number of k-tuples over n items.
func RepeatedCount(n, k int) (*big.Int, error) {
	if err := checkSizes("RepeatedCount", n, k, false); err != nil {
		return nil, err
	}

	return Pow(n, k), nil
}

// UnrankRepeated returns the k-tuple of indices in [0,n) at the given rank.
// The tuple is the base-n numeral of rank, most significant digit first.
func UnrankRepeated(n, k int, rank *big.Int) ([]int, error) {
	count, err := RepeatedCount(n, k)
	if err != nil {
		return nil, err
	}
	if err = checkRank("UnrankRepeated", rank, count); err != nil {
		return nil, err
	}

	out := make([]int, k)
	r := new(big.Int).Set(rank)
	base := big.NewInt(int64(n))
	digit := new(big.Int)
	// least significant digit is the last position
	for i := k - 1; i >= 0; i-- {
		r.QuoRem(r, base, digit)
		out[i] = int(digit.Int64())
	}

	return out, nil
}

// RankRepeated is the inverse of UnrankRepeated.
func RankRepeated(n int, idx []int) (*big.Int, error) {
	if err := checkSizes("RankRepeated", n, len(idx), false); err != nil {
		return nil, err
	}

	rank := new(big.Int)
	base := big.NewInt(int64(n))
	for pos, v := range idx {
		if v < 0 || v >= n {
			return nil, fmt.Errorf("RankRepeated: index %d at position %d not in [0,%d): %w", v, pos, n, ErrInvalidSelection)
		}
		rank.Mul(rank, base)
		rank.Add(rank, big.NewInt(int64(v)))
	}

	return rank, nil
}

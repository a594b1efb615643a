package combin

import (
	"fmt"
	"math/big"
)

// Binomial returns C(n,k) as a new *big.Int.
// C(n,k) is 0 when k < 0, n < 0 or k > n.
// Complexity: O(min(k, n-k)) big multiplications.
func Binomial(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}

	return new(big.Int).Binomial(int64(n), int64(k))
}

// Pow returns n^k as a new *big.Int; 0^0 is 1.
// Negative k yields 0.
func Pow(n, k int) *big.Int {
	if k < 0 {
		return new(big.Int)
	}

	return new(big.Int).Exp(big.NewInt(int64(n)), big.NewInt(int64(k)), nil)
}

// Falling returns the falling factorial n·(n-1)·…·(n-k+1) = P(n,k).
// Falling(n,0) is 1; it is 0 when k < 0 or k > n.
func Falling(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}
	if k == 0 {
		return big.NewInt(1)
	}

	return new(big.Int).MulRange(int64(n-k+1), int64(n))
}

// Factorial returns n! (1 for n ≤ 0).
func Factorial(n int) *big.Int {
	if n <= 1 {
		return big.NewInt(1)
	}

	return new(big.Int).MulRange(1, int64(n))
}

// Multinomial returns (Σcᵢ)! / Π cᵢ!, the number of distinct arrangements
// of a multiset with the given multiplicities. Negative counts yield 0.
// Computed as a product of binomials to keep intermediates small.
func Multinomial(counts []int) *big.Int {
	res := big.NewInt(1)
	total := 0
	for _, c := range counts {
		if c < 0 {
			return new(big.Int)
		}
		total += c
		res.Mul(res, Binomial(total, c))
	}

	return res
}

// checkRank verifies 0 ≤ rank < count.
func checkRank(method string, rank, count *big.Int) error {
	if rank == nil || rank.Sign() < 0 || rank.Cmp(count) >= 0 {
		return fmt.Errorf("%s: rank %v not in [0,%v): %w", method, rank, count, ErrRankOutOfRange)
	}

	return nil
}

// checkSizes verifies n ≥ 1, k ≥ 0 and, when distinct, k ≤ n.
func checkSizes(method string, n, k int, distinct bool) error {
	if n < 1 {
		return fmt.Errorf("%s: pool size must be ≥ 1, got %d: %w", method, n, ErrInvalidSize)
	}
	if k < 0 {
		return fmt.Errorf("%s: count must be ≥ 0, got %d: %w", method, k, ErrInvalidSize)
	}
	if distinct && k > n {
		return fmt.Errorf("%s: count %d exceeds pool size %d: %w", method, k, n, ErrInvalidSize)
	}

	return nil
}

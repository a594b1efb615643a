package combin

import (
	"fmt"
	"math/big"
)

// checkCounts validates multiset multiplicities and returns their sum.
func checkCounts(method string, counts []int) (int, error) {
	if len(counts) == 0 {
		return 0, fmt.Errorf("%s: no items: %w", method, ErrInvalidSize)
	}
	total := 0
	for i, c := range counts {
		if c < 0 {
			return 0, fmt.Errorf("%s: count of item %d must be ≥ 0, got %d: %w", method, i, c, ErrInvalidSize)
		}
		total += c
	}

	return total, nil
}

// MultisetCount returns L!/Π cᵢ! where L = Σ cᵢ.
func MultisetCount(counts []int) (*big.Int, error) {
	if _, err := checkCounts("MultisetCount", counts); err != nil {
		return nil, err
	}

	return Multinomial(counts), nil
}

// UnrankMultiset returns the rank-th arrangement, in lexicographic order of
// item index, of the multiset where item i occurs counts[i] times.
//
// At each position the block of arrangements starting with item s has size
// total·rem[s]/remLen; blocks are walked in increasing s.
func UnrankMultiset(counts []int, rank *big.Int) ([]int, error) {
	length, err := checkCounts("UnrankMultiset", counts)
	if err != nil {
		return nil, err
	}
	total := Multinomial(counts)
	if err = checkRank("UnrankMultiset", rank, total); err != nil {
		return nil, err
	}

	rem := append([]int(nil), counts...)
	r := new(big.Int).Set(rank)
	block := new(big.Int)
	out := make([]int, length)
	for pos := 0; pos < length; pos++ {
		remLen := big.NewInt(int64(length - pos))
		for s, c := range rem {
			if c == 0 {
				continue
			}
			block.Mul(total, big.NewInt(int64(c)))
			block.Quo(block, remLen)
			if r.Cmp(block) < 0 {
				out[pos] = s
				total.Set(block)
				rem[s]--
				break
			}
			r.Sub(r, block)
		}
	}

	return out, nil
}

// RankMultiset is the inverse of UnrankMultiset. idx must use item i exactly
// counts[i] times.
func RankMultiset(counts []int, idx []int) (*big.Int, error) {
	length, err := checkCounts("RankMultiset", counts)
	if err != nil {
		return nil, err
	}
	if len(idx) != length {
		return nil, fmt.Errorf("RankMultiset: length %d, want %d: %w", len(idx), length, ErrInvalidSelection)
	}

	rem := append([]int(nil), counts...)
	total := Multinomial(counts)
	rank := new(big.Int)
	block := new(big.Int)
	for pos, v := range idx {
		if v < 0 || v >= len(rem) || rem[v] == 0 {
			return nil, fmt.Errorf("RankMultiset: item %d at position %d exceeds its multiplicity: %w", v, pos, ErrInvalidSelection)
		}
		remLen := big.NewInt(int64(length - pos))
		for s := 0; s < v; s++ {
			if rem[s] == 0 {
				continue
			}
			block.Mul(total, big.NewInt(int64(rem[s])))
			block.Quo(block, remLen)
			rank.Add(rank, block)
		}
		total.Mul(total, big.NewInt(int64(rem[v])))
		total.Quo(total, remLen)
		rem[v]--
	}

	return rank, nil
}

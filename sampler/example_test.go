package sampler_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lexspace/sampler"
	"github.com/katalvlaran/lexspace/space"
)

// ExampleSequence samples every 2nd two-letter password over {a,b,c}
// that never repeats a letter back to back.
func ExampleSequence() {
	pool := space.MustPool("a", "b", "c")
	dim, _ := space.FixedRepeated(2, pool)
	sp, _ := space.New(dim)

	seq, err := sampler.New(sp,
		sampler.WithConstraint(sampler.NoAdjacentRepeat()),
		sampler.WithStepInt(2),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for e, err := range seq.All() {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(seq.Rank(), e)
	}

	// Output:
	// 1 ab
	// 3 ba
	// 6 ca
}

// ExampleNthValid jumps directly to the millionth 12-character key over a
// 36-symbol alphabet, sampling every 1000th key.
func ExampleNthValid() {
	symbols := make([]string, 36)
	for i := range symbols {
		symbols[i] = big.NewInt(int64(i)).Text(36)
	}
	dim, _ := space.FixedRepeated(12, space.MustPool(symbols...))
	sp, _ := space.New(dim)

	e, rank, err := sampler.NthValid(sp, big.NewInt(1_000_000), sampler.WithStepInt(1000))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(rank, e)

	// Output:
	// 1000000000 000000gjdgxs
}

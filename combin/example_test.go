package combin_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lexspace/combin"
)

// ExampleUnrankDistinct lists C(5,3) = 10 subsets by jumping straight to
// each rank.
func ExampleUnrankDistinct() {
	for r := int64(0); r < 10; r += 3 {
		idx, err := combin.UnrankDistinct(5, 3, big.NewInt(r))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(r, idx)
	}

	// Output:
	// 0 [0 1 2]
	// 3 [0 2 3]
	// 6 [1 2 3]
	// 9 [2 3 4]
}

// ExampleUnrankPermutation shows the lexicographic 2-permutations of 3 items.
func ExampleUnrankPermutation() {
	count, _ := combin.PermutationCount(3, 2)
	for r := int64(0); r < count.Int64(); r++ {
		idx, _ := combin.UnrankPermutation(3, 2, big.NewInt(r))
		fmt.Print(idx, " ")
	}
	fmt.Println()

	// Output:
	// [0 1] [0 2] [1 0] [1 2] [2 0] [2 1]
}

// ExampleUnrankMultiset: eight bits with four ones, item 0 standing for "1".
func ExampleUnrankMultiset() {
	idx, _ := combin.UnrankMultiset([]int{4, 4}, big.NewInt(0))
	fmt.Println(idx)
	idx, _ = combin.UnrankMultiset([]int{4, 4}, big.NewInt(69))
	fmt.Println(idx)

	// Output:
	// [0 0 0 0 1 1 1 1]
	// [1 1 1 1 0 0 0 0]
}

// Package combin implements rank/unrank arithmetic for the primitive
// selection kinds used by lexspace: repeated tuples, distinct subsets,
// k-permutations and multiset arrangements.
//
// What:
//
//   - Repeated:    k-tuples over n items, repetition allowed, order matters.
//     Base-n numeral, most significant digit first. Count n^k.
//   - Distinct:    k-subsets of {0..n-1} as increasing index sequences.
//     Lexicographic order via the combinatorial number system (combinadic)
//     applied to the complement rank. Count C(n,k).
//   - Permutation: ordered k-sequences of distinct indices. Truncated Lehmer
//     code with radices n, n-1, …, n-k+1. Count P(n,k) = n!/(n-k)!.
//   - Multiset:    arrangements of a multiset given by per-item counts.
//     Count L!/Π cᵢ!.
//
// Every kind provides Count, Unrank and Rank. Unrank and Rank are exact
// inverses, and Unrank is strictly monotone: r1 < r2 implies the index
// sequence of r1 is lexicographically smaller than that of r2.
//
// Arithmetic:
//
//	All counts and ranks are *big.Int. Results are freshly allocated;
//	input ranks are never mutated.
//
// Complexity:
//
//   - Repeated:    O(k) big divisions.
//   - Distinct:    O(n + k²) big operations (incremental binomials).
//   - Permutation: O(k) big divisions + O(k·n) index bookkeeping.
//   - Multiset:    O(L·m) big operations, m = number of distinct items.
//
// Errors:
//
//   - ErrInvalidSize       negative size, k > n for distinct kinds, empty pool
//   - ErrRankOutOfRange    rank < 0 or rank ≥ count
//   - ErrInvalidSelection  Rank received a sequence that is not a member
package combin

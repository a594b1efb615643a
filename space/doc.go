// Package space describes constrained combinatorial spaces declaratively and
// converts between a rank and the element at that rank.
//
// A Space is an ordered Cartesian product of Selections. Each Selection is
// an immutable tagged variant over a Pool of distinguishable items:
//
//   - Repeated(k):        k items, repetition allowed, order matters (n^k)
//   - Distinct(k):        k distinct items, unordered (C(n,k))
//   - Permutation(k):     k distinct items, ordered (P(n,k))
//   - Ranged(min,max):    union of fixed-size bands, size ascending, each band
//     Distinct by default (or Repeated/Permutation)
//   - Arrangement(cᵢ):    every ordering of the multiset with item i used cᵢ times
//
// Ordering:
//
//	Dimensions are mixed-radix digits: the first declared dimension varies
//	slowest, the last fastest. Within a dimension, ranks follow the
//	lexicographic order of pool indices (ranged: by size, then lexicographic).
//
// Every operation is a pure function of its inputs; a *Space may be shared
// by any number of goroutines without synchronization.
//
// Errors:
//
//   - ErrInvalidSpec      detected at construction (bad sizes, empty/duplicate pool)
//   - ErrRankOutOfRange   rank < 0 or rank ≥ Count()
//   - ErrNotInSpace       Rank received an element that is not a member
package space

// Package lexspace converts between ranks and elements of composite
// combinatorial spaces, in lexicographic order, without enumerating them.
//
// 🚀 What is lexspace?
//
//	A pure-Go, arbitrary-precision toolkit that brings together:
//		• Index arithmetic: rank/unrank for repeated tuples, k-subsets,
//		  k-permutations and multiset arrangements (math/big throughout)
//		• Composite spaces: Cartesian joins of dimensions, mixed-radix ranks
//		• Constraints: "n-th element satisfying P" by bounded forward scan
//		• Lazy sampling: offset + step traversals, seekable and restartable
//		• Worker partitioning: disjoint rank ranges aligned to the stride
//
// ✨ Why choose lexspace?
//
//   - Random access – element #10^30 costs the same as element #0
//   - Deterministic – same description, same order, every time
//   - Explicit limits – filtered scans stop at a configurable bound
//   - Declarative – describe a space in Go (builder) or YAML (spacefile)
//
// Packages:
//
//	combin/    — counting and rank/unrank engines for single selections
//	space/     — Pool, Selection, Element and the composite Space
//	sampler/   — constraint filter, lazy Sequence, aligned worker ranges
//	builder/   — declarative dimensions and the Generator
//	spacefile/ — YAML descriptions decoded into a Generator
//	cmd/lexspace — command-line access to all of the above
//
// Quick example (two letters, then one distinct digit):
//
//	aa0 aa1 ab0 ab1 ba0 ba1 bb0 bb1
//	 0   1   2   3   4   5   6   7
//
// The last dimension varies fastest; rank 5 is "ba1".
//
//	go get github.com/katalvlaran/lexspace
package lexspace

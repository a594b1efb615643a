// Package builder provides the declarative, functional-options surface for
// describing a composite combinatorial space and traversing it in
// lexicographic order. It turns a list of Dimension constructors plus
// BuilderOptions into an immutable Generator backed by space.Space and
// sampler.Sequence.
//
// The package offers the following key components:
//
//   - Dimension constructors (one per composite dimension, declaration order
//     = lexicographic priority, first varies slowest):
//     – FixedRepeated(count, pool):   repetition allowed, order matters.
//     – FixedDistinct(count, pool):   distinct items, unordered.
//     – Ranged(min, max, pool):       union of distinct selections, size ascending.
//     – RangedOf(kind, min, max, pool): ranged with repeated/permutation bands.
//     – Permutation(count, pool):     distinct items, ordered.
//     – Arrangement(pool, counts...): orderings of a multiset.
//     – BitString(length, ones):      Arrangement over {"1","0"}.
//   - Pool sources:
//     – Items(items...):  explicit items, in the given order.
//     – Symbols(n):       n items generated by the configured ID scheme.
//   - Configuration primitives:
//     – BuilderOption:    a function that mutates builderConfig before use.
//     – WithConstraint, WithScanLimit, WithUnboundedScan, WithContext.
//     – WithIDScheme and the IDFn family (DefaultIDFn, SymbolIDFn,
//     ExcelColumnIDFn, AlphanumericIDFn, HexIDFn, SymbolNumberIDFn).
//     – WithSeed / WithRand for Generator.Random.
//   - Traversal:
//     – Generator.LexOrder():                 full traversal from rank 0.
//     – Generator.LexOrderNth(offset, step):  sampled traversal.
//     – Generator.Nth(n), Unrank, Rank, Count, Random.
//
// Guarantees:
//
//   - Immutability: a Generator and its Space never change after Build.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors for invalid dimensions, wrapped around
//     space.ErrInvalidSpec so callers can branch with errors.Is.
//   - Determinism: same dimensions and options ⇒ identical sequences.
//
// See individual function documentation for parameter contracts.
package builder

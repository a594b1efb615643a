// Package sampler drives lazy, lexicographic traversal of a space.Space,
// optionally filtered by a constraint predicate and sampled at a stride.
//
// What:
//
//   - Sequence: visits ranks offset, offset+step, offset+2·step, … below
//     the end rank, holding one element at a time. Seek jumps to an absolute
//     rank, Reset restarts, All adapts the sequence to a range-over-func loop.
//   - NthValid: the n-th sampled element, computed directly.
//   - AlignedRanges: splits a sampled traversal into per-worker rank ranges
//     whose union reproduces the single-worker sequence.
//
// Constraint semantics:
//
//	Without a constraint the n-th sampled element is Unrank(offset+n·step),
//	O(1) unranks. With a constraint the valid ranks are not invertible in
//	general, so the sequence scans forward one rank at a time from offset,
//	counting only accepted elements toward the stride: it yields valid
//	elements number 0, step, 2·step, … at or after offset.
//
// Caveat: a filtered step has NO worst-case bound. A predicate rejecting
// almost everything may force a scan over the remaining space. The scan is
// therefore capped by default (DefaultScanLimit consecutive rejections,
// reported as ErrScanLimitExceeded); an unbounded scan must be requested
// explicitly with WithUnboundedScan. Context cancellation is checked between
// individual scan iterations.
//
// Concurrency:
//
//	A Sequence is single-goroutine state. Sequences built from identical
//	parameters produce identical output, so independent workers can each
//	build their own over a shared *space.Space without coordination.
//
// Errors:
//
//   - ErrSpaceExhausted       no further sampled element below the end rank
//   - ErrScanLimitExceeded    too many consecutive rejections (recoverable)
//   - context.Canceled / context.DeadlineExceeded
package sampler

package sampler

import (
	"context"
	"math/big"

	"github.com/katalvlaran/lexspace/space"
)

// DefaultScanLimit is the default number of consecutive rejected candidates
// a filtered scan tolerates; one more rejection returns ErrScanLimitExceeded.
const DefaultScanLimit uint64 = 1 << 20

// Option configures a Sequence or NthValid call.
type Option func(*Options)

// Options holds the traversal parameters. Construct with DefaultOptions and
// the WithX functions; Offset/Step/End are never mutated after resolution.
type Options struct {
	// Ctx is checked between scan iterations; defaults to context.Background().
	Ctx context.Context

	// Constraint, if non-nil, must accept an element for it to be produced.
	// It must be pure: the same element always yields the same answer.
	Constraint Predicate

	// Offset is the first rank considered. Default 0.
	Offset *big.Int

	// Step is the sampling stride (≥ 1). Default 1.
	Step *big.Int

	// End, if non-nil, is an exclusive upper rank bound below Count().
	End *big.Int

	// ScanLimit caps consecutive rejections per produced element.
	// 0 means unbounded. Default DefaultScanLimit.
	ScanLimit uint64
}

// DefaultOptions returns Options with a background context, no constraint,
// offset 0, step 1, no end bound and DefaultScanLimit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Offset:    new(big.Int),
		Step:      big.NewInt(1),
		ScanLimit: DefaultScanLimit,
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConstraint installs a post-assembly filter. A nil predicate removes
// any constraint.
func WithConstraint(p Predicate) Option {
	return func(o *Options) {
		o.Constraint = p
	}
}

// WithOffset sets the first rank. Panics on nil or negative offset.
func WithOffset(offset *big.Int) Option {
	if offset == nil || offset.Sign() < 0 {
		panic("sampler: WithOffset(offset<0)")
	}
	v := new(big.Int).Set(offset)
	return func(o *Options) {
		o.Offset = v
	}
}

// WithOffsetInt is WithOffset for int64 offsets.
func WithOffsetInt(offset int64) Option {
	return WithOffset(big.NewInt(offset))
}

// WithStep sets the sampling stride. Panics on nil or step < 1.
func WithStep(step *big.Int) Option {
	if step == nil || step.Sign() <= 0 {
		panic("sampler: WithStep(step<1)")
	}
	v := new(big.Int).Set(step)
	return func(o *Options) {
		o.Step = v
	}
}

// WithStepInt is WithStep for int64 strides.
func WithStepInt(step int64) Option {
	return WithStep(big.NewInt(step))
}

// WithEnd bounds the traversal to ranks below end. Panics on nil or
// negative end.
func WithEnd(end *big.Int) Option {
	if end == nil || end.Sign() < 0 {
		panic("sampler: WithEnd(end<0)")
	}
	v := new(big.Int).Set(end)
	return func(o *Options) {
		o.End = v
	}
}

// WithRange restricts the traversal to r: offset r.Start, end r.End.
func WithRange(r space.Range) Option {
	start, end := WithOffset(r.Start), WithEnd(r.End)
	return func(o *Options) {
		start(o)
		end(o)
	}
}

// WithScanLimit tolerates up to limit consecutive rejections; the next one
// fails with ErrScanLimitExceeded. Panics on 0; use
// WithUnboundedScan to lift the cap deliberately.
func WithScanLimit(limit uint64) Option {
	if limit == 0 {
		panic("sampler: WithScanLimit(0); use WithUnboundedScan")
	}
	return func(o *Options) {
		o.ScanLimit = limit
	}
}

// WithUnboundedScan removes the scan cap. A filtered Next may then scan the
// whole remaining space; this is a deliberate caller choice, not a hang.
func WithUnboundedScan() Option {
	return func(o *Options) {
		o.ScanLimit = 0
	}
}

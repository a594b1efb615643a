package space

import "fmt"

// Pool is an ordered, immutable sequence of distinguishable items.
// Index 0..n-1 defines the item order used for lexicographic ranking.
// The zero Pool is empty and rejected by every Selection constructor.
type Pool struct {
	items []string
	index map[string]int
}

// NewPool copies items into a Pool. Items must be non-empty in number and
// pairwise distinct.
func NewPool(items ...string) (Pool, error) {
	if len(items) == 0 {
		return Pool{}, fmt.Errorf("NewPool: empty pool: %w", ErrInvalidSpec)
	}

	p := Pool{
		items: make([]string, len(items)),
		index: make(map[string]int, len(items)),
	}
	for i, it := range items {
		if j, dup := p.index[it]; dup {
			return Pool{}, fmt.Errorf("NewPool: item %q at %d duplicates position %d: %w", it, i, j, ErrInvalidSpec)
		}
		p.items[i] = it
		p.index[it] = i
	}

	return p, nil
}

// MustPool is NewPool for static item lists; it panics on error.
func MustPool(items ...string) Pool {
	p, err := NewPool(items...)
	if err != nil {
		panic(err)
	}

	return p
}

// Len returns the number of items.
func (p Pool) Len() int { return len(p.items) }

// Item returns the item at position i. It panics if i is out of range.
func (p Pool) Item(i int) string { return p.items[i] }

// Items returns a copy of the items in pool order.
func (p Pool) Items() []string { return append([]string(nil), p.items...) }

// Index returns the position of item, if present.
func (p Pool) Index(item string) (int, bool) {
	i, ok := p.index[item]
	return i, ok
}

// resolve maps pool indices to items.
func (p Pool) resolve(idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = p.items[v]
	}

	return out
}

// lookup maps items to pool indices.
func (p Pool) lookup(items []string) ([]int, error) {
	out := make([]int, len(items))
	for i, it := range items {
		v, ok := p.index[it]
		if !ok {
			return nil, fmt.Errorf("unknown item %q: %w", it, ErrNotInSpace)
		}
		out[i] = v
	}

	return out, nil
}

package space

import (
	"slices"
	"strings"
)

// Element is one member of a Space: the chosen sub-sequence of each
// dimension, in declaration order. Parts are kept separate so that ranking
// stays unambiguous when ranged dimensions vary in length.
type Element struct {
	parts [][]string
}

// NewElement builds an Element from per-dimension parts (copied).
func NewElement(parts ...[]string) Element {
	e := Element{parts: make([][]string, len(parts))}
	for i, p := range parts {
		e.parts[i] = append([]string{}, p...)
	}

	return e
}

// Dims returns the number of parts.
func (e Element) Dims() int { return len(e.parts) }

// Part returns a copy of the sub-selection of dimension i.
func (e Element) Part(i int) []string { return append([]string{}, e.parts[i]...) }

// Len returns the total number of items across all parts.
func (e Element) Len() int {
	n := 0
	for _, p := range e.parts {
		n += len(p)
	}
	return n
}

// Items returns the concatenation of all parts in declaration order.
func (e Element) Items() []string {
	out := make([]string, 0, e.Len())
	for _, p := range e.parts {
		out = append(out, p...)
	}

	return out
}

// Join concatenates all items with sep.
func (e Element) Join(sep string) string { return strings.Join(e.Items(), sep) }

// String concatenates all items without a separator, e.g. "11110000".
func (e Element) String() string { return e.Join("") }

// Equal reports whether e and o hold the same parts.
func (e Element) Equal(o Element) bool {
	return slices.EqualFunc(e.parts, o.parts, func(a, b []string) bool { return slices.Equal(a, b) })
}

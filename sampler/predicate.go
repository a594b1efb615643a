package sampler

import "github.com/katalvlaran/lexspace/space"

// Predicate reports whether an assembled element satisfies a constraint.
// It must be pure and free of side effects.
type Predicate func(e space.Element) bool

// All accepts an element when every predicate accepts it (true when empty).
func All(preds ...Predicate) Predicate {
	return func(e space.Element) bool {
		for _, p := range preds {
			if !p(e) {
				return false
			}
		}
		return true
	}
}

// Any accepts an element when at least one predicate accepts it.
func Any(preds ...Predicate) Predicate {
	return func(e space.Element) bool {
		for _, p := range preds {
			if p(e) {
				return true
			}
		}
		return false
	}
}

// Not negates p.
func Not(p Predicate) Predicate {
	return func(e space.Element) bool { return !p(e) }
}

// DistinctItems accepts elements whose flattened items are pairwise distinct.
func DistinctItems() Predicate {
	return func(e space.Element) bool {
		items := e.Items()
		seen := make(map[string]struct{}, len(items))
		for _, it := range items {
			if _, dup := seen[it]; dup {
				return false
			}
			seen[it] = struct{}{}
		}
		return true
	}
}

// NoAdjacentRepeat rejects elements where the same item appears twice in a
// row in the flattened sequence.
func NoAdjacentRepeat() Predicate {
	return func(e space.Element) bool {
		items := e.Items()
		for i := 1; i < len(items); i++ {
			if items[i] == items[i-1] {
				return false
			}
		}
		return true
	}
}

// Contains accepts elements holding every one of items.
func Contains(items ...string) Predicate {
	return func(e space.Element) bool {
		have := make(map[string]struct{}, e.Len())
		for _, it := range e.Items() {
			have[it] = struct{}{}
		}
		for _, want := range items {
			if _, ok := have[want]; !ok {
				return false
			}
		}
		return true
	}
}

// Excludes accepts elements holding none of items.
func Excludes(items ...string) Predicate {
	banned := make(map[string]struct{}, len(items))
	for _, it := range items {
		banned[it] = struct{}{}
	}
	return func(e space.Element) bool {
		for _, it := range e.Items() {
			if _, bad := banned[it]; bad {
				return false
			}
		}
		return true
	}
}

// PartLen accepts elements whose dimension dim holds between min and max
// items inclusive. Elements with fewer dimensions are rejected.
func PartLen(dim, min, max int) Predicate {
	return func(e space.Element) bool {
		if dim < 0 || dim >= e.Dims() {
			return false
		}
		n := len(e.Part(dim))
		return n >= min && n <= max
	}
}

package collections

import "iter"

// This file contains package-level generic functions that consume or adapt
// cursors and containers. Go methods cannot introduce type parameters, so
// operations that change the element type are stand-alone functions:
//
//	lengths := collections.Collect(collections.Transform(m.Keys(),
//	    func(k string) int { return len(k) }))

// Collect drains c into a slice. The cursor is exhausted afterwards.
//
//	keys := collections.Collect(m.Keys())
func Collect[T any](c *Cursor[T]) []T {
	var out []T
	for r := c.Next(); !r.Done; r = c.Next() {
		out = append(out, r.Value)
	}
	return out
}

// Transform returns a cursor yielding fn applied to every value of c. It
// advances c lazily and has c's kind.
func Transform[T, U any](c *Cursor[T], fn func(T) U) *Cursor[U] {
	next := func() (U, bool) {
		if r := c.Next(); !r.Done {
			return fn(r.Value), true
		}
		var zero U
		return zero, false
	}
	out := NewCursor(c.Kind(), next)
	out.stop = c.Close
	return out
}

// Filter returns a cursor yielding the values of c for which keep reports
// true.
func Filter[T any](c *Cursor[T], keep func(T) bool) *Cursor[T] {
	next := func() (T, bool) {
		for r := c.Next(); !r.Done; r = c.Next() {
			if keep(r.Value) {
				return r.Value, true
			}
		}
		var zero T
		return zero, false
	}
	out := NewCursor(c.Kind(), next)
	out.stop = c.Close
	return out
}

// Reduce folds every remaining value of c into a single U.
//
//	total := collections.Reduce(m.Values(),
//	    func(acc, v int) int { return acc + v }, 0)
func Reduce[T, U any](c *Cursor[T], fn func(U, T) U, initial U) U {
	acc := initial
	for r := c.Next(); !r.Done; r = c.Next() {
		acc = fn(acc, r.Value)
	}
	return acc
}

// GroupBy groups values by the key extracted by fn. Groups and the values
// within them keep first-seen order, and keys are compared with
// samevalue.Zero, so NaN keys form a single group.
//
//	byLen := collections.GroupBy(slices.Values(words),
//	    func(w string) int { return len(w) })
func GroupBy[T, K any](values iter.Seq[T], fn func(T) K) *Map[K, []T] {
	groups := NewMap[K, []T]()
	for v := range values {
		k := fn(v)
		group, _ := groups.Get(k)
		groups.Set(k, append(group, v))
	}
	return groups
}

// KeyBy builds a Map keyed by the value extracted by fn. When several values
// share a key the last one wins, at the position of the first.
func KeyBy[T, K any](values iter.Seq[T], fn func(T) K) *Map[K, T] {
	out := NewMap[K, T]()
	for v := range values {
		out.Set(fn(v), v)
	}
	return out
}

// ToGoMap copies m into a built-in map. Keys that are equivalent under
// samevalue.Zero but distinct under == (NaN, for instance) become separate
// entries, and ordering is lost.
func ToGoMap[K comparable, V any](m *Map[K, V]) map[K]V {
	out := make(map[K]V, m.Size())
	for k, v := range m.All() {
		out[k] = v
	}
	return out
}

// FromGoMap returns a Map holding the entries of src. Go map iteration order
// is unspecified, so callers that care about order should seed from a slice
// of [Entry] instead.
func FromGoMap[K comparable, V any](src map[K]V) *Map[K, V] {
	out := NewMap[K, V]()
	for k, v := range src {
		out.Set(k, v)
	}
	return out
}

// Union returns a new Set with the values of a followed by the values of b
// not already in a.
func Union[T any](a, b *Set[T]) *Set[T] {
	out := NewSet[T]()
	for v := range a.All() {
		out.Add(v)
	}
	for v := range b.All() {
		out.Add(v)
	}
	return out
}

// Intersect returns a new Set with the values of a that are also in b, in
// a's order.
func Intersect[T any](a, b *Set[T]) *Set[T] {
	out := NewSet[T]()
	for v := range a.All() {
		if b.Has(v) {
			out.Add(v)
		}
	}
	return out
}

// Difference returns a new Set with the values of a that are not in b.
func Difference[T any](a, b *Set[T]) *Set[T] {
	out := NewSet[T]()
	for v := range a.All() {
		if !b.Has(v) {
			out.Add(v)
		}
	}
	return out
}

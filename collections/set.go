package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"runtime"
	"strings"
)

// Set is an insertion-ordered container of unique values, compared with
// [samevalue.Zero] exactly like [Map] keys.
//
// The zero value is an empty set using the linear backend and
// [DefaultOptions]. A Set must not be copied after first use and is not safe
// for concurrent use.
type Set[T any] struct {
	a *arena[T, struct{}]
}

// NewSet returns an empty Set using [DefaultOptions].
func NewSet[T any]() *Set[T] {
	return &Set[T]{a: defaultArena[T, struct{}]()}
}

// SetFrom returns a Set seeded from source using [DefaultOptions].
//
// Accepted sources: nil, *Set[T], []T, iter.Seq[T], any [Advancer] or
// [ArrayLike] of T or of any, []any, and a string (one element per rune,
// T must be string). Duplicates collapse onto their first occurrence.
func SetFrom[T any](source any) (*Set[T], error) {
	return NewSetWithOptions[T](DefaultOptions(), source)
}

// NewSetWithOptions returns a Set configured by opts and seeded from source
// (see [SetFrom]).
func NewSetWithOptions[T any](opts Options, source any) (*Set[T], error) {
	a, err := newArena[T, struct{}](opts)
	if err != nil {
		return nil, err
	}
	s := &Set[T]{a: a}
	if err := s.Extend(source); err != nil {
		return nil, err
	}
	return s, nil
}

// Extend adds every value produced by source, in order. Values before a
// rejected element stay added.
func (s *Set[T]) Extend(source any) error {
	a := s.mutable("Set.Extend")
	return eachValue("Set.Extend", source, func(v T) { a.put(v, struct{}{}, false) })
}

func (s *Set[T]) mutable(op string) *arena[T, struct{}] {
	if s == nil {
		panic(&TypeError{Op: op, Kind: "nil *Set", Want: "a Set"})
	}
	if s.a == nil {
		s.a = defaultArena[T, struct{}]()
	}
	return s.a
}

func (s *Set[T]) view() *arena[T, struct{}] {
	if s == nil {
		return nil
	}
	return s.a
}

// Add inserts v unless an equivalent value is present, and returns s for
// chaining.
func (s *Set[T]) Add(v T) *Set[T] {
	s.mutable("Set.Add").put(v, struct{}{}, false)
	return s
}

// Has reports whether an equivalent value is present.
func (s *Set[T]) Has(v T) bool {
	if a := s.view(); a != nil {
		_, ok := a.find(v)
		return ok
	}
	return false
}

// Delete removes v and reports whether it was present.
func (s *Set[T]) Delete(v T) bool {
	if a := s.view(); a != nil {
		return a.remove(v)
	}
	return false
}

// Clear removes every value.
func (s *Set[T]) Clear() {
	if a := s.view(); a != nil {
		a.clear()
	}
}

// Size returns the number of values.
func (s *Set[T]) Size() int {
	if a := s.view(); a != nil {
		return a.live
	}
	return 0
}

// Backend returns the name of the lookup backend in use.
func (s *Set[T]) Backend() BackendName {
	if a := s.view(); a != nil {
		return a.backend
	}
	return BackendLinear
}

// ForEach calls fn(value, value, s) for every value in insertion order,
// with the same mutation rules as [Map.ForEach].
func (s *Set[T]) ForEach(fn func(value, key T, s *Set[T])) {
	c := s.Values()
	defer c.Close()
	defer runtime.KeepAlive(s)
	for r := c.Next(); !r.Done; r = c.Next() {
		fn(r.Value, r.Value, s)
	}
}

// Entries returns a cursor yielding Entry{v, v} for every value.
func (s *Set[T]) Entries() *Cursor[Entry[T, T]] {
	if s == nil {
		return &Cursor[Entry[T, T]]{kind: KindKeyValue}
	}
	return arenaCursor(s.mutable("Set.Entries"), KindKeyValue, slotPair[T])
}

// Keys is the same sequence as [Set.Values].
func (s *Set[T]) Keys() *Cursor[T] {
	if s == nil {
		return &Cursor[T]{kind: KindKey}
	}
	return arenaCursor(s.mutable("Set.Keys"), KindKey, slotKey[T, struct{}])
}

// Values returns a cursor yielding values in insertion order. The cursor
// does not keep s alive; see [Cursor].
func (s *Set[T]) Values() *Cursor[T] {
	if s == nil {
		return &Cursor[T]{kind: KindValue}
	}
	return arenaCursor(s.mutable("Set.Values"), KindValue, slotKey[T, struct{}])
}

// All returns an iterator over the values for use with range. The set stays
// reachable until the loop ends, so ranging over a temporary is safe.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		c := s.Values()
		defer c.Close()
		defer runtime.KeepAlive(s)
		for r := c.Next(); !r.Done; r = c.Next() {
			if !yield(r.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the set as a JSON array in insertion order.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	values := make([]T, 0, s.Size())
	for v := range s.All() {
		values = append(values, v)
	}
	return json.Marshal(values)
}

// String returns the JSON representation, or a Go-syntax listing when the
// values cannot be encoded. It implements [fmt.Stringer].
func (s *Set[T]) String() string {
	if b, err := s.MarshalJSON(); err == nil {
		return string(b)
	}
	parts := make([]string, 0, s.Size())
	for v := range s.All() {
		parts = append(parts, fmt.Sprint(v))
	}
	return "Set{" + strings.Join(parts, ", ") + "}"
}

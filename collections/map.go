package collections

import (
	"encoding/json"
	"fmt"
	"iter"
	"runtime"
	"strings"
)

// Map is an insertion-ordered associative container whose keys are compared
// with [samevalue.Zero]: NaN finds NaN, +0 finds -0, and reference-like keys
// (pointers, slices, maps, funcs) are distinct unless they are the same
// reference.
//
// The zero value is an empty map using the linear backend and
// [DefaultOptions]. A Map must not be copied after first use and is not safe
// for concurrent use.
//
// # Laravel / JavaScript equivalents
//
// Methods mirror the ECMAScript Map: Get, Has, Set, Delete, Clear, Size,
// ForEach, Entries, Keys, Values. Differences:
//   - Get returns (value, ok) instead of undefined for a missing key.
//   - ForEach takes a closure; there is no thisArg.
//   - Seeded construction reports errors instead of throwing.
type Map[K, V any] struct {
	a *arena[K, V]
}

// NewMap returns an empty Map using [DefaultOptions].
func NewMap[K, V any]() *Map[K, V] {
	return &Map[K, V]{a: defaultArena[K, V]()}
}

// MapFrom returns a Map seeded from source using [DefaultOptions].
//
// Accepted sources: nil, *Map[K, V], []Entry[K, V], iter.Seq2[K, V],
// iter.Seq[Entry[K, V]], any [Advancer] or [ArrayLike] of Entry[K, V] or of
// any, and []any, [][]any or [][2]any whose elements are entries. An entry is
// an Entry[K, V], a [2]any, or a []any of length exactly 2.
//
// It returns a [*TypeError] for an element that is not an entry or whose
// slots do not fit K and V, and a [*NotIterableError] for any other source.
func MapFrom[K, V any](source any) (*Map[K, V], error) {
	return NewMapWithOptions[K, V](DefaultOptions(), source)
}

// NewMapWithOptions returns a Map configured by opts and seeded from source
// (see [MapFrom]).
func NewMapWithOptions[K, V any](opts Options, source any) (*Map[K, V], error) {
	a, err := newArena[K, V](opts)
	if err != nil {
		return nil, err
	}
	m := &Map[K, V]{a: a}
	if err := m.Extend(source); err != nil {
		return nil, err
	}
	return m, nil
}

// Extend sets every entry produced by source, in order (see [MapFrom] for
// accepted sources). Insertion is incremental: when an element is rejected,
// the entries before it have already been set.
func (m *Map[K, V]) Extend(source any) error {
	a := m.mutable("Map.Extend")
	return eachEntry("Map.Extend", source, func(k K, v V) { a.put(k, v, true) })
}

func (m *Map[K, V]) mutable(op string) *arena[K, V] {
	if m == nil {
		panic(&TypeError{Op: op, Kind: "nil *Map", Want: "a Map"})
	}
	if m.a == nil {
		m.a = defaultArena[K, V]()
	}
	return m.a
}

func (m *Map[K, V]) view() *arena[K, V] {
	if m == nil {
		return nil
	}
	return m.a
}

// Get returns the value stored under key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if a := m.view(); a != nil {
		return a.get(key)
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	if a := m.view(); a != nil {
		_, ok := a.find(key)
		return ok
	}
	return false
}

// Set stores value under key and returns m for chaining. Overwriting an
// existing key keeps its original insertion position.
func (m *Map[K, V]) Set(key K, value V) *Map[K, V] {
	m.mutable("Map.Set").put(key, value, true)
	return m
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	if a := m.view(); a != nil {
		return a.remove(key)
	}
	return false
}

// Clear removes every entry. Open cursors start over on entries added later.
func (m *Map[K, V]) Clear() {
	if a := m.view(); a != nil {
		a.clear()
	}
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int {
	if a := m.view(); a != nil {
		return a.live
	}
	return 0
}

// Backend returns the name of the lookup backend in use.
func (m *Map[K, V]) Backend() BackendName {
	if a := m.view(); a != nil {
		return a.backend
	}
	return BackendLinear
}

// ForEach calls fn(value, key, m) for every entry in insertion order.
//
// fn may mutate m. Entries deleted before they are reached are not visited;
// entries added during the walk are visited.
func (m *Map[K, V]) ForEach(fn func(value V, key K, m *Map[K, V])) {
	c := m.Entries()
	defer c.Close()
	defer runtime.KeepAlive(m)
	for r := c.Next(); !r.Done; r = c.Next() {
		fn(r.Value.Value, r.Value.Key, m)
	}
}

// Entries returns a cursor yielding Entry{key, value} in insertion order.
// The cursor does not keep m alive; see [Cursor].
func (m *Map[K, V]) Entries() *Cursor[Entry[K, V]] {
	if m == nil {
		return &Cursor[Entry[K, V]]{kind: KindKeyValue}
	}
	return arenaCursor(m.mutable("Map.Entries"), KindKeyValue, slotEntry[K, V])
}

// Keys returns a cursor yielding keys in insertion order.
func (m *Map[K, V]) Keys() *Cursor[K] {
	if m == nil {
		return &Cursor[K]{kind: KindKey}
	}
	return arenaCursor(m.mutable("Map.Keys"), KindKey, slotKey[K, V])
}

// Values returns a cursor yielding values in insertion order.
func (m *Map[K, V]) Values() *Cursor[V] {
	if m == nil {
		return &Cursor[V]{kind: KindValue}
	}
	return arenaCursor(m.mutable("Map.Values"), KindValue, slotValue[K, V])
}

// All returns an iterator over key/value pairs for use with range. The map
// stays reachable until the loop ends, so ranging over a temporary is safe.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		c := m.Entries()
		defer c.Close()
		defer runtime.KeepAlive(m)
		for r := c.Next(); !r.Done; r = c.Next() {
			if !yield(r.Value.Key, r.Value.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the map as a JSON array of [key, value] pairs, which
// preserves order and non-string keys.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	pairs := make([][2]any, 0, m.Size())
	for k, v := range m.All() {
		pairs = append(pairs, [2]any{k, v})
	}
	return json.Marshal(pairs)
}

// String returns the JSON representation, or a Go-syntax listing when the
// entries cannot be encoded. It implements [fmt.Stringer].
func (m *Map[K, V]) String() string {
	if b, err := m.MarshalJSON(); err == nil {
		return string(b)
	}
	parts := make([]string, 0, m.Size())
	for k, v := range m.All() {
		parts = append(parts, fmt.Sprintf("%v => %v", k, v))
	}
	return "Map{" + strings.Join(parts, ", ") + "}"
}

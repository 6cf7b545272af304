package collections

import (
	"iter"
	"weak"
)

// Kind selects what a [Cursor] yields for each slot it visits.
type Kind uint8

const (
	// KindKeyValue yields entries.
	KindKeyValue Kind = iota
	// KindKey yields keys (for a Set, the value itself).
	KindKey
	// KindValue yields values.
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindKeyValue:
		return "key+value"
	case KindKey:
		return "key"
	case KindValue:
		return "value"
	}
	return "unknown"
}

// Result is the outcome of one [Cursor.Next] call. When Done is true Value
// is the zero value.
type Result[T any] struct {
	Value T
	Done  bool
}

// Cursor is a stateful, forward-only, non-restartable iterator.
//
// A cursor is active until its sequence runs out, its source container is
// garbage collected, or [Cursor.Close] is called; from then on every
// [Cursor.Next] reports Done. Cursors over a [Map] or [Set] read the live
// backing sequence:
//
//   - slots deleted before the cursor reaches them are skipped
//   - slots appended while the cursor is active are visited
//   - after Clear the cursor starts over on whatever is added next
//
// Several cursors over one container are independent. A cursor holds only a
// weak reference to its container and never keeps it alive. A cursor over an
// unnamed container, as in Collect(buildMap().Keys()), can therefore end
// early: keep the container reachable until the cursor is drained, or range
// over its All method, which does.
//
// Cursors are not safe for concurrent use.
type Cursor[T any] struct {
	kind Kind
	next func() (T, bool)
	stop func()
}

// NewCursor wraps next as a Cursor. next must report false once the sequence
// is exhausted; it is not called again afterwards.
func NewCursor[T any](kind Kind, next func() (T, bool)) *Cursor[T] {
	return &Cursor[T]{kind: kind, next: next}
}

// Next advances the cursor.
func (c *Cursor[T]) Next() Result[T] {
	if c == nil || c.next == nil {
		return Result[T]{Done: true}
	}
	if v, ok := c.next(); ok {
		return Result[T]{Value: v}
	}
	c.Close()
	return Result[T]{Done: true}
}

// Close makes the cursor exhausted. It is safe to call more than once.
func (c *Cursor[T]) Close() {
	if c == nil {
		return
	}
	if c.stop != nil {
		c.stop()
	}
	c.next, c.stop = nil, nil
}

// Done reports whether the cursor is exhausted.
func (c *Cursor[T]) Done() bool { return c == nil || c.next == nil }

// Kind returns the cursor's projection kind.
func (c *Cursor[T]) Kind() Kind {
	if c == nil {
		return KindValue
	}
	return c.kind
}

// All adapts the remaining sequence for use with range. Breaking out of the
// loop leaves the cursor where it stopped.
func (c *Cursor[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := c.Next(); !r.Done; r = c.Next() {
			if !yield(r.Value) {
				return
			}
		}
	}
}

// arenaCursor returns a cursor over a's slots, projected by project.
func arenaCursor[K, V, T any](a *arena[K, V], kind Kind, project func(*slot[K, V]) T) *Cursor[T] {
	src, pos := weak.Make(a), a.track()
	return &Cursor[T]{
		kind: kind,
		next: func() (T, bool) { return advance(src, pos, project) },
		stop: func() { pos.detached = true },
	}
}

func advance[K, V, T any](src weak.Pointer[arena[K, V]], pos *position, project func(*slot[K, V]) T) (T, bool) {
	var zero T
	a := src.Value()
	if a == nil {
		return zero, false
	}
	i, ok := a.nextLive(pos.at)
	if !ok {
		pos.at = len(a.slots)
		return zero, false
	}
	pos.at = i + 1
	return project(&a.slots[i]), true
}

func slotKey[K, V any](s *slot[K, V]) K   { return s.key }
func slotValue[K, V any](s *slot[K, V]) V { return s.value }

func slotEntry[K, V any](s *slot[K, V]) Entry[K, V] {
	return Entry[K, V]{Key: s.key, Value: s.value}
}

func slotPair[T any](s *slot[T, struct{}]) Entry[T, T] {
	return Entry[T, T]{Key: s.key, Value: s.key}
}

package arr

import "github.com/hasbyte1/go-es-collections/collections"

// Entries returns a cursor yielding Entry{index, element} for every element
// of items. The cursor reads items when it advances, so writes to existing
// elements are observed. The length is fixed when the cursor is created.
func Entries[T any](items []T) *collections.Cursor[collections.Entry[int, T]] {
	return sliceCursor(items, collections.KindKeyValue, func(i int, v T) collections.Entry[int, T] {
		return collections.Entry[int, T]{Key: i, Value: v}
	})
}

// Keys returns a cursor yielding the indices of items.
func Keys[T any](items []T) *collections.Cursor[int] {
	return sliceCursor(items, collections.KindKey, func(i int, _ T) int { return i })
}

// Values returns a cursor yielding the elements of items.
func Values[T any](items []T) *collections.Cursor[T] {
	return sliceCursor(items, collections.KindValue, func(_ int, v T) T { return v })
}

func sliceCursor[T, U any](items []T, kind collections.Kind, project func(int, T) U) *collections.Cursor[U] {
	i := 0
	return collections.NewCursor(kind, func() (U, bool) {
		if i >= len(items) {
			items = nil
			var zero U
			return zero, false
		}
		i++
		return project(i-1, items[i-1]), true
	})
}

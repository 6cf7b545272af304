package collections

import (
	"encoding/json"
	"fmt"
)

// Entry is a key/value pair. It is the element type produced by
// [Map.Entries] and [Set.Entries], and the preferred element type for
// seeding a [Map].
//
// Portability note: in JavaScript this is the two-element array [key, value];
// in Python a 2-tuple.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// String returns a human-readable representation: "[key, value]".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("[%v, %v]", e.Key, e.Value)
}

// MarshalJSON encodes the entry as a two-element JSON array.
func (e Entry[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{e.Key, e.Value})
}

package arr

import (
	"fmt"
	"iter"
	"reflect"
	"runtime"

	"github.com/hasbyte1/go-es-collections/collections"
)

// Length is an array-like source with a length and no elements. From yields
// the zero value for each of its positions, which makes it useful with a
// mapping function:
//
//	idx, _ := arr.From(arr.Length(3), func(_ int, i int) int { return i })
//	// → [0 1 2]
type Length int

// Of returns a new slice holding items.
//
//	arr.Of(7)       // → [7]
//	arr.Of(1, 2, 3) // → [1 2 3]
func Of[T any](items ...T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// From builds a new slice from source, applying mapFn(value, index) to
// every element when mapFn is not nil.
//
// Accepted sources:
//   - []T (copied) and []any (each element must be a T)
//   - string, one element per rune (T must be string)
//   - *collections.Set[T] (its values) and anything with an
//     Entries() *collections.Cursor[T] method, such as a Map whose entries
//     are of type T
//   - iter.Seq[T], collections.Advancer[T] (including cursors) and
//     collections.ArrayLike[T]
//   - Length, yielding that many zero values
//
// A nil or unsupported source returns a [*collections.NotIterableError];
// an element that is not a T returns a [*collections.TypeError].
func From[T any](source any, mapFn func(T, int) T) ([]T, error) {
	var out []T
	emit := func(v T) {
		if mapFn != nil {
			v = mapFn(v, len(out))
		}
		out = append(out, v)
	}

	switch src := source.(type) {
	case []T:
		out = make([]T, 0, len(src))
		for _, v := range src {
			emit(v)
		}
	case string:
		for _, r := range src {
			v, ok := any(string(r)).(T)
			if !ok {
				return nil, &collections.TypeError{Op: "arr.From", Kind: "string", Want: "a source of " + typeName[T]()}
			}
			emit(v)
		}
	case *collections.Set[T]:
		out = make([]T, 0, src.Size())
		for v := range src.All() {
			emit(v)
		}
	case interface{ Entries() *collections.Cursor[T] }:
		c := src.Entries()
		for r := c.Next(); !r.Done; r = c.Next() {
			emit(r.Value)
		}
		runtime.KeepAlive(src)
	case iter.Seq[T]:
		for v := range src {
			emit(v)
		}
	case func(func(T) bool):
		for v := range src {
			emit(v)
		}
	case collections.Advancer[T]:
		for r := src.Next(); !r.Done; r = src.Next() {
			emit(r.Value)
		}
	case collections.ArrayLike[T]:
		n := src.Len()
		out = make([]T, 0, n)
		for i := 0; i < n; i++ {
			emit(src.At(i))
		}
	case Length:
		var zero T
		out = make([]T, 0, max(int(src), 0))
		for i := 0; i < int(src); i++ {
			emit(zero)
		}
	case []any:
		out = make([]T, 0, len(src))
		for _, e := range src {
			v, ok := e.(T)
			if !ok {
				return nil, &collections.TypeError{Op: "arr.From", Kind: kindOf(e), Want: "a " + typeName[T]() + " element"}
			}
			emit(v)
		}
	default:
		return nil, &collections.NotIterableError{Op: "arr.From", Kind: kindOf(source)}
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func kindOf(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

func typeName[T any]() string { return reflect.TypeFor[T]().String() }

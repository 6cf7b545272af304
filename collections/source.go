package collections

import (
	"iter"
	"reflect"
	"strconv"
)

// Advancer is anything driven by repeated Next calls until Done, such as a
// [Cursor]. Advancers are accepted as seed sources.
type Advancer[T any] interface {
	Next() Result[T]
}

// ArrayLike is an indexable sequence of known length. ArrayLike values are
// accepted as seed sources.
type ArrayLike[T any] interface {
	Len() int
	At(i int) T
}

// eachEntry calls fn for every entry produced by source, in source order,
// stopping at the first element that is not an entry.
func eachEntry[K, V any](op string, source any, fn func(K, V)) error {
	switch src := source.(type) {
	case nil:
		return nil
	case *Map[K, V]:
		for k, v := range src.All() {
			fn(k, v)
		}
		return nil
	case []Entry[K, V]:
		for _, e := range src {
			fn(e.Key, e.Value)
		}
		return nil
	case iter.Seq2[K, V]:
		for k, v := range src {
			fn(k, v)
		}
		return nil
	case func(func(K, V) bool):
		for k, v := range src {
			fn(k, v)
		}
		return nil
	case iter.Seq[Entry[K, V]]:
		for e := range src {
			fn(e.Key, e.Value)
		}
		return nil
	case func(func(Entry[K, V]) bool):
		for e := range src {
			fn(e.Key, e.Value)
		}
		return nil
	case Advancer[Entry[K, V]]:
		for r := src.Next(); !r.Done; r = src.Next() {
			fn(r.Value.Key, r.Value.Value)
		}
		return nil
	case ArrayLike[Entry[K, V]]:
		for i, n := 0, src.Len(); i < n; i++ {
			e := src.At(i)
			fn(e.Key, e.Value)
		}
		return nil
	}
	return eachAny(op, source, func(v any) error {
		k, val, err := asEntry[K, V](op, v)
		if err != nil {
			return err
		}
		fn(k, val)
		return nil
	})
}

// eachValue calls fn for every value produced by source, in source order.
func eachValue[T any](op string, source any, fn func(T)) error {
	switch src := source.(type) {
	case nil:
		return nil
	case *Set[T]:
		for v := range src.All() {
			fn(v)
		}
		return nil
	case []T:
		for _, v := range src {
			fn(v)
		}
		return nil
	case iter.Seq[T]:
		for v := range src {
			fn(v)
		}
		return nil
	case func(func(T) bool):
		for v := range src {
			fn(v)
		}
		return nil
	case Advancer[T]:
		for r := src.Next(); !r.Done; r = src.Next() {
			fn(r.Value)
		}
		return nil
	case ArrayLike[T]:
		for i, n := 0, src.Len(); i < n; i++ {
			fn(src.At(i))
		}
		return nil
	case string:
		for _, r := range src {
			v, ok := any(string(r)).(T)
			if !ok {
				return &TypeError{Op: op, Kind: "string", Want: "a " + typeName[T]() + " value"}
			}
			fn(v)
		}
		return nil
	}
	return eachAny(op, source, func(v any) error {
		t, ok := asType[T](v)
		if !ok {
			return &TypeError{Op: op, Kind: kindOf(v), Want: "a " + typeName[T]() + " value"}
		}
		fn(t)
		return nil
	})
}

// eachAny handles the untyped source shapes.
func eachAny(op string, source any, fn func(any) error) error {
	switch src := source.(type) {
	case []any:
		for _, v := range src {
			if err := fn(v); err != nil {
				return err
			}
		}
		return nil
	case [][]any:
		for _, v := range src {
			if err := fn(v); err != nil {
				return err
			}
		}
		return nil
	case [][2]any:
		for _, v := range src {
			if err := fn(v); err != nil {
				return err
			}
		}
		return nil
	case Advancer[any]:
		for r := src.Next(); !r.Done; r = src.Next() {
			if err := fn(r.Value); err != nil {
				return err
			}
		}
		return nil
	case ArrayLike[any]:
		for i, n := 0, src.Len(); i < n; i++ {
			if err := fn(src.At(i)); err != nil {
				return err
			}
		}
		return nil
	case iter.Seq[any]:
		return eachSeq(src, fn)
	case func(func(any) bool):
		return eachSeq(src, fn)
	}
	return &NotIterableError{Op: op, Kind: kindOf(source)}
}

func eachSeq(seq iter.Seq[any], fn func(any) error) error {
	var err error
	for v := range seq {
		if err = fn(v); err != nil {
			break
		}
	}
	return err
}

// asEntry accepts an Entry[K, V], a [2]any, or a slice of exactly two
// elements.
func asEntry[K, V any](op string, v any) (K, V, error) {
	var (
		k    K
		val  V
		pair [2]any
	)
	switch e := v.(type) {
	case Entry[K, V]:
		return e.Key, e.Value, nil
	case [2]any:
		pair = e
	case []any:
		if len(e) != 2 {
			return k, val, &TypeError{Op: op, Kind: kindOf(v) + " of length " + strconv.Itoa(len(e)), Want: "an entry object"}
		}
		pair = [2]any{e[0], e[1]}
	default:
		return k, val, &TypeError{Op: op, Kind: kindOf(v), Want: "an entry object"}
	}
	k, ok := asType[K](pair[0])
	if !ok {
		return k, val, &TypeError{Op: op, Kind: kindOf(pair[0]), Want: "a " + typeName[K]() + " key"}
	}
	val, ok = asType[V](pair[1])
	if !ok {
		return k, val, &TypeError{Op: op, Kind: kindOf(pair[1]), Want: "a " + typeName[V]() + " value"}
	}
	return k, val, nil
}

// asType converts v to T. A nil v converts to T's zero value when T is
// nilable.
func asType[T any](v any) (T, bool) {
	if v == nil {
		var zero T
		switch reflect.TypeFor[T]().Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return zero, true
		}
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

func typeName[T any]() string { return reflect.TypeFor[T]().String() }

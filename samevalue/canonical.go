package samevalue

import (
	"math"
	"reflect"
)

type nanKey struct{ bits int }

type identityKey struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// Canonical returns a Go-comparable stand-in for v such that
// Canonical(a) == Canonical(b) exactly when Zero(a, b). The stand-in can be
// used as a key in a native Go map.
//
// ok is false when v has no such form: complex numbers holding NaN, and
// arrays or structs that contain floats, interfaces or non-comparable
// fields. Callers must fall back to [Zero] for those.
func Canonical(v any) (key any, ok bool) {
	switch x := v.(type) {
	case nil, string, bool, int, int64, uint64:
		return v, true
	case float64:
		if math.IsNaN(x) {
			return nanKey{64}, true
		}
		return v, true
	case float32:
		if x != x {
			return nanKey{32}, true
		}
		return v, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Bool, reflect.String,
		reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return v, true
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return identityKey{typ: rv.Type(), len: -1}, true
		}
		return v, true
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		if math.IsNaN(real(c)) || math.IsNaN(imag(c)) {
			return nil, false
		}
		return v, true
	case reflect.Map, reflect.Func:
		return identityKey{typ: rv.Type(), ptr: uintptr(rv.UnsafePointer())}, true
	case reflect.Slice:
		return identityKey{typ: rv.Type(), ptr: uintptr(rv.UnsafePointer()), len: rv.Len()}, true
	case reflect.Array, reflect.Struct:
		if plain(rv.Type()) {
			return v, true
		}
	}
	return nil, false
}

// plain reports whether Go's == on t agrees with Zero.
func plain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.Interface, reflect.Slice, reflect.Map, reflect.Func:
		return false
	case reflect.Array:
		return plain(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !plain(t.Field(i).Type) {
				return false
			}
		}
	}
	return true
}

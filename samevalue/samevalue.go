// Package samevalue implements the equality predicates used to key the
// containers in this module, plus a hash function and a canonical form that
// agree with them.
//
// # Predicates
//
// [Zero] is the sameValueZero-like predicate: NaN equals NaN, +0 equals -0,
// and everything else compares by identity. [Is] is the stricter SameValue
// predicate (Object.is): NaN equals NaN but +0 and -0 differ.
//
// Identity is defined per kind:
//
//   - booleans, numbers, strings: same dynamic type and same value
//   - pointers, channels, maps, funcs: same referent (funcs by code pointer)
//   - slices: same backing array start and same length
//   - arrays, structs, interfaces: element-wise, recursively
//
// Two values with different dynamic types are never equal, so int(1) and
// int64(1) are distinct keys. Two distinct slices with identical contents
// are distinct keys.
package samevalue

import (
	"math"
	"reflect"
)

// Zero reports whether a and b are equivalent under sameValueZero.
func Zero(a, b any) bool { return equal(a, b, true) }

// Is reports whether a and b are equivalent under SameValue. It differs from
// [Zero] only in treating +0 and -0 as distinct.
func Is(a, b any) bool { return equal(a, b, false) }

func equal(a, b any, zeroEq bool) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case string:
		y, ok := b.(string)
		return ok && x == y
	case int:
		y, ok := b.(int)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case float64:
		y, ok := b.(float64)
		return ok && floatEqual(x, y, zeroEq)
	case float32:
		y, ok := b.(float32)
		return ok && floatEqual(float64(x), float64(y), zeroEq)
	}
	if b == nil {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	return valueEqual(va, vb, zeroEq)
}

func floatEqual(x, y float64, zeroEq bool) bool {
	if math.IsNaN(x) && math.IsNaN(y) {
		return true
	}
	if !zeroEq && x == 0 && y == 0 {
		return math.Signbit(x) == math.Signbit(y)
	}
	return x == y
}

// valueEqual compares two values of the same type.
func valueEqual(va, vb reflect.Value, zeroEq bool) bool {
	switch va.Kind() {
	case reflect.Bool:
		return va.Bool() == vb.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return va.Int() == vb.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return va.Uint() == vb.Uint()
	case reflect.Float32, reflect.Float64:
		return floatEqual(va.Float(), vb.Float(), zeroEq)
	case reflect.Complex64, reflect.Complex128:
		ca, cb := va.Complex(), vb.Complex()
		return floatEqual(real(ca), real(cb), zeroEq) && floatEqual(imag(ca), imag(cb), zeroEq)
	case reflect.String:
		return va.String() == vb.String()
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer, reflect.Map, reflect.Func:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Slice:
		return va.UnsafePointer() == vb.UnsafePointer() && va.Len() == vb.Len()
	case reflect.Array:
		for i := 0; i < va.Len(); i++ {
			if !valueEqual(va.Index(i), vb.Index(i), zeroEq) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < va.NumField(); i++ {
			if !valueEqual(va.Field(i), vb.Field(i), zeroEq) {
				return false
			}
		}
		return true
	case reflect.Interface:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		ea, eb := va.Elem(), vb.Elem()
		return ea.Type() == eb.Type() && valueEqual(ea, eb, zeroEq)
	}
	return false
}

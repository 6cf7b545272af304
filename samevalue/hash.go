package samevalue

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/zeebo/xxh3"
)

// canonicalNaN is hashed in place of every NaN bit pattern.
const canonicalNaN = 0x7ff8000000000001

// Hash returns a 64-bit XXH3 hash of v. Values that are equal under [Zero]
// (and therefore under [Is]) always hash to the same value.
func Hash(v any, seed uint64) uint64 {
	switch x := v.(type) {
	case string:
		return xxh3.HashSeed([]byte(x), seed)
	case int:
		return xxh3.HashSeed(binary.LittleEndian.AppendUint64(nil, uint64(x)), seed)
	}
	var buf [64]byte
	return xxh3.HashSeed(appendValue(buf[:0], reflect.ValueOf(v)), seed)
}

func appendValue(b []byte, v reflect.Value) []byte {
	b = append(b, byte(v.Kind()))
	switch v.Kind() {
	case reflect.Invalid:
	case reflect.Bool:
		if v.Bool() {
			b = append(b, 1)
		} else {
			b = append(b, 0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b = binary.LittleEndian.AppendUint64(b, uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b = binary.LittleEndian.AppendUint64(b, v.Uint())
	case reflect.Float32, reflect.Float64:
		b = appendFloat(b, v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		b = appendFloat(appendFloat(b, real(c)), imag(c))
	case reflect.String:
		b = binary.LittleEndian.AppendUint64(b, uint64(v.Len()))
		b = append(b, v.String()...)
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer, reflect.Map, reflect.Func:
		b = binary.LittleEndian.AppendUint64(b, uint64(uintptr(v.UnsafePointer())))
	case reflect.Slice:
		b = binary.LittleEndian.AppendUint64(b, uint64(uintptr(v.UnsafePointer())))
		b = binary.LittleEndian.AppendUint64(b, uint64(v.Len()))
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			b = appendValue(b, v.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			b = appendValue(b, v.Field(i))
		}
	case reflect.Interface:
		if !v.IsNil() {
			b = appendValue(b, v.Elem())
		}
	}
	return b
}

// appendFloat folds -0 into +0 and every NaN into one pattern.
func appendFloat(b []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return binary.LittleEndian.AppendUint64(b, canonicalNaN)
	case f == 0:
		return binary.LittleEndian.AppendUint64(b, 0)
	}
	return binary.LittleEndian.AppendUint64(b, math.Float64bits(f))
}

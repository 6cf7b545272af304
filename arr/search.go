package arr

import (
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-es-collections/samevalue"
)

// Find returns the first element for which pred(item, index) is true.
// Returns the zero value and false when none matches.
func Find[T any](items []T, pred func(T, int) bool) (T, bool) {
	for i, item := range items {
		if pred(item, i) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FindIndex returns the index of the first element for which
// pred(item, index) is true, or -1.
func FindIndex[T any](items []T, pred func(T, int) bool) int {
	for i, item := range items {
		if pred(item, i) {
			return i
		}
	}
	return -1
}

// FindLast returns the last element for which pred(item, index) is true.
func FindLast[T any](items []T, pred func(T, int) bool) (T, bool) {
	if i := FindLastIndex(items, pred); i >= 0 {
		return items[i], true
	}
	var zero T
	return zero, false
}

// FindLastIndex returns the index of the last element for which
// pred(item, index) is true, or -1.
func FindLastIndex[T any](items []T, pred func(T, int) bool) int {
	for i := len(items) - 1; i >= 0; i-- {
		if pred(items[i], i) {
			return i
		}
	}
	return -1
}

// Includes reports whether items contains an element equal to value under
// [samevalue.Zero], so NaN is found. The search starts at fromIndex[0]
// (default 0), a relative index: a negative value counts from the end.
//
//	arr.Includes([]int{1, 2, 3}, 3, -1)                 // → true
//	arr.Includes([]float64{1, 2, math.NaN()}, math.NaN()) // → true
func Includes[T any](items []T, value T, fromIndex ...int) bool {
	start := 0
	if len(fromIndex) > 0 {
		start = relative(fromIndex[0], len(items))
	}
	for _, item := range items[start:] {
		if samevalue.Zero(item, value) {
			return true
		}
	}
	return false
}

// At returns the element at relative index i: a negative value counts from
// the end. ok is false when i is out of range.
//
//	arr.At([]string{"a", "b", "c"}, -1) // → "c", true
func At[T any, I constraints.Integer](items []T, i I) (T, bool) {
	n := int64(len(items))
	x := int64(i)
	if i > 0 && x < 0 {
		x = n
	}
	if x < 0 {
		x += n
	}
	if x < 0 || x >= n {
		var zero T
		return zero, false
	}
	return items[x], true
}

package arr

import "golang.org/x/exp/constraints"

// relative resolves a relative index against length n: negative values count
// from the end, and the result is clamped to [0, n].
func relative[I constraints.Integer](i I, n int) int {
	// Compare in int64 so that huge unsigned values clamp instead of wrapping.
	x := int64(i)
	if i > 0 && x < 0 {
		return n
	}
	switch {
	case x < 0:
		return int(max(int64(n)+x, 0))
	case x > int64(n):
		return n
	}
	return int(x)
}

// CopyWithin copies the elements in [start, end) to position target within
// items, in place, and returns items. Indices are relative: a negative value
// counts from the end. end defaults to len(items). Overlapping ranges copy as
// if through a temporary buffer, and nothing is written past the end.
//
//	arr.CopyWithin([]int{1, 2, 3, 4, 5}, 0, 3)        // → [4 5 3 4 5]
//	arr.CopyWithin([]int{1, 2, 3, 4, 5}, 0, -2, -1)   // → [4 2 3 4 5]
func CopyWithin[T any, I constraints.Integer](items []T, target, start I, end ...I) []T {
	n := len(items)
	to, from, final := relative(target, n), relative(start, n), n
	if len(end) > 0 {
		final = relative(end[0], n)
	}
	if final > from {
		copy(items[to:], items[from:final])
	}
	return items
}

// Fill sets every element in [start, end) to value, in place, and returns
// items. Indices are relative; end defaults to len(items).
//
//	arr.Fill([]int{1, 2, 3}, 4, 0)      // → [4 4 4]
//	arr.Fill([]int{1, 2, 3}, 4, 1, 2)   // → [1 4 3]
//	arr.Fill([]int{1, 2, 3}, 4, -3, -2) // → [4 2 3]
func Fill[T any, I constraints.Integer](items []T, value T, start I, end ...I) []T {
	n := len(items)
	from, final := relative(start, n), n
	if len(end) > 0 {
		final = relative(end[0], n)
	}
	for i := from; i < final; i++ {
		items[i] = value
	}
	return items
}

// Package arr provides the ECMAScript 2015 array helpers for Go slices:
// construction (Of, From), in-place mutation (CopyWithin, Fill), searching
// (Find, FindIndex, Includes) and cursors over a slice (Entries, Keys,
// Values).
//
// # Relative indices
//
// Index arguments follow the JavaScript rules: a negative index counts from
// the end of the slice, and every index is clamped to [0, len]:
//
//	arr.Fill([]int{1, 2, 3}, 4, -3, -2) // → [4 2 3]
//	arr.Includes([]int{1, 2, 3}, 3, -1) // → true
//
// # Equality
//
// Includes compares with samevalue.Zero, so a NaN element is found and +0
// matches -0, exactly like a collections.Set lookup.
//
// # Cursors
//
// Entries, Keys and Values return collections.Cursor values with the same
// forward-only, terminal-on-exhaustion contract as the container cursors,
// so they can seed a Map or Set directly:
//
//	m, _ := collections.MapFrom[int, string](arr.Entries([]string{"a", "b"}))
//
// # Portability
//
//   - JavaScript: Array.of, Array.from, Array.prototype.copyWithin etc.
//   - Python: list(...) and slicing; no direct copyWithin equivalent
package arr

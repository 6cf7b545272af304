// Package collections provides insertion-ordered Map and Set containers with
// ECMAScript semantics: keys are compared with SameValueZero, iteration
// follows insertion order, and cursors stay valid while the container is
// mutated underneath them.
//
// # Overview
//
// [Map] and [Set] are generic over their key and value types. Equality does
// not use Go's == operator but [samevalue.Zero]:
//
//	m := collections.NewMap[any, string]()
//	m.Set(math.NaN(), "nan")
//	m.Get(math.NaN())            // → "nan", true
//	m.Set(math.Copysign(0, -1), "zero")
//	m.Get(0.0)                   // → "zero", true
//	m.Set([]int{1}, "slice")
//	m.Has([]int{1})              // → false: a different slice
//
// Keys need not be comparable in the Go sense. Slices, maps and funcs are
// identified by reference.
//
// # Seeded construction
//
// [MapFrom] and [SetFrom] accept any iterable source: another container,
// a slice, an iter.Seq or iter.Seq2, a [Cursor] or other [Advancer], or an
// [ArrayLike]. Untyped sources ([]any, [][]any, [][2]any) are checked
// element by element:
//
//	m, err := collections.MapFrom[string, int]([][]any{{"a", 1}, {"b", 2}})
//	_, err = collections.MapFrom[string, int]([]any{"not an entry"})
//	errors.Is(err, collections.ErrTypeConstraint) // → true
//
// # Cursors
//
// Entries, Keys and Values return a [Cursor]: a forward-only iterator over
// the live backing sequence. Entries deleted before the cursor reaches them
// are skipped and entries appended while it is active are visited. Once a
// cursor reports Done it stays done. A cursor never keeps its container
// alive.
//
// # Backends
//
// Lookup is delegated to an [Index]. Three are built in:
//
//   - [BackendLinear]: a scan of the backing sequence (the reference)
//   - [BackendHashed]: XXH3 buckets (github.com/zeebo/xxh3)
//   - [BackendNative]: a gods hash map (github.com/emirpasic/gods)
//
// A [Registry] holds named backends. [Registry.Probe] verifies that a backend
// matches the reference behaviour and [Registry.Select] picks the first that
// does. Containers receive their Registry through [Options]; nothing is
// installed globally.
//
// # Thread safety
//
// Map, Set and Cursor are not safe for concurrent use. Registry is.
//
// # Portability
//
// Method names follow the JavaScript Map and Set:
//
//   - JavaScript: new Map(entries), map.forEach((v, k, m) => ...)
//   - Python: dict (insertion ordered) with a custom key wrapper for NaN
//   - Go: this package; Get returns (value, ok) instead of undefined
package collections

package collections_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-es-collections/collections"
)

// eachBackend runs fn once per built-in backend. The low compaction
// threshold makes compaction happen inside ordinary tests.
func eachBackend(t *testing.T, fn func(t *testing.T, opts collections.Options)) {
	t.Helper()
	reg := collections.NewDefaultRegistry()
	for _, name := range reg.Backends() {
		t.Run(string(name), func(t *testing.T) {
			fn(t, collections.Options{Registry: reg, Backend: name, CompactThreshold: 2})
		})
	}
}

func newMap[K, V any](t *testing.T, opts collections.Options, source any) *collections.Map[K, V] {
	t.Helper()
	m, err := collections.NewMapWithOptions[K, V](opts, source)
	require.NoError(t, err)
	return m
}

func newSet[T any](t *testing.T, opts collections.Options, source any) *collections.Set[T] {
	t.Helper()
	s, err := collections.NewSetWithOptions[T](opts, source)
	require.NoError(t, err)
	return s
}

// sliceAdvancer is a minimal Advancer over a slice.
type sliceAdvancer[T any] struct {
	items []T
	i     int
}

func (a *sliceAdvancer[T]) Next() collections.Result[T] {
	if a.i >= len(a.items) {
		return collections.Result[T]{Done: true}
	}
	a.i++
	return collections.Result[T]{Value: a.items[a.i-1]}
}

// arrayLike is a minimal ArrayLike over a slice.
type arrayLike[T any] []T

func (a arrayLike[T]) Len() int   { return len(a) }
func (a arrayLike[T]) At(i int) T { return a[i] }

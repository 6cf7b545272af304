package collections_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-es-collections/collections"
)

func TestCursor_IdempotentExhaustion(t *testing.T) {
	eachBackend(t, func(t *testing.T, opts collections.Options) {
		m := newMap[string, int](t, opts, []collections.Entry[string, int]{{"a", 1}})
		c := m.Keys()
		require.Equal(t, collections.Result[string]{Value: "a"}, c.Next())
		for i := 0; i < 3; i++ {
			require.Equal(t, collections.Result[string]{Done: true}, c.Next())
		}
		require.True(t, c.Done())

		// Exhausted cursors stay exhausted even when entries are added.
		m.Set("b", 2)
		require.True(t, c.Next().Done)
	})
}

func TestCursor_DeleteDuringIteration(t *testing.T) {
	eachBackend(t, func(t *testing.T, opts collections.Options) {
		m := newMap[string, int](t, opts, nil)
		m.Set("x", 1)
		it := m.Keys()
		require.False(t, it.Next().Done)
		m.Delete("x")
		require.True(t, it.Next().Done)
	})
}

func TestCursor_SkipsDeletedAndSeesAppended(t *testing.T) {
	eachBackend(t, func(t *testing.T, opts collections.Options) {
		m := newMap[int, int](t, opts, []collections.Entry[int, int]{{1, 1}, {2, 2}, {3, 3}, {4, 4}})
		it := m.Values()
		require.Equal(t, 1, it.Next().Value)
		m.Delete(2)
		m.Delete(3)
		m.Set(5, 5)
		require.Equal(t, []int{4, 5}, collections.Collect(it))
	})
}

func TestCursor_Independent(t *testing.T) {
	eachBackend(t, func(t *testing.T, opts collections.Options) {
		s := newSet[string](t, opts, []string{"a", "b", "c"})
		first, second := s.Values(), s.Values()
		require.Equal(t, "a", first.Next().Value)
		require.Equal(t, "b", first.Next().Value)
		require.Equal(t, "a", second.Next().Value)
		require.Equal(t, "c", first.Next().Value)
		require.Equal(t, []string{"b", "c"}, collections.Collect(second))
	})
}

func TestCursor_ClearRewinds(t *testing.T) {
	eachBackend(t, func(t *testing.T, opts collections.Options) {
		m := newMap[string, int](t, opts, []collections.Entry[string, int]{{"a", 1}, {"b", 2}})
		it := m.Keys()
		require.Equal(t, "a", it.Next().Value)
		m.Clear()
		m.Set("z", 26)
		require.Equal(t, []string{"z"}, collections.Collect(it))
	})
}

func TestCursor_Close(t *testing.T) {
	m := collections.NewMap[int, int]()
	m.Set(1, 1).Set(2, 2)
	it := m.Entries()
	it.Close()
	it.Close()
	require.True(t, it.Done())
	require.True(t, it.Next().Done)
}

func TestCursor_Kind(t *testing.T) {
	m := collections.NewMap[int, string]()
	require.Equal(t, collections.KindKeyValue, m.Entries().Kind())
	require.Equal(t, collections.KindKey, m.Keys().Kind())
	require.Equal(t, collections.KindValue, m.Values().Kind())
	require.Equal(t, "key+value", collections.KindKeyValue.String())
	require.Equal(t, "key", collections.KindKey.String())
	require.Equal(t, "value", collections.KindValue.String())
}

func TestCursor_All(t *testing.T) {
	m := collections.NewMap[int, int]()
	m.Set(1, 10).Set(2, 20).Set(3, 30)
	it := m.Values()
	for v := range it.All() {
		if v == 20 {
			break
		}
	}
	require.Equal(t, 30, it.Next().Value)
}

func TestNewCursor(t *testing.T) {
	n := 0
	c := collections.NewCursor(collections.KindValue, func() (int, bool) {
		n++
		return n, n <= 3
	})
	require.Equal(t, []int{1, 2, 3}, collections.Collect(c))
	require.True(t, c.Next().Done)
	require.Equal(t, 4, n)
}

func TestCursor_DoesNotKeepContainerAlive(t *testing.T) {
	m := collections.NewMap[int, int]()
	for i := 0; i < 100; i++ {
		m.Set(i, i)
	}
	it := m.Keys()
	require.Equal(t, 0, it.Next().Value)

	m = nil
	yields := 0
	for i := 0; i < 10; i++ {
		runtime.GC()
		if it.Next().Done {
			break
		}
		yields++
	}
	require.True(t, it.Done())
	require.Less(t, yields, 10)
}

func buildMap(n int) *collections.Map[int, int] {
	m := collections.NewMap[int, int]()
	for i := 0; i < n; i++ {
		m.Set(i, i)
	}
	return m
}

func buildSet(n int) *collections.Set[int] {
	s := collections.NewSet[int]()
	for i := 0; i < n; i++ {
		s.Add(i)
	}
	return s
}

// collectGarbage runs the collector in a loop until the test ends.
func collectGarbage(t *testing.T) {
	stop, done := make(chan struct{}), make(chan struct{})
	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			default:
				runtime.GC()
			}
		}
	}()
	t.Cleanup(func() {
		close(stop)
		<-done
	})
}

func TestAll_KeepsTemporaryAlive(t *testing.T) {
	n := 0
	for range buildMap(200).All() {
		runtime.GC()
		n++
	}
	require.Equal(t, 200, n)

	n = 0
	for range buildSet(200).All() {
		runtime.GC()
		n++
	}
	require.Equal(t, 200, n)

	n = 0
	buildMap(200).ForEach(func(int, int, *collections.Map[int, int]) {
		runtime.GC()
		n++
	})
	require.Equal(t, 200, n)
}

func TestSeedFromTemporary_UnderGC(t *testing.T) {
	collectGarbage(t)
	want := buildSet(500)
	wantJSON := want.String()
	for i := 0; i < 50; i++ {
		m, err := collections.MapFrom[int, int](buildMap(2000))
		require.NoError(t, err)
		require.Equal(t, 2000, m.Size())

		s, err := collections.SetFrom[int](buildSet(2000))
		require.NoError(t, err)
		require.Equal(t, 2000, s.Size())

		require.Equal(t, 1000, collections.Union(buildSet(1000), collections.NewSet[int]()).Size())
		require.Equal(t, 1000, collections.Intersect(buildSet(1000), buildSet(1000)).Size())
		require.Equal(t, 1000, collections.Difference(buildSet(1000), collections.NewSet[int]()).Size())
		require.Equal(t, wantJSON, buildSet(500).String())
	}
}

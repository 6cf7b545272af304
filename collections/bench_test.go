package collections_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-es-collections/collections"
)

// makeKeys creates n distinct string keys for benchmarks.
func makeKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}
	return keys
}

func benchBackends(b *testing.B, fn func(b *testing.B, opts collections.Options)) {
	reg := collections.NewDefaultRegistry()
	for _, name := range reg.Backends() {
		b.Run(string(name), func(b *testing.B) {
			opts := collections.DefaultOptions()
			opts.Registry, opts.Backend = reg, name
			fn(b, opts)
		})
	}
}

func BenchmarkMapSet(b *testing.B) {
	keys := makeKeys(1_000)
	benchBackends(b, func(b *testing.B, opts collections.Options) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			m, _ := collections.NewMapWithOptions[string, int](opts, nil)
			for j, k := range keys {
				m.Set(k, j)
			}
		}
	})
}

func BenchmarkMapGet(b *testing.B) {
	keys := makeKeys(1_000)
	benchBackends(b, func(b *testing.B, opts collections.Options) {
		m, _ := collections.NewMapWithOptions[string, int](opts, nil)
		for j, k := range keys {
			m.Set(k, j)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m.Get(keys[i%len(keys)])
		}
	})
}

func BenchmarkMapDelete(b *testing.B) {
	keys := makeKeys(1_000)
	benchBackends(b, func(b *testing.B, opts collections.Options) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			m, _ := collections.NewMapWithOptions[string, int](opts, nil)
			for j, k := range keys {
				m.Set(k, j)
			}
			b.StartTimer()
			for _, k := range keys {
				m.Delete(k)
			}
		}
	})
}

func BenchmarkMapIterate(b *testing.B) {
	keys := makeKeys(10_000)
	m := collections.NewMap[string, int]()
	for j, k := range keys {
		m.Set(k, j)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range m.All() {
		}
	}
}

func BenchmarkSetAdd(b *testing.B) {
	benchBackends(b, func(b *testing.B, opts collections.Options) {
		for i := 0; i < b.N; i++ {
			s, _ := collections.NewSetWithOptions[int](opts, nil)
			for j := 0; j < 1_000; j++ {
				s.Add(j % 500)
			}
		}
	})
}

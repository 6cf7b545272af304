package samevalue_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-es-collections/samevalue"
)

type point struct {
	X, Y float64
}

type tagged struct {
	Name string
	Tags []string
}

func TestZero_NaN(t *testing.T) {
	require.True(t, samevalue.Zero(math.NaN(), math.NaN()))
	require.True(t, samevalue.Zero(float32(math.NaN()), float32(math.NaN())))
	require.False(t, samevalue.Zero(math.NaN(), float32(math.NaN())), "different float kinds")
	require.False(t, samevalue.Zero(math.NaN(), 1.0))
}

func TestZero_SignedZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	require.True(t, samevalue.Zero(0.0, negZero))
	require.False(t, samevalue.Is(0.0, negZero))
	require.True(t, samevalue.Is(negZero, negZero))
	require.True(t, samevalue.Is(math.NaN(), math.NaN()))
}

func TestZero_Scalars(t *testing.T) {
	require.True(t, samevalue.Zero(1, 1))
	require.True(t, samevalue.Zero("a", "a"))
	require.True(t, samevalue.Zero(nil, nil))
	require.True(t, samevalue.Zero(uint8(7), uint8(7)))
	require.False(t, samevalue.Zero(1, int64(1)), "different dynamic types")
	require.False(t, samevalue.Zero("1", 1))
	require.False(t, samevalue.Zero(nil, 0))
	require.False(t, samevalue.Zero(0, nil))
	require.False(t, samevalue.Zero(true, false))
}

func TestZero_References(t *testing.T) {
	a := []int{1, 2}
	b := []int{1, 2}
	require.True(t, samevalue.Zero(a, a))
	require.False(t, samevalue.Zero(a, b), "identical shape, distinct slices")
	require.False(t, samevalue.Zero(a, a[:1]), "same array, different length")

	x, y := 1, 1
	require.True(t, samevalue.Zero(&x, &x))
	require.False(t, samevalue.Zero(&x, &y))

	m := map[string]int{}
	require.True(t, samevalue.Zero(m, m))
	require.False(t, samevalue.Zero(m, map[string]int{}))
}

func TestZero_Composites(t *testing.T) {
	require.True(t, samevalue.Zero(point{1, 2}, point{1, 2}))
	require.False(t, samevalue.Zero(point{1, 2}, point{2, 1}))
	require.True(t, samevalue.Zero(point{math.NaN(), 0}, point{math.NaN(), math.Copysign(0, -1)}))
	require.False(t, samevalue.Is(point{0, 0}, point{math.Copysign(0, -1), 0}))

	tags := []string{"x"}
	require.True(t, samevalue.Zero(tagged{"a", tags}, tagged{"a", tags}))
	require.False(t, samevalue.Zero(tagged{"a", tags}, tagged{"a", []string{"x"}}))

	require.True(t, samevalue.Zero([2]any{1, "a"}, [2]any{1, "a"}))
	require.False(t, samevalue.Zero([2]any{1, "a"}, [2]any{1, int64(1)}))
}

func TestHash_AgreesWithZero(t *testing.T) {
	tags := []string{"x"}
	pairs := [][2]any{
		{math.NaN(), math.NaN()},
		{0.0, math.Copysign(0, -1)},
		{float32(math.NaN()), float32(math.NaN())},
		{"key", "key"},
		{42, 42},
		{point{math.NaN(), 0}, point{math.NaN(), math.Copysign(0, -1)}},
		{tagged{"a", tags}, tagged{"a", tags}},
		{[2]any{1, "a"}, [2]any{1, "a"}},
		{nil, nil},
	}
	for _, p := range pairs {
		require.True(t, samevalue.Zero(p[0], p[1]), "%v vs %v", p[0], p[1])
		require.Equal(t, samevalue.Hash(p[0], 0), samevalue.Hash(p[1], 0), "%v vs %v", p[0], p[1])
		require.Equal(t, samevalue.Hash(p[0], 99), samevalue.Hash(p[1], 99), "%v vs %v", p[0], p[1])
	}
}

func TestHash_Seed(t *testing.T) {
	require.NotEqual(t, samevalue.Hash("key", 1), samevalue.Hash("key", 2))
}

func TestCanonical(t *testing.T) {
	index := map[any]int{}
	put := func(v any, pos int) {
		k, ok := samevalue.Canonical(v)
		require.True(t, ok, "%#v", v)
		index[k] = pos
	}
	get := func(v any) (int, bool) {
		k, ok := samevalue.Canonical(v)
		require.True(t, ok, "%#v", v)
		pos, found := index[k]
		return pos, found
	}

	s := []int{1}
	put(math.NaN(), 1)
	put(0.0, 2)
	put(s, 3)
	put("a", 4)

	pos, ok := get(math.NaN())
	require.True(t, ok)
	require.Equal(t, 1, pos)

	pos, ok = get(math.Copysign(0, -1))
	require.True(t, ok)
	require.Equal(t, 2, pos)

	pos, ok = get(s)
	require.True(t, ok)
	require.Equal(t, 3, pos)

	_, ok = get([]int{1})
	require.False(t, ok)
}

func TestCanonical_NoForm(t *testing.T) {
	_, ok := samevalue.Canonical(point{1, 2})
	require.False(t, ok, "structs with float fields fall back to Zero")
	_, ok = samevalue.Canonical(complex(math.NaN(), 0))
	require.False(t, ok)

	type plainKey struct {
		A string
		B int
	}
	k, ok := samevalue.Canonical(plainKey{"x", 1})
	require.True(t, ok)
	require.Equal(t, plainKey{"x", 1}, k)
}

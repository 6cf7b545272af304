package arr_test

import (
	"fmt"
	"math"

	"github.com/hasbyte1/go-es-collections/arr"
	"github.com/hasbyte1/go-es-collections/collections"
)

func ExampleFrom() {
	doubled, _ := arr.From([]int{1, 2, 3}, func(x, _ int) int { return x + x })
	chars, _ := arr.From[string]("foo", nil)
	fmt.Println(doubled, chars)
	// Output: [2 4 6] [f o o]
}

func ExampleFrom_length() {
	idx, _ := arr.From(arr.Length(5), func(_, i int) int { return i })
	fmt.Println(idx)
	// Output: [0 1 2 3 4]
}

func ExampleCopyWithin() {
	fmt.Println(arr.CopyWithin([]int{1, 2, 3, 4, 5}, 0, 3))
	fmt.Println(arr.CopyWithin([]int{1, 2, 3, 4, 5}, 0, -2, -1))
	// Output:
	// [4 5 3 4 5]
	// [4 2 3 4 5]
}

func ExampleFill() {
	fmt.Println(arr.Fill([]int{1, 2, 3}, 4, -3, -2))
	// Output: [4 2 3]
}

func ExampleIncludes() {
	fmt.Println(arr.Includes([]float64{1, 2, math.NaN()}, math.NaN()))
	fmt.Println(arr.Includes([]int{1, 2, 3}, 3, 3))
	// Output:
	// true
	// false
}

func ExampleEntries() {
	for e := range arr.Entries([]string{"a", "b"}).All() {
		fmt.Println(e)
	}
	m, _ := collections.MapFrom[int, string](arr.Entries([]string{"x", "y"}))
	fmt.Println(m)
	// Output:
	// [0, a]
	// [1, b]
	// [[0,"x"],[1,"y"]]
}

package collections

import (
	"github.com/emirpasic/gods/maps/hashmap"

	"github.com/hasbyte1/go-es-collections/samevalue"
)

// nativeIndex delegates to a gods hash map keyed by the canonical form of
// each key. Keys without a canonical form (see samevalue.Canonical) are kept
// in a small scan list.
type nativeIndex struct {
	keys *hashmap.Map
	scan []int
}

// NewNativeIndex returns an index backed by github.com/emirpasic/gods'
// hash map. It is registered as [BackendNative].
func NewNativeIndex() Index {
	return &nativeIndex{keys: hashmap.New()}
}

func (x *nativeIndex) Find(key any, slots Slots) (int, bool) {
	if ck, ok := samevalue.Canonical(key); ok {
		if pos, found := x.keys.Get(ck); found {
			return pos.(int), true
		}
		return -1, false
	}
	return scanList(key, x.scan, slots)
}

func (x *nativeIndex) Insert(key any, pos int) {
	if ck, ok := samevalue.Canonical(key); ok {
		x.keys.Put(ck, pos)
		return
	}
	x.scan = append(x.scan, pos)
}

func (x *nativeIndex) Remove(key any, pos int) {
	if ck, ok := samevalue.Canonical(key); ok {
		x.keys.Remove(ck)
		return
	}
	x.scan = removePos(x.scan, pos)
}

func (x *nativeIndex) Rebuild(slots Slots) {
	x.Reset()
	for i, n := 0, slots.Len(); i < n; i++ {
		if k, live := slots.KeyAt(i); live {
			x.Insert(k, i)
		}
	}
}

func (x *nativeIndex) Reset() {
	x.keys.Clear()
	x.scan = x.scan[:0]
}

package collections

import "github.com/hasbyte1/go-es-collections/samevalue"

// hashedIndex buckets positions by the XXH3 hash of their key. Collisions
// are resolved by comparing candidates with samevalue.Zero.
type hashedIndex struct {
	seed    uint64
	buckets map[uint64][]int
}

// NewHashedIndex returns an XXH3-bucketed index using the given seed. It is
// registered as [BackendHashed] with seed 0.
func NewHashedIndex(seed uint64) Index {
	return &hashedIndex{seed: seed, buckets: make(map[uint64][]int)}
}

func (x *hashedIndex) Find(key any, slots Slots) (int, bool) {
	return scanList(key, x.buckets[samevalue.Hash(key, x.seed)], slots)
}

func (x *hashedIndex) Insert(key any, pos int) {
	h := samevalue.Hash(key, x.seed)
	x.buckets[h] = append(x.buckets[h], pos)
}

func (x *hashedIndex) Remove(key any, pos int) {
	h := samevalue.Hash(key, x.seed)
	if rest := removePos(x.buckets[h], pos); len(rest) > 0 {
		x.buckets[h] = rest
	} else {
		delete(x.buckets, h)
	}
}

func (x *hashedIndex) Rebuild(slots Slots) {
	x.Reset()
	for i, n := 0, slots.Len(); i < n; i++ {
		if k, live := slots.KeyAt(i); live {
			x.Insert(k, i)
		}
	}
}

func (x *hashedIndex) Reset() { clear(x.buckets) }

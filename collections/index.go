package collections

import "github.com/hasbyte1/go-es-collections/samevalue"

// Slots is the read-only view of a container's backing sequence that an
// [Index] works against. Positions run from 0 to Len()-1; tombstoned
// positions report live == false.
type Slots interface {
	Len() int
	KeyAt(pos int) (key any, live bool)
}

// Index is the lookup strategy behind a container. Every implementation
// must locate keys exactly as a linear scan with [samevalue.Zero] would;
// only the cost may differ.
//
// The container calls Insert after appending a slot, Remove before
// tombstoning one, Rebuild after compacting (positions change) and Reset
// after clearing.
type Index interface {
	// Find returns the position of the live slot whose key is equivalent
	// to key.
	Find(key any, slots Slots) (pos int, ok bool)
	Insert(key any, pos int)
	Remove(key any, pos int)
	Rebuild(slots Slots)
	Reset()
}

// IndexFactory creates a fresh, empty [Index]. Factories are what a
// [Registry] stores under a [BackendName].
type IndexFactory func() Index

// linearIndex keeps no state: every lookup scans the backing sequence.
type linearIndex struct{}

// NewLinearIndex returns the reference backend: a linear scan comparing keys
// with [samevalue.Zero]. It is registered as [BackendLinear].
func NewLinearIndex() Index { return linearIndex{} }

func (linearIndex) Find(key any, slots Slots) (int, bool) {
	for i, n := 0, slots.Len(); i < n; i++ {
		if k, live := slots.KeyAt(i); live && samevalue.Zero(key, k) {
			return i, true
		}
	}
	return -1, false
}

func (linearIndex) Insert(any, int) {}
func (linearIndex) Remove(any, int) {}
func (linearIndex) Rebuild(Slots)   {}
func (linearIndex) Reset()          {}

// scanList finds key among an explicit list of positions.
func scanList(key any, positions []int, slots Slots) (int, bool) {
	for _, pos := range positions {
		if k, live := slots.KeyAt(pos); live && samevalue.Zero(key, k) {
			return pos, true
		}
	}
	return -1, false
}

func removePos(positions []int, pos int) []int {
	for i, p := range positions {
		if p == pos {
			return append(positions[:i], positions[i+1:]...)
		}
	}
	return positions
}

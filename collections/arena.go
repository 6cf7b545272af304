package collections

import (
	"weak"

	"github.com/phuslu/log"
)

type slot[K, V any] struct {
	key   K
	value V
	live  bool
}

// position is a cursor's offset into an arena. The arena only holds weak
// references to positions, so an abandoned cursor costs nothing.
type position struct {
	at       int
	detached bool
}

// arena is the backing sequence shared by Map and Set: an ordered list of
// slots, each occupied or vacant, plus a live count. Deletion tombstones a
// slot; compaction drops tombstones and remaps every live cursor position.
type arena[K, V any] struct {
	slots   []slot[K, V]
	live    int
	index   Index
	backend BackendName
	compact int
	cursors []weak.Pointer[position]
	logger  *log.Logger
}

func newArena[K, V any](opts Options) (*arena[K, V], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	idx, name, err := opts.resolveIndex()
	if err != nil {
		return nil, err
	}
	return &arena[K, V]{
		index:   idx,
		backend: name,
		compact: opts.CompactThreshold,
		logger:  opts.Logger,
	}, nil
}

func defaultArena[K, V any]() *arena[K, V] {
	return &arena[K, V]{
		index:   linearIndex{},
		backend: BackendLinear,
		compact: DefaultCompactThreshold,
	}
}

// Len and KeyAt implement Slots.
func (a *arena[K, V]) Len() int { return len(a.slots) }

func (a *arena[K, V]) KeyAt(pos int) (any, bool) {
	s := &a.slots[pos]
	return s.key, s.live
}

func (a *arena[K, V]) find(key K) (int, bool) {
	return a.index.Find(key, a)
}

func (a *arena[K, V]) get(key K) (V, bool) {
	if pos, ok := a.find(key); ok {
		return a.slots[pos].value, true
	}
	var zero V
	return zero, false
}

// put stores value under key. An existing entry keeps its position and has
// its value replaced only when overwrite is set.
func (a *arena[K, V]) put(key K, value V, overwrite bool) {
	if pos, ok := a.find(key); ok {
		if overwrite {
			a.slots[pos].value = value
		}
		return
	}
	a.slots = append(a.slots, slot[K, V]{key: key, value: value, live: true})
	a.live++
	a.index.Insert(key, len(a.slots)-1)
}

func (a *arena[K, V]) remove(key K) bool {
	pos, ok := a.find(key)
	if !ok {
		return false
	}
	a.index.Remove(a.slots[pos].key, pos)
	a.slots[pos] = slot[K, V]{}
	a.live--
	a.maybeCompact()
	return true
}

func (a *arena[K, V]) clear() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.live = 0
	a.index.Reset()
	a.eachCursor(func(p *position) { p.at = 0 })
}

func (a *arena[K, V]) maybeCompact() {
	dead := len(a.slots) - a.live
	if a.compact == 0 || dead < a.compact || dead <= a.live {
		return
	}
	before := len(a.slots)

	// remap[i] is the number of live slots before old position i.
	remap := make([]int, len(a.slots)+1)
	n := 0
	for i := range a.slots {
		remap[i] = n
		if a.slots[i].live {
			a.slots[n] = a.slots[i]
			n++
		}
	}
	remap[len(a.slots)] = n
	clear(a.slots[n:])
	a.slots = a.slots[:n]

	a.eachCursor(func(p *position) {
		if p.at >= len(remap) {
			p.at = n
			return
		}
		p.at = remap[p.at]
	})
	a.index.Rebuild(a)

	debug(a.logger).
		Str("backend", string(a.backend)).
		Int("slots_before", before).
		Int("slots_after", n).
		Msg("compacted backing sequence")
}

// nextLive returns the first live position at or after from.
func (a *arena[K, V]) nextLive(from int) (int, bool) {
	for i := from; i < len(a.slots); i++ {
		if a.slots[i].live {
			return i, true
		}
	}
	return -1, false
}

func (a *arena[K, V]) track() *position {
	if n := len(a.cursors); n >= 16 && n&(n-1) == 0 {
		a.eachCursor(func(*position) {})
	}
	p := &position{}
	a.cursors = append(a.cursors, weak.Make(p))
	return p
}

// eachCursor calls fn for every attached cursor position and forgets the
// ones that were collected or detached.
func (a *arena[K, V]) eachCursor(fn func(*position)) {
	kept := a.cursors[:0]
	for _, wp := range a.cursors {
		if p := wp.Value(); p != nil && !p.detached {
			fn(p)
			kept = append(kept, wp)
		}
	}
	clear(a.cursors[len(kept):])
	a.cursors = kept
}

package conformance

import (
	"errors"
	"fmt"

	"github.com/hasbyte1/go-es-collections/collections"
	"github.com/hasbyte1/go-es-collections/samevalue"
)

// container is the common surface of Map[any, any] and Set[any] that steps
// drive.
type container interface {
	has(k any) bool
	del(k any) bool
	clear()
	size() int
	cursor(kind string) (*collections.Cursor[any], error)
	forEach(fn func(key any))
}

type mapContainer struct{ m *collections.Map[any, any] }

func (c mapContainer) has(k any) bool { return c.m.Has(k) }
func (c mapContainer) del(k any) bool { return c.m.Delete(k) }
func (c mapContainer) clear()         { c.m.Clear() }
func (c mapContainer) size() int      { return c.m.Size() }

func (c mapContainer) cursor(kind string) (*collections.Cursor[any], error) {
	switch kind {
	case "keys":
		return c.m.Keys(), nil
	case "values":
		return c.m.Values(), nil
	case "entries":
		return collections.Transform(c.m.Entries(), pair), nil
	}
	return nil, fmt.Errorf("%w: cursor kind %q", ErrInvalidScenario, kind)
}

func (c mapContainer) forEach(fn func(any)) {
	c.m.ForEach(func(_ any, k any, _ *collections.Map[any, any]) { fn(k) })
}

type setContainer struct{ s *collections.Set[any] }

func (c setContainer) has(k any) bool { return c.s.Has(k) }
func (c setContainer) del(k any) bool { return c.s.Delete(k) }
func (c setContainer) clear()         { c.s.Clear() }
func (c setContainer) size() int      { return c.s.Size() }

func (c setContainer) cursor(kind string) (*collections.Cursor[any], error) {
	switch kind {
	case "keys":
		return c.s.Keys(), nil
	case "values":
		return c.s.Values(), nil
	case "entries":
		return collections.Transform(c.s.Entries(), pair), nil
	}
	return nil, fmt.Errorf("%w: cursor kind %q", ErrInvalidScenario, kind)
}

func (c setContainer) forEach(fn func(any)) {
	c.s.ForEach(func(v, _ any, _ *collections.Set[any]) { fn(v) })
}

func pair(e collections.Entry[any, any]) any { return []any{e.Key, e.Value} }

// Execute runs one scenario against a container built with opts.
func Execute(s Scenario, opts collections.Options) error {
	var (
		c   container
		m   *collections.Map[any, any]
		set *collections.Set[any]
		err error
	)
	switch s.Kind {
	case KindMap:
		m, err = collections.NewMapWithOptions[any, any](opts, s.Seed)
		c = mapContainer{m}
	case KindSet:
		set, err = collections.NewSetWithOptions[any](opts, s.Seed)
		c = setContainer{set}
	default:
		return &StepError{Scenario: s.Name, Step: -1, Err: fmt.Errorf("%w: kind %q", ErrInvalidScenario, s.Kind)}
	}
	if err := checkSeedError(s.SeedError, err); err != nil {
		return &StepError{Scenario: s.Name, Step: -1, Err: err}
	}
	if s.SeedError != "" {
		return nil
	}

	cursors := make(map[string]*collections.Cursor[any])
	for i, st := range s.Steps {
		if err := step(c, m, set, cursors, st); err != nil {
			return &StepError{Scenario: s.Name, Step: i, Op: st.Op, Err: err}
		}
	}
	return nil
}

func checkSeedError(class string, err error) error {
	switch class {
	case "":
		return err
	case "type":
		if !errors.Is(err, collections.ErrTypeConstraint) {
			return mismatch("a type constraint error", err)
		}
	case "iterable":
		if !errors.Is(err, collections.ErrNotIterable) {
			return mismatch("a not-iterable error", err)
		}
	}
	return nil
}

func step(c container, m *collections.Map[any, any], s *collections.Set[any], cursors map[string]*collections.Cursor[any], st Step) error {
	arg := func(i int) any { return st.Args[i] }

	switch st.Op {
	case "set":
		if m == nil {
			return fmt.Errorf("%w: set on a set", ErrInvalidScenario)
		}
		m.Set(arg(0), arg(1))
	case "add":
		if s == nil {
			return fmt.Errorf("%w: add on a map", ErrInvalidScenario)
		}
		s.Add(arg(0))
	case "get":
		if m == nil {
			return fmt.Errorf("%w: get on a set", ErrInvalidScenario)
		}
		v, ok := m.Get(arg(0))
		if st.Missing {
			if ok {
				return mismatch("missing", v)
			}
			return nil
		}
		if !ok {
			return mismatch(st.Want, "missing")
		}
		return expect(st.Want, v)
	case "has":
		return expect(st.Want, c.has(arg(0)))
	case "delete":
		return expect(st.Want, c.del(arg(0)))
	case "clear":
		c.clear()
	case "size":
		return expect(st.Want, c.size())
	case "keys", "values", "entries":
		cur, err := c.cursor(st.Op)
		if err != nil {
			return err
		}
		return expect(st.Want, orEmpty(collections.Collect(cur)))
	case "foreach":
		var visited []any
		first := true
		c.forEach(func(k any) {
			visited = append(visited, k)
			if first {
				first = false
				for _, d := range st.Args {
					c.del(d)
				}
			}
		})
		return expect(st.Want, orEmpty(visited))
	case "open":
		kind, _ := arg(0).(string)
		cur, err := c.cursor(kind)
		if err != nil {
			return err
		}
		cursors[st.Cursor] = cur
	case "next":
		cur, ok := cursors[st.Cursor]
		if !ok {
			return fmt.Errorf("%w: cursor %q was never opened", ErrInvalidScenario, st.Cursor)
		}
		r := cur.Next()
		if st.Done {
			if !r.Done {
				return mismatch("done", r.Value)
			}
			return nil
		}
		if r.Done {
			return mismatch(st.Want, "done")
		}
		return expect(st.Want, r.Value)
	case "close":
		if cur, ok := cursors[st.Cursor]; ok {
			cur.Close()
		}
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidScenario, st.Op)
	}
	return nil
}

func orEmpty(v []any) []any {
	if v == nil {
		return []any{}
	}
	return v
}

// expect compares an expected YAML value with an observed one. Lists are
// compared element-wise and scalars with samevalue.Zero, so a YAML .nan
// matches a NaN result. A nil want is not checked.
func expect(want, got any) error {
	if want == nil {
		return nil
	}
	if !match(want, got) {
		return mismatch(want, got)
	}
	return nil
}

func match(want, got any) bool {
	wl, wok := want.([]any)
	gl, gok := got.([]any)
	if wok || gok {
		if !wok || !gok || len(wl) != len(gl) {
			return false
		}
		for i := range wl {
			if !match(wl[i], gl[i]) {
				return false
			}
		}
		return true
	}
	return samevalue.Zero(want, got)
}

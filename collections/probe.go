package collections

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ProbeCheck is one feature-detection check run by [Registry.Probe].
type ProbeCheck struct {
	Name string
	Run  func(opts Options) error
}

var errMismatch = errors.New("unexpected result")

// ProbeChecks returns the checks [Registry.Probe] runs, in order. They are
// the behaviours a backend must share with the linear reference.
func ProbeChecks() []ProbeCheck {
	return []ProbeCheck{
		{"construct-from-entries", probeConstruct},
		{"cursors", probeCursors},
		{"nan-key", probeNaN},
		{"signed-zero-key", probeSignedZero},
		{"reference-keys", probeReferenceKeys},
		{"overwrite-keeps-position", probeOverwrite},
		{"delete-during-iteration", probeDeleteDuringIteration},
		{"compaction-remaps-cursors", probeCompaction},
		{"set-uniqueness", probeSetUniqueness},
	}
}

// Probe checks that the named backend behaves like the linear reference
// backend: seeded construction, cursors, NaN and signed-zero keys,
// reference identity, insertion order, deletion during iteration and
// compaction. A failure, including a panic inside the backend, is reported
// as an error wrapping [ErrProbeFailed].
func (r *Registry) Probe(name BackendName) error {
	if !r.HasBackend(name) {
		return fmt.Errorf("%w: %q", ErrBackendNotFound, name)
	}
	opts := Options{Registry: r, Backend: name, CompactThreshold: 1}
	for _, check := range ProbeChecks() {
		if err := runCheck(check, opts); err != nil {
			r.mu.RLock()
			l := r.logger
			r.mu.RUnlock()
			if l != nil {
				l.Warn().Str("backend", string(name)).Str("check", check.Name).Err(err).Msg("probe failed")
			}
			return fmt.Errorf("%w: %s: %s: %v", ErrProbeFailed, name, check.Name, err)
		}
	}
	return nil
}

func runCheck(check ProbeCheck, opts Options) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return check.Run(opts)
}

func mismatch(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errMismatch}, args...)...)
}

func probeConstruct(opts Options) error {
	m, err := NewMapWithOptions[any, any](opts, [][]any{{0, 0}})
	if err != nil {
		return err
	}
	if m.Size() != 1 {
		return mismatch("size %d after seeding one entry", m.Size())
	}
	return nil
}

func probeCursors(opts Options) error {
	m, err := NewMapWithOptions[string, int](opts, []Entry[string, int]{{"a", 1}})
	if err != nil {
		return err
	}
	if r := m.Entries().Next(); r.Done || r.Value != (Entry[string, int]{"a", 1}) {
		return mismatch("entries yielded %+v", r)
	}
	if r := m.Keys().Next(); r.Done || r.Value != "a" {
		return mismatch("keys yielded %+v", r)
	}
	if r := m.Values().Next(); r.Done || r.Value != 1 {
		return mismatch("values yielded %+v", r)
	}
	return nil
}

func probeNaN(opts Options) error {
	m, err := NewMapWithOptions[float64, string](opts, nil)
	if err != nil {
		return err
	}
	m.Set(math.NaN(), "nan").Set(math.NaN(), "still nan")
	if v, ok := m.Get(math.NaN()); !ok || v != "still nan" || m.Size() != 1 {
		return mismatch("NaN lookup gave %q, %v with size %d", v, ok, m.Size())
	}
	return nil
}

func probeSignedZero(opts Options) error {
	m, err := NewMapWithOptions[any, string](opts, nil)
	if err != nil {
		return err
	}
	m.Set(math.Copysign(0, -1), "zero")
	if v, ok := m.Get(0.0); !ok || v != "zero" {
		return mismatch("+0 lookup of -0 key gave %q, %v", v, ok)
	}
	return nil
}

func probeReferenceKeys(opts Options) error {
	m, err := NewMapWithOptions[any, int](opts, nil)
	if err != nil {
		return err
	}
	a, b := []int{1}, []int{1}
	m.Set(a, 1)
	if !m.Has(a) || m.Has(b) {
		return mismatch("slice identity: has(a)=%v has(b)=%v", m.Has(a), m.Has(b))
	}
	return nil
}

func probeOverwrite(opts Options) error {
	m, err := NewMapWithOptions[string, int](opts, nil)
	if err != nil {
		return err
	}
	m.Set("k", 1).Set("j", 2).Set("k", 3)
	if keys := Collect(m.Keys()); !slices.Equal(keys, []string{"k", "j"}) {
		return mismatch("keys %v", keys)
	}
	if v, _ := m.Get("k"); v != 3 {
		return mismatch("overwritten value %d", v)
	}
	return nil
}

func probeDeleteDuringIteration(opts Options) error {
	m, err := NewMapWithOptions[string, int](opts, nil)
	if err != nil {
		return err
	}
	m.Set("x", 1)
	it := m.Keys()
	it.Next()
	m.Delete("x")
	if r := it.Next(); !r.Done {
		return mismatch("ghost yield %+v", r)
	}
	if r := it.Next(); !r.Done {
		return mismatch("exhaustion is not idempotent: %+v", r)
	}
	return nil
}

func probeCompaction(opts Options) error {
	m, err := NewMapWithOptions[int, int](opts, nil)
	if err != nil {
		return err
	}
	for i := 0; i < 10; i++ {
		m.Set(i, i)
	}
	it := m.Keys()
	it.Next()
	it.Next()
	for i := 0; i < 8; i++ {
		m.Delete(i)
	}
	if rest := Collect(it); !slices.Equal(rest, []int{8, 9}) {
		return mismatch("cursor resumed with %v", rest)
	}
	if !m.Has(9) || m.Has(3) || m.Size() != 2 {
		return mismatch("lookup after compaction")
	}
	return nil
}

func probeSetUniqueness(opts Options) error {
	s, err := NewSetWithOptions[any](opts, nil)
	if err != nil {
		return err
	}
	s.Add(1).Add(1).Add(2).Add(math.NaN()).Add(math.NaN())
	if s.Size() != 3 {
		return mismatch("size %d", s.Size())
	}
	return nil
}

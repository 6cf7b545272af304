package collections

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/phuslu/log"
)

// BackendName identifies a lookup backend registered in a [Registry].
type BackendName string

// Built-in backends.
const (
	// BackendLinear scans the backing sequence with samevalue.Zero. It is
	// the reference behaviour every other backend is probed against.
	BackendLinear BackendName = "linear"

	// BackendHashed buckets keys by their XXH3 hash.
	BackendHashed BackendName = "hashed"

	// BackendNative delegates to a gods hash map over canonical keys.
	BackendNative BackendName = "native"
)

// Registry is a thread-safe backend registry. It replaces global
// installation of container implementations: callers build a Registry,
// probe or select a backend once at start-up, and pass the Registry to
// constructors through [Options].
//
//	reg := collections.NewDefaultRegistry()
//	if _, err := reg.Select(collections.BackendHashed, collections.BackendLinear); err != nil {
//	    return err
//	}
//	m, err := collections.NewMapWithOptions[string, int](
//	    collections.Options{Registry: reg, CompactThreshold: 64}, nil)
//
// # Thread safety
//
// All Registry methods are safe for concurrent use. A [sync.RWMutex]
// serialises writes (RegisterBackend, SetDefaultBackend) while allowing
// concurrent reads.
type Registry struct {
	mu       sync.RWMutex
	backends map[BackendName]IndexFactory
	def      BackendName
	logger   *log.Logger
}

// NewRegistry creates an empty Registry with the given default backend name.
// Backends must be registered with [Registry.RegisterBackend] before a
// container can be built through the Registry.
func NewRegistry(defaultBackend BackendName) *Registry {
	return &Registry{
		backends: make(map[BackendName]IndexFactory),
		def:      defaultBackend,
	}
}

// NewDefaultRegistry creates a Registry with the three built-in backends
// registered. The default backend is [BackendLinear].
func NewDefaultRegistry() *Registry {
	r := NewRegistry(BackendLinear)
	_ = r.RegisterBackend(BackendLinear, NewLinearIndex)
	_ = r.RegisterBackend(BackendHashed, func() Index { return NewHashedIndex(0) })
	_ = r.RegisterBackend(BackendNative, NewNativeIndex)
	return r
}

// SetLogger sets the logger receiving registration, selection and probe
// events. Nil disables logging.
func (r *Registry) SetLogger(l *log.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = l
}

// RegisterBackend adds or replaces a named backend.
func (r *Registry) RegisterBackend(name BackendName, f IndexFactory) error {
	if name == "" {
		return ErrEmptyBackendName
	}
	if f == nil {
		return ErrNilBackend
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[name] = f
	debug(r.logger).Str("backend", string(name)).Msg("registered backend")
	return nil
}

// Backend returns the factory registered under name, or
// [ErrBackendNotFound].
func (r *Registry) Backend(name BackendName) (IndexFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotFound, name)
	}
	return f, nil
}

// HasBackend reports whether a backend is registered under name.
func (r *Registry) HasBackend(name BackendName) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.backends[name]
	return ok
}

// Backends returns the registered names in lexical order.
func (r *Registry) Backends() []BackendName {
	r.mu.RLock()
	names := make([]BackendName, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// SetDefaultBackend changes the backend used when [Options.Backend] is
// empty. The named backend must already be registered.
func (r *Registry) SetDefaultBackend(name BackendName) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.backends[name]; !ok {
		return fmt.Errorf("%w: %q is not registered; call RegisterBackend first",
			ErrBackendNotFound, name)
	}
	r.def = name
	return nil
}

// DefaultBackend returns the name of the current default backend.
func (r *Registry) DefaultBackend() BackendName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.def
}

// Select probes the named backends in order and makes the first one that
// passes the default. With no names it tries the current default first and
// then every other backend in lexical order. The returned error joins every
// probe failure when no backend passes.
func (r *Registry) Select(names ...BackendName) (BackendName, error) {
	if len(names) == 0 {
		def := r.DefaultBackend()
		names = append(names, def)
		for _, name := range r.Backends() {
			if name != def {
				names = append(names, name)
			}
		}
	}

	var errs []error
	for _, name := range names {
		if err := r.Probe(name); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := r.SetDefaultBackend(name); err != nil {
			return "", err
		}
		r.mu.RLock()
		l := r.logger
		r.mu.RUnlock()
		if l != nil {
			l.Info().Str("backend", string(name)).Msg("selected backend")
		}
		return name, nil
	}
	if len(errs) == 0 {
		return "", fmt.Errorf("%w: no backend to select", ErrBackendNotFound)
	}
	return "", errors.Join(errs...)
}

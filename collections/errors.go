package collections

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Map, Set, Cursor and Registry operations.
//
// Use [errors.Is] for comparisons:
//
//	m, err := collections.MapFrom[string, int](src)
//	if errors.Is(err, collections.ErrTypeConstraint) {
//	    // src produced something that is not an entry
//	}
var (
	// ErrTypeConstraint is returned when a value presented to an operation
	// has the wrong kind: a seed element that is not an entry, an entry slot
	// that is not assignable to the key or value type, or a mutation through
	// a nil container. Errors of type [*TypeError] unwrap to it.
	ErrTypeConstraint = errors.New("collections: type constraint violated")

	// ErrNotIterable is returned when a non-nil seed source is neither an
	// iterable nor an array-like value. Errors of type [*NotIterableError]
	// unwrap to it.
	ErrNotIterable = errors.New("collections: source is not iterable")

	// ErrBackendNotFound is returned by [Registry.Backend] and by the
	// constructors when the requested backend has not been registered.
	ErrBackendNotFound = errors.New("collections: backend not found")

	// ErrEmptyBackendName is returned by [Registry.RegisterBackend] when the
	// supplied name is an empty string.
	ErrEmptyBackendName = errors.New("collections: backend name must not be empty")

	// ErrNilBackend is returned by [Registry.RegisterBackend] when a nil
	// [IndexFactory] is supplied.
	ErrNilBackend = errors.New("collections: backend factory must not be nil")

	// ErrProbeFailed is returned by [Registry.Probe] and [Registry.Select]
	// when a backend does not behave like the reference linear backend.
	ErrProbeFailed = errors.New("collections: backend failed feature probe")

	// ErrInvalidOption is returned when [Options] carry a value outside the
	// allowed range.
	ErrInvalidOption = errors.New("collections: invalid option value")
)

// TypeError reports a value of the wrong kind. Op names the operation
// ("Map.Set", "MapFrom", ...), Kind the offending value's kind and Want the
// kind that was expected.
type TypeError struct {
	Op   string
	Kind string
	Want string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("collections: %s: %s is not %s", e.Op, e.Kind, e.Want)
}

// Unwrap returns [ErrTypeConstraint].
func (e *TypeError) Unwrap() error { return ErrTypeConstraint }

// NotIterableError reports a seed source that cannot be iterated.
type NotIterableError struct {
	Op   string
	Kind string
}

func (e *NotIterableError) Error() string {
	return fmt.Sprintf("collections: %s: %s is not iterable", e.Op, e.Kind)
}

// Unwrap returns [ErrNotIterable].
func (e *NotIterableError) Unwrap() error { return ErrNotIterable }

func kindOf(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}

package collections

import (
	"fmt"
	"sync"

	"github.com/phuslu/log"
)

// DefaultCompactThreshold is the number of tombstoned slots a container
// tolerates before it considers compacting its backing sequence.
const DefaultCompactThreshold = 32

// Options configures a container created with [NewMapWithOptions] or
// [NewSetWithOptions].
type Options struct {
	// Backend selects the lookup index. Empty means the registry default,
	// or the linear backend when Registry is nil as well.
	Backend BackendName

	// Registry resolves Backend. Nil means a private registry holding the
	// built-in backends.
	Registry *Registry

	// CompactThreshold is the minimum number of tombstones before the
	// backing sequence is compacted. Compaction also requires tombstones
	// to outnumber live slots. Zero disables compaction.
	CompactThreshold int

	// Logger receives debug events (compaction). Nil disables logging.
	Logger *log.Logger
}

// DefaultOptions returns the options used by [NewMap], [NewSet] and the zero
// values of [Map] and [Set]: linear backend, default compaction threshold,
// no logging.
func DefaultOptions() Options {
	return Options{CompactThreshold: DefaultCompactThreshold}
}

func (o Options) validate() error {
	if o.CompactThreshold < 0 {
		return fmt.Errorf("%w: CompactThreshold %d must be >= 0",
			ErrInvalidOption, o.CompactThreshold)
	}
	return nil
}

// builtinRegistry is never exposed, so it cannot be mutated by callers.
var builtinRegistry = sync.OnceValue(NewDefaultRegistry)

func (o Options) resolveIndex() (Index, BackendName, error) {
	if o.Backend == "" && o.Registry == nil {
		return linearIndex{}, BackendLinear, nil
	}
	reg := o.Registry
	if reg == nil {
		reg = builtinRegistry()
	}
	name := o.Backend
	if name == "" {
		name = reg.DefaultBackend()
	}
	factory, err := reg.Backend(name)
	if err != nil {
		return nil, "", err
	}
	return factory(), name, nil
}

func debug(l *log.Logger) *log.Entry {
	if l == nil {
		return nil
	}
	return l.Debug()
}

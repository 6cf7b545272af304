// Package conformance runs YAML-described operation scenarios against every
// registered collections backend and reports where a backend diverges from
// the expected results.
package conformance

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Container kinds a scenario can target.
const (
	KindMap = "map"
	KindSet = "set"
)

// Scenario is one sequence of operations on a freshly built container.
//
//	- name: overwrite keeps position
//	  kind: map
//	  seed: [[a, 1], [b, 2]]
//	  steps:
//	    - {op: set, args: [a, 3]}
//	    - {op: keys, want: [a, b]}
type Scenario struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`

	// Seed is passed to MapFrom or SetFrom. YAML sequences decode to
	// []any, so map seeds are lists of two-element lists.
	Seed any `yaml:"seed,omitempty"`

	// SeedError names the error class construction must fail with:
	// "type" or "iterable". Steps are not run when it is set.
	SeedError string `yaml:"seed_error,omitempty"`

	Steps []Step `yaml:"steps"`
}

// Step is a single operation. Which fields apply depends on Op:
//
//	set k v | add v             mutate
//	get k   (want | missing)    lookup
//	has k | delete k  (want)    boolean result
//	size (want) | clear
//	keys | values | entries     drain a fresh cursor (want: list)
//	foreach [k...]              visit all; args are deleted on the first visit
//	open kind (cursor)          open a named cursor: entries, keys or values
//	next (cursor, want | done)  advance a named cursor
//	close (cursor)
type Step struct {
	Op      string `yaml:"op"`
	Args    []any  `yaml:"args,omitempty"`
	Cursor  string `yaml:"cursor,omitempty"`
	Want    any    `yaml:"want,omitempty"`
	Missing bool   `yaml:"missing,omitempty"`
	Done    bool   `yaml:"done,omitempty"`
}

//go:embed scenarios.yaml
var defaultScenarios []byte

// Default returns the built-in scenario battery.
func Default() []Scenario {
	s, err := Load(bytes.NewReader(defaultScenarios))
	if err != nil {
		panic(fmt.Sprintf("conformance: built-in scenarios: %v", err))
	}
	return s
}

// Load decodes and validates a YAML list of scenarios.
func Load(r io.Reader) ([]Scenario, error) {
	var scenarios []Scenario
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&scenarios); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoScenarios
		}
		return nil, fmt.Errorf("decoding scenarios: %w", err)
	}
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	for i, s := range scenarios {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("scenario %d (%q): %w", i, s.Name, err)
		}
	}
	return scenarios, nil
}

// LoadFile reads scenarios from the YAML file at path.
func LoadFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (s Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScenario)
	}
	if s.Kind != KindMap && s.Kind != KindSet {
		return fmt.Errorf("%w: kind %q is not %q or %q", ErrInvalidScenario, s.Kind, KindMap, KindSet)
	}
	switch s.SeedError {
	case "", "type", "iterable":
	default:
		return fmt.Errorf("%w: seed_error %q is not \"type\" or \"iterable\"", ErrInvalidScenario, s.SeedError)
	}
	for i, st := range s.Steps {
		n, ok := arity[st.Op]
		if !ok {
			return fmt.Errorf("%w: step %d: unknown op %q", ErrInvalidScenario, i, st.Op)
		}
		if n >= 0 && len(st.Args) != n {
			return fmt.Errorf("%w: step %d: %s takes %d args, got %d", ErrInvalidScenario, i, st.Op, n, len(st.Args))
		}
		if cursorOps[st.Op] && st.Cursor == "" {
			return fmt.Errorf("%w: step %d: %s needs a cursor name", ErrInvalidScenario, i, st.Op)
		}
	}
	return nil
}

// arity is the argument count of each op; -1 means any.
var arity = map[string]int{
	"set": 2, "add": 1, "get": 1, "has": 1, "delete": 1,
	"size": 0, "clear": 0, "keys": 0, "values": 0, "entries": 0,
	"foreach": -1, "open": 1, "next": 0, "close": 0,
}

var cursorOps = map[string]bool{"open": true, "next": true, "close": true}

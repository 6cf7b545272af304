package conformance_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-es-collections/collections"
	"github.com/hasbyte1/go-es-collections/internal/conformance"
)

func TestDefaultScenarios_AllBackends(t *testing.T) {
	reg := collections.NewDefaultRegistry()
	scenarios := conformance.Default()
	require.NotEmpty(t, scenarios)

	for _, threshold := range []int{2, collections.DefaultCompactThreshold} {
		results, err := conformance.Run(context.Background(), reg, scenarios, conformance.RunOptions{
			CompactThreshold: threshold,
		})
		require.NoError(t, err)
		require.Len(t, results, len(reg.Backends())*len(scenarios))
		for _, r := range results {
			require.NoError(t, r.Err, "backend %s, threshold %d", r.Backend, threshold)
		}
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown kind", "- {name: x, kind: list}"},
		{"missing name", "- {kind: map}"},
		{"unknown op", "- {name: x, kind: map, steps: [{op: push}]}"},
		{"arity", "- {name: x, kind: map, steps: [{op: set, args: [a]}]}"},
		{"cursor name", "- {name: x, kind: map, steps: [{op: next}]}"},
		{"seed error class", "- {name: x, kind: map, seed_error: boom}"},
		{"unknown field", "- {name: x, kind: map, colour: red}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := conformance.Load(strings.NewReader(tt.doc))
			require.Error(t, err)
		})
	}

	_, err := conformance.Load(strings.NewReader(""))
	require.ErrorIs(t, err, conformance.ErrNoScenarios)
	_, err = conformance.Load(strings.NewReader("[]"))
	require.ErrorIs(t, err, conformance.ErrNoScenarios)
}

func TestExecute_ReportsMismatch(t *testing.T) {
	scenarios, err := conformance.Load(strings.NewReader(`
- name: wrong size
  kind: set
  seed: [1, 2]
  steps:
    - {op: add, args: [3]}
    - {op: size, want: 2}
`))
	require.NoError(t, err)

	err = conformance.Execute(scenarios[0], collections.DefaultOptions())
	require.ErrorIs(t, err, conformance.ErrMismatch)
	var se *conformance.StepError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 1, se.Step)
	require.Equal(t, "size", se.Op)
}

func TestExecute_UnexpectedSeedError(t *testing.T) {
	scenarios, err := conformance.Load(strings.NewReader(`
- name: bad seed
  kind: map
  seed: [[1]]
`))
	require.NoError(t, err)
	err = conformance.Execute(scenarios[0], collections.DefaultOptions())
	require.ErrorIs(t, err, collections.ErrTypeConstraint)

	scenarios[0].SeedError = "iterable"
	err = conformance.Execute(scenarios[0], collections.DefaultOptions())
	require.ErrorIs(t, err, conformance.ErrMismatch)
}

// brokenIndex never finds anything, so every key is appended again.
type brokenIndex struct{}

func (brokenIndex) Find(any, collections.Slots) (int, bool) { return -1, false }
func (brokenIndex) Insert(any, int)                         {}
func (brokenIndex) Remove(any, int)                         {}
func (brokenIndex) Rebuild(collections.Slots)               {}
func (brokenIndex) Reset()                                  {}

func TestRun_FlagsBrokenBackend(t *testing.T) {
	reg := collections.NewDefaultRegistry()
	require.NoError(t, reg.RegisterBackend("broken", func() collections.Index { return brokenIndex{} }))

	results, err := conformance.Run(context.Background(), reg, conformance.Default(), conformance.RunOptions{
		Backends: []collections.BackendName{collections.BackendLinear, "broken"},
	})
	require.NoError(t, err)

	summary := conformance.Summarize(results)
	require.Len(t, summary, 2)
	require.Equal(t, collections.BackendLinear, summary[0].Backend)
	require.Zero(t, summary[0].Failed)
	require.Equal(t, collections.BackendName("broken"), summary[1].Backend)
	require.NotZero(t, summary[1].Failed)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := conformance.Run(ctx, collections.NewDefaultRegistry(), conformance.Default(), conformance.RunOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

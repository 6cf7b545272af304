package conformance

import (
	"context"
	"fmt"
	"time"

	"github.com/phuslu/log"
	"golang.org/x/sync/errgroup"

	"github.com/hasbyte1/go-es-collections/collections"
)

// DefaultConcurrency is the number of backends run at once when
// RunOptions.Concurrency is zero.
const DefaultConcurrency = 4

// Result is the outcome of one scenario on one backend.
type Result struct {
	Backend  collections.BackendName
	Scenario string
	Err      error
	Elapsed  time.Duration
}

// Passed reports whether the scenario succeeded.
func (r Result) Passed() bool { return r.Err == nil }

// RunOptions configures Run.
type RunOptions struct {
	// Backends to run. Empty means every backend in the registry.
	Backends []collections.BackendName

	// CompactThreshold is passed to every container. Zero disables
	// compaction; a small value makes it happen inside short scenarios.
	CompactThreshold int

	Concurrency int
	Logger      *log.Logger
}

// Run executes every scenario against every selected backend. Backends run
// concurrently; the scenarios of one backend run in order. Results are
// grouped by backend in the order of opts.Backends, then by scenario. The
// returned error is non-nil only when ctx is done before all results are in.
func Run(ctx context.Context, reg *collections.Registry, scenarios []Scenario, opts RunOptions) ([]Result, error) {
	backends := opts.Backends
	if len(backends) == 0 {
		backends = reg.Backends()
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(backends)*len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for bi, backend := range backends {
		g.Go(func() error {
			copts := collections.Options{
				Backend:          backend,
				Registry:         reg,
				CompactThreshold: opts.CompactThreshold,
				Logger:           opts.Logger,
			}
			for si, s := range scenarios {
				if err := ctx.Err(); err != nil {
					return err
				}
				start := time.Now()
				err := runOne(s, copts)
				r := Result{Backend: backend, Scenario: s.Name, Err: err, Elapsed: time.Since(start)}
				results[bi*len(scenarios)+si] = r
				logResult(opts.Logger, r)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runOne executes s, turning a panic inside a backend into a failure.
func runOne(s Scenario, opts collections.Options) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &StepError{Scenario: s.Name, Step: -1, Err: panicError{p}}
		}
	}()
	return Execute(s, opts)
}

type panicError struct{ v any }

func (p panicError) Error() string { return fmt.Sprintf("panic: %v", p.v) }

func logResult(l *log.Logger, r Result) {
	if l == nil {
		return
	}
	if r.Err != nil {
		l.Warn().Str("backend", string(r.Backend)).Str("scenario", r.Scenario).Err(r.Err).Msg("scenario failed")
		return
	}
	l.Debug().Str("backend", string(r.Backend)).Str("scenario", r.Scenario).Dur("elapsed", r.Elapsed).Msg("scenario passed")
}

// Summary counts passes and failures per backend, in first-seen order.
type Summary struct {
	Backend collections.BackendName
	Passed  int
	Failed  int
}

// Summarize groups results by backend.
func Summarize(results []Result) []Summary {
	var out []Summary
	idx := collections.NewMap[collections.BackendName, int]()
	for _, r := range results {
		i, ok := idx.Get(r.Backend)
		if !ok {
			i = len(out)
			idx.Set(r.Backend, i)
			out = append(out, Summary{Backend: r.Backend})
		}
		if r.Passed() {
			out[i].Passed++
		} else {
			out[i].Failed++
		}
	}
	return out
}

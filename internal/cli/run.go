package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-es-collections/collections"
	"github.com/hasbyte1/go-es-collections/internal/conformance"
)

// ErrScenarioFailures is returned by the run command when at least one
// scenario failed on at least one backend.
var ErrScenarioFailures = errors.New("one or more scenarios failed")

func newRunCmd() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [SCENARIOS.yaml]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Run conformance scenarios against backends",
		Long: "Run a YAML scenario file, or the built-in battery when no file is\n" +
			"given, against every registered backend and print a summary.",
		RunE: RunHandler,
	}
	runCmd.Flags().StringSliceP("backend", "b", nil, "Backends to run (default all)")
	runCmd.Flags().Int("compact-threshold", collections.DefaultCompactThreshold, "Tombstones tolerated before compaction (0 disables)")
	runCmd.Flags().Int("concurrency", conformance.DefaultConcurrency, "Backends run at once")
	return runCmd
}

// RunHandler loads scenarios, runs them and prints a per-backend summary
// followed by one row per failure.
func RunHandler(cmd *cobra.Command, args []string) error {
	scenarios := conformance.Default()
	if len(args) > 0 {
		var err error
		if scenarios, err = conformance.LoadFile(args[0]); err != nil {
			return err
		}
	}

	backends, _ := cmd.Flags().GetStringSlice("backend")
	threshold, _ := cmd.Flags().GetInt("compact-threshold")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	if threshold < 0 {
		return fmt.Errorf("%w: --compact-threshold %d must be >= 0", collections.ErrInvalidOption, threshold)
	}

	reg := newRegistry(cmd)
	names := toNames(backends)
	for _, name := range names {
		if _, err := reg.Backend(name); err != nil {
			return err
		}
	}

	results, err := conformance.Run(cmd.Context(), reg, scenarios, conformance.RunOptions{
		Backends:         names,
		CompactThreshold: threshold,
		Concurrency:      concurrency,
		Logger:           newLogger(cmd),
	})
	if err != nil {
		return err
	}

	var summary [][]string
	for _, s := range conformance.Summarize(results) {
		summary = append(summary, []string{string(s.Backend), strconv.Itoa(s.Passed), strconv.Itoa(s.Failed)})
	}
	out := cmd.OutOrStdout()
	renderTable(out, []string{"BACKEND", "PASSED", "FAILED"}, summary)

	var failures [][]string
	for _, r := range results {
		if !r.Passed() {
			failures = append(failures, []string{string(r.Backend), r.Scenario, r.Err.Error()})
		}
	}
	if len(failures) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	renderTable(out, []string{"BACKEND", "SCENARIO", "ERROR"}, failures)
	return ErrScenarioFailures
}

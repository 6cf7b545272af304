package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrProbeFailures is returned by the probe command when at least one
// backend failed.
var ErrProbeFailures = errors.New("one or more backends failed the probe")

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Args:  cobra.NoArgs,
		Short: "List registered backends",
		RunE:  BackendsHandler,
	}
}

// BackendsHandler prints every registered backend and marks the default.
func BackendsHandler(cmd *cobra.Command, args []string) error {
	reg := newRegistry(cmd)
	def := reg.DefaultBackend()

	var data [][]string
	for _, name := range reg.Backends() {
		mark := ""
		if name == def {
			mark = "*"
		}
		data = append(data, []string{string(name), mark})
	}
	renderTable(cmd.OutOrStdout(), []string{"NAME", "DEFAULT"}, data)
	return nil
}

func newProbeCmd() *cobra.Command {
	probeCmd := &cobra.Command{
		Use:   "probe [BACKEND...]",
		Short: "Check backends against the reference behaviour",
		Long: "Run the feature probe against the named backends, or every registered\n" +
			"backend when none is named. With --select, make the first passing\n" +
			"backend the default and print it.",
		RunE: ProbeHandler,
	}
	probeCmd.Flags().Bool("select", false, "Select the first passing backend")
	return probeCmd
}

// ProbeHandler probes backends and prints one row per backend.
func ProbeHandler(cmd *cobra.Command, args []string) error {
	reg := newRegistry(cmd)
	names := toNames(args)
	if len(names) == 0 {
		names = reg.Backends()
	}

	if sel, _ := cmd.Flags().GetBool("select"); sel {
		name, err := reg.Select(names...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	}

	var (
		data   [][]string
		failed bool
	)
	for _, name := range names {
		status, detail := "ok", ""
		if err := reg.Probe(name); err != nil {
			status, detail, failed = "FAIL", err.Error(), true
		}
		data = append(data, []string{string(name), status, detail})
	}
	renderTable(cmd.OutOrStdout(), []string{"BACKEND", "STATUS", "DETAIL"}, data)
	if failed {
		return ErrProbeFailures
	}
	return nil
}

// Package cli implements the escoll command: it lists, probes and exercises
// the collections backends from the command line.
package cli

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-es-collections/collections"
)

// NewCLI returns the root command. Each invocation builds its own
// collections.Registry with the built-in backends.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "escoll",
		Short: "Probe and exercise ordered map and set backends",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug events to stderr")

	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(
		newBackendsCmd(),
		newProbeCmd(),
		newRunCmd(),
	)
	return rootCmd
}

func newLogger(cmd *cobra.Command) *log.Logger {
	level := log.InfoLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = log.DebugLevel
	}
	return &log.Logger{
		Level:  level,
		Writer: &log.IOWriter{Writer: cmd.ErrOrStderr()},
	}
}

func newRegistry(cmd *cobra.Command) *collections.Registry {
	reg := collections.NewDefaultRegistry()
	reg.SetLogger(newLogger(cmd))
	return reg
}

func renderTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

func toNames(args []string) []collections.BackendName {
	names := make([]collections.BackendName, len(args))
	for i, a := range args {
		names[i] = collections.BackendName(a)
	}
	return names
}

// Package cli implements the hampath command-line interface.
//
// It provides three commands over the hampath library packages:
//   - find:   load a graph file and print a Hamiltonian path, if any
//   - render: draw the graph (and the found path) to SVG or PNG
//   - demo:   run built-in example graphs without an input file
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are created with charmbracelet/log and passed through context.Context
// so command bodies never reach for a global.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// version is injected via ldflags at build time; "dev" otherwise.
var version = "dev"

// SetVersion overrides the version string reported by --version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the hampath CLI and returns an error if any command
// fails. This is the entry point used by cmd/hampath.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:   "hampath",
		Short: "hampath finds Hamiltonian paths via backtracking",
		Long: `hampath finds a Hamiltonian path — a simple path visiting every vertex
exactly once — in a directed or undirected graph, using exhaustive
backtracking with a degree-based ordering heuristic.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newFindCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newDemoCmd())

	return root.ExecuteContext(context.Background())
}

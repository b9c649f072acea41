package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hampath/core"
	"github.com/katalvlaran/hampath/gen"
	"github.com/katalvlaran/hampath/hamilton"
)

// newDemoCmd creates the demo command: two built-in graphs, one with a
// Hamiltonian path and one without, searched back to back.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run built-in example graphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Example 1: undirected 5-cycle; any rotation is a path.
			g1, err := gen.Cycle(5)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Example 1: undirected 5-cycle (path exists)")
			if err := runDemo(cmd, g1); err != nil {
				return err
			}

			// Example 2: directed graph with a 2-cycle between 0 and 1;
			// vertices 2 and 3 are unreachable.
			g2 := core.NewGraph(4, core.WithDirected(true))
			g2.AddEdge(0, 1)
			g2.AddEdge(1, 0)
			fmt.Fprintln(out, "Example 2: directed graph with isolated vertices (no path)")

			return runDemo(cmd, g2)
		},
	}
}

// runDemo searches g and prints the outcome in the find command's
// output format.
func runDemo(cmd *cobra.Command, g *core.Graph) error {
	res, err := hamilton.Find(g, hamilton.WithContext(cmd.Context()))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !res.Found {
		fmt.Fprintln(out, noPathMessage)
		return nil
	}
	fmt.Fprintln(out, formatPath(res.Path))

	return nil
}

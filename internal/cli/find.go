package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hampath/core"
	"github.com/katalvlaran/hampath/graphfile"
	"github.com/katalvlaran/hampath/hamilton"
)

// noPathMessage is the exact line printed when no Hamiltonian path
// exists; scripts grep for it, so it is part of the output contract.
const noPathMessage = "NO HAMILTONIAN PATH"

var errDirectedness = errors.New("specify exactly one of --directed or --undirected")

// directedness maps the flag pair to a single boolean, rejecting both
// set and neither set.
func directedness(directed, undirected bool) (bool, error) {
	if directed == undirected {
		return false, errDirectedness
	}

	return directed, nil
}

// formatPath renders a path as space-joined vertex indices.
func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}

// newFindCmd creates the find command.
func newFindCmd() *cobra.Command {
	var directed, undirected bool

	cmd := &cobra.Command{
		Use:   "find <graph-file>",
		Short: "Find a Hamiltonian path in a graph file",
		Long: `Find a Hamiltonian path in a graph described by a text file.

The file starts with a header line "n m" (vertex count, edge count)
followed by m lines "u v", one per edge. Exactly one of --directed or
--undirected selects how edges are interpreted.

On success the path is printed as space-separated vertex indices; when
no path exists the command prints "` + noPathMessage + `" and still
exits zero — an absent path is an answer, not a failure.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			isDirected, err := directedness(directed, undirected)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())

			g, err := graphfile.ReadFile(args[0], core.WithDirected(isDirected))
			if err != nil {
				return err
			}
			logger.Debug("graph loaded",
				"file", args[0],
				"vertices", g.VertexCount(),
				"edges", g.EdgeCount(),
				"directed", g.Directed())

			res, err := hamilton.Find(g, hamilton.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			if !res.Found {
				fmt.Fprintln(cmd.OutOrStdout(), noPathMessage)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatPath(res.Path))

			return nil
		},
	}

	cmd.Flags().BoolVar(&directed, "directed", false, "treat edges as one-way")
	cmd.Flags().BoolVar(&undirected, "undirected", false, "treat edges as two-way")

	return cmd
}

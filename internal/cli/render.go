package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hampath/core"
	"github.com/katalvlaran/hampath/dot"
	"github.com/katalvlaran/hampath/graphfile"
	"github.com/katalvlaran/hampath/hamilton"
)

// Output formats accepted by render --format.
const (
	formatSVG = "svg"
	formatPNG = "png"
)

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	var (
		directed, undirected bool
		output               string
		format               string
	)

	cmd := &cobra.Command{
		Use:   "render <graph-file>",
		Short: "Render a graph with its Hamiltonian path highlighted",
		Long: `Render a graph file to an image via Graphviz.

The Hamiltonian path search runs first; when a path is found its
vertices and edges are highlighted in red, otherwise the bare graph is
drawn.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			isDirected, err := directedness(directed, undirected)
			if err != nil {
				return err
			}
			if format != formatSVG && format != formatPNG {
				return fmt.Errorf("unsupported format %q (want %s or %s)", format, formatSVG, formatPNG)
			}

			logger := loggerFromContext(cmd.Context())

			g, err := graphfile.ReadFile(args[0], core.WithDirected(isDirected))
			if err != nil {
				return err
			}

			res, err := hamilton.Find(g, hamilton.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			if res.Found {
				logger.Debug("highlighting path", "path", formatPath(res.Path))
			} else {
				logger.Info("no hamiltonian path; rendering bare graph")
			}

			dotText := dot.ToDOT(g, res.Path)
			var img []byte
			if format == formatPNG {
				img, err = dot.RenderPNG(dotText)
			} else {
				img, err = dot.RenderSVG(dotText)
			}
			if err != nil {
				return err
			}

			if output == "" {
				output = "graph." + format
			}
			if err := os.WriteFile(output, img, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger.Info("rendered", "output", output, "bytes", len(img))

			return nil
		},
	}

	cmd.Flags().BoolVar(&directed, "directed", false, "treat edges as one-way")
	cmd.Flags().BoolVar(&undirected, "undirected", false, "treat edges as two-way")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default graph.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: svg or png")

	return cmd
}

// Command hampath finds Hamiltonian paths in graph files and renders
// them via Graphviz. See `hampath --help`.
package main

import (
	"os"

	"github.com/katalvlaran/hampath/internal/cli"
)

// version is injected via -ldflags "-X main.version=...".
var version string

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

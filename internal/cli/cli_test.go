package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectedness(t *testing.T) {
	d, err := directedness(true, false)
	require.NoError(t, err)
	assert.True(t, d)

	d, err = directedness(false, true)
	require.NoError(t, err)
	assert.False(t, d)

	_, err = directedness(true, true)
	assert.ErrorIs(t, err, errDirectedness)

	_, err = directedness(false, false)
	assert.ErrorIs(t, err, errDirectedness)
}

func TestFormatPath(t *testing.T) {
	assert.Equal(t, "0 1 2", formatPath([]int{0, 1, 2}))
	assert.Equal(t, "", formatPath(nil))
}

// writeGraph drops a graph file into a temp dir and returns its path.
func writeGraph(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestFindCmd_PrintsPath(t *testing.T) {
	file := writeGraph(t, "3 2\n0 1\n1 2\n")

	cmd := newFindCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--directed", file})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "0 1 2\n", out.String())
}

func TestFindCmd_NoPathExitsZero(t *testing.T) {
	file := writeGraph(t, "3 1\n0 1\n")

	cmd := newFindCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--directed", file})

	require.NoError(t, cmd.Execute(), "an absent path is an answer, not a failure")
	assert.Equal(t, noPathMessage+"\n", out.String())
}

func TestFindCmd_RejectsConflictingFlags(t *testing.T) {
	file := writeGraph(t, "2 1\n0 1\n")

	cmd := newFindCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--directed", "--undirected", file})

	assert.ErrorIs(t, cmd.Execute(), errDirectedness)
}

func TestFindCmd_BadFileSurfacesError(t *testing.T) {
	file := writeGraph(t, "not a header\n")

	cmd := newFindCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--undirected", file})

	assert.Error(t, cmd.Execute())
}

func TestDemoCmd_Output(t *testing.T) {
	cmd := newDemoCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	assert.Equal(t,
		"Example 1: undirected 5-cycle (path exists)\n"+
			"0 1 2 3 4\n"+
			"Example 2: directed graph with isolated vertices (no path)\n"+
			noPathMessage+"\n",
		out.String())
}

func TestRenderCmd_RejectsUnknownFormat(t *testing.T) {
	file := writeGraph(t, "2 1\n0 1\n")

	cmd := newRenderCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--undirected", "--format", "gif", file})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestRenderCmd_WritesSVG(t *testing.T) {
	file := writeGraph(t, "3 2\n0 1\n1 2\n")
	output := filepath.Join(t.TempDir(), "out.svg")

	cmd := newRenderCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"--undirected", "-o", output, file})

	require.NoError(t, cmd.Execute())
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

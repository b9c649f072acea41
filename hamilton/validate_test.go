package hamilton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hampath/core"
	"github.com/katalvlaran/hampath/hamilton"
)

// buildPath4 creates the undirected path 0-1-2-3.
func buildPath4() *core.Graph {
	g := core.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	return g
}

func TestIsHamiltonianPath_NilGraph(t *testing.T) {
	assert.False(t, hamilton.IsHamiltonianPath(nil, []int{0}))
}

func TestIsHamiltonianPath_Valid(t *testing.T) {
	g := buildPath4()
	assert.True(t, hamilton.IsHamiltonianPath(g, []int{0, 1, 2, 3}))
	assert.True(t, hamilton.IsHamiltonianPath(g, []int{3, 2, 1, 0}),
		"undirected edges are traversable both ways")
}

func TestIsHamiltonianPath_EmptyGraph(t *testing.T) {
	g := core.NewGraph(0)
	assert.True(t, hamilton.IsHamiltonianPath(g, []int{}))
	assert.True(t, hamilton.IsHamiltonianPath(g, nil))
}

func TestIsHamiltonianPath_WrongLength(t *testing.T) {
	g := buildPath4()
	assert.False(t, hamilton.IsHamiltonianPath(g, []int{0, 1, 2}))
	assert.False(t, hamilton.IsHamiltonianPath(g, []int{0, 1, 2, 3, 3}))
	assert.False(t, hamilton.IsHamiltonianPath(g, nil))
}

func TestIsHamiltonianPath_RepeatedVertex(t *testing.T) {
	assert.False(t, hamilton.IsHamiltonianPath(buildPath4(), []int{0, 1, 2, 1}))
}

func TestIsHamiltonianPath_OutOfRangeVertex(t *testing.T) {
	g := buildPath4()
	assert.False(t, hamilton.IsHamiltonianPath(g, []int{0, 1, 2, 4}))
	assert.False(t, hamilton.IsHamiltonianPath(g, []int{-1, 1, 2, 3}))
}

func TestIsHamiltonianPath_MissingEdge(t *testing.T) {
	// Candidate [0,2,1,3] fails: there is no edge 0-2.
	assert.False(t, hamilton.IsHamiltonianPath(buildPath4(), []int{0, 2, 1, 3}))
}

func TestIsHamiltonianPath_DirectionSensitive(t *testing.T) {
	g := core.NewGraph(3, core.WithDirected(true))
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	assert.True(t, hamilton.IsHamiltonianPath(g, []int{0, 1, 2}))
	assert.False(t, hamilton.IsHamiltonianPath(g, []int{2, 1, 0}),
		"only the u→v direction is installed in a directed graph")
}

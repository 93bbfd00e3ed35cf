package graph

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nockbuild/hoonscan/depgraph"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGraph() depgraph.DependencyGraph {
	return depgraph.DependencyGraph{
		"a/x":  {"a/y", "zeke", "zeke"},
		"a/y":  {},
		"zeke": {},
	}
}

func TestRenderDOT(t *testing.T) {
	output, err := renderDOT(testGraph())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, t.Name(), []byte(output))
}

func TestRenderDOT_CollapsesDuplicateEdges(t *testing.T) {
	output, err := renderDOT(testGraph())
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(output, `"a/x" -> "zeke";`))
}

func TestRenderMermaid(t *testing.T) {
	output, err := renderMermaid(testGraph())
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, t.Name(), []byte(output))
}

func TestRenderJSON(t *testing.T) {
	output, err := renderJSON(testGraph())
	require.NoError(t, err)

	var decoded map[string][]string
	require.NoError(t, json.Unmarshal([]byte(output), &decoded))
	assert.Equal(t, []string{"a/y", "zeke", "zeke"}, decoded["a/x"])
	assert.Empty(t, decoded["zeke"])
}

package depgraph

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/nockbuild/hoonscan/hoon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanFixture(t *testing.T, rootName string, tree map[string]string) (FileMap, DependencyGraph, []Diagnostic) {
	t.Helper()
	root := filepath.Join(t.TempDir(), rootName)
	writeFixtureTree(t, root, tree)

	files, graph, diags, err := Scan(root, hoon.FilesystemContentReader())
	require.NoError(t, err)
	return files, graph, diags
}

func TestBuildDependencyGraph_SameDirectoryRule(t *testing.T) {
	_, graph, diags := scanFixture(t, "hoon", map[string]string{
		"a/x.hoon": "/+  y\n",
		"a/y.hoon": "",
	})

	assert.Empty(t, diags)
	assert.Equal(t, []PackageKey{"a/y"}, graph["a/x"])
}

func TestBuildDependencyGraph_PathImportRule(t *testing.T) {
	_, graph, diags := scanFixture(t, "hoon", map[string]string{
		"root.hoon": "/=  c  /b/c\n",
		"b/c.hoon":  "",
	})

	assert.Empty(t, diags)
	assert.Equal(t, []PackageKey{"b/c"}, graph["root"])
}

func TestBuildDependencyGraph_WorkspacePrefixStripped(t *testing.T) {
	// A path expressed relative to the workspace carries the scan root's
	// own name; it must be stripped before lookup.
	_, graph, diags := scanFixture(t, "common", map[string]string{
		"root.hoon":          "/=  compute  /common/table/compute\n",
		"table/compute.hoon": "",
	})

	assert.Empty(t, diags)
	assert.Equal(t, []PackageKey{"table/compute"}, graph["root"])
}

func TestBuildDependencyGraph_TotalMapping(t *testing.T) {
	files, graph, _ := scanFixture(t, "hoon", map[string]string{
		"a/x.hoon":  "/+  y\n",
		"a/y.hoon":  "",
		"lone.hoon": "",
	})

	assert.Len(t, graph, len(files))
	require.Contains(t, graph, PackageKey("a/y"))
	assert.Empty(t, graph["a/y"])
	require.Contains(t, graph, PackageKey("lone"))
	assert.Empty(t, graph["lone"])
}

func TestBuildDependencyGraph_DuplicateImportsPreserved(t *testing.T) {
	_, graph, _ := scanFixture(t, "hoon", map[string]string{
		"x.hoon": "/+  y\n/-  y\n",
		"y.hoon": "",
	})

	assert.Equal(t, []PackageKey{"y", "y"}, graph["x"])
}

func TestBuildDependencyGraph_UnresolvedTokenDropped(t *testing.T) {
	_, graph, diags := scanFixture(t, "hoon", map[string]string{
		"x.hoon": "/+  missing, y\n",
		"y.hoon": "",
	})

	// The unresolved token produces no edge but the rest of the file's
	// tokens are still processed.
	assert.Equal(t, []PackageKey{"y"}, graph["x"])
	require.Len(t, diags, 1)
	assert.Equal(t, DiagUnresolved, diags[0].Category)
	assert.Contains(t, diags[0].Message, "missing")
}

func TestBuildDependencyGraph_UnreadableFileContributesNothing(t *testing.T) {
	files := FileMap{
		"x": {AbsPath: "/fixture/x.hoon", FileName: "x.hoon"},
		"y": {AbsPath: "/fixture/y.hoon", FileName: "y.hoon"},
	}
	reader := func(path string) ([]byte, error) {
		if path == "/fixture/x.hoon" {
			return nil, fmt.Errorf("permission denied")
		}
		return []byte("/+  x\n"), nil
	}

	graph, diags := BuildDependencyGraph(files, "hoon", reader)

	require.Len(t, diags, 1)
	assert.Equal(t, DiagUnreadableFile, diags[0].Category)
	assert.Empty(t, graph["x"])
	assert.Equal(t, []PackageKey{"x"}, graph["y"])
}

func TestBuildDependencyGraph_NoDanglingEdges(t *testing.T) {
	files, graph, _ := scanFixture(t, "hoon", map[string]string{
		"a/x.hoon":      "/+  y, missing, zeke\n",
		"a/y.hoon":      "/=  x  /a/x\n",
		"lib/zeke.hoon": "",
	})

	require.NoError(t, graph.Validate(files))
}

func TestBuildDependencyGraph_DiagnosticOrderIsStable(t *testing.T) {
	tree := map[string]string{
		"a.hoon": "/+  missing-one\n",
		"b.hoon": "/+  missing-two\n",
	}

	_, _, first := scanFixture(t, "hoon", tree)
	_, _, second := scanFixture(t, "hoon", tree)

	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Contains(t, first[0].Message, "missing-one")
	assert.Contains(t, first[1].Message, "missing-two")
}

func TestValidate_RejectsDanglingEdge(t *testing.T) {
	files := FileMap{"x": {FileName: "x.hoon"}}
	graph := DependencyGraph{"x": {"ghost"}}

	err := graph.Validate(files)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestScan_MissingRootFails(t *testing.T) {
	_, _, _, err := Scan(filepath.Join(t.TempDir(), "nope"), hoon.FilesystemContentReader())

	assert.Error(t, err)
}

func TestScan_ReadsFromProvidedReader(t *testing.T) {
	root := filepath.Join(t.TempDir(), "hoon")
	writeFixtureTree(t, root, map[string]string{
		"x.hoon": "",
		"y.hoon": "",
	})

	var readPaths []string
	reader := func(path string) ([]byte, error) {
		readPaths = append(readPaths, path)
		return os.ReadFile(path)
	}

	_, _, _, err := Scan(root, reader)

	require.NoError(t, err)
	assert.Len(t, readPaths, 2)
}

package registry

import (
	"testing"

	"github.com/nockbuild/hoonscan/depgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorkspace() Workspace {
	return Workspace{
		Name:        "nockchain",
		GitURL:      "https://github.com/nockchain/nockchain",
		Ref:         "a19ad4dc",
		Description: "Nockchain standard library",
		RootPath:    "hoon",
	}
}

func TestBuild_PackagesSortedAndQualified(t *testing.T) {
	files := depgraph.FileMap{
		"wallet/app": {InstallPath: "hoon/wallet", FileName: "app.hoon"},
		"zeke":       {InstallPath: "hoon", FileName: "zeke.hoon"},
	}
	graph := depgraph.DependencyGraph{
		"wallet/app": {"zeke"},
		"zeke":       {},
	}

	manifest := Build(testWorkspace(), files, graph)

	require.Len(t, manifest.Packages, 2)
	assert.Equal(t, "nockchain/wallet/app", manifest.Packages[0].Name)
	assert.Equal(t, "nockchain/zeke", manifest.Packages[1].Name)

	app := manifest.Packages[0]
	assert.Equal(t, "nockchain", app.Workspace)
	assert.Equal(t, "hoon/wallet", app.Path)
	assert.Equal(t, "app.hoon", app.File)
	assert.Equal(t, []string{"nockchain/zeke"}, app.Dependencies)

	assert.Empty(t, manifest.Packages[1].Dependencies)
	assert.NotNil(t, manifest.Packages[1].Dependencies)
}

func TestBuild_ZtdVolumeAliases(t *testing.T) {
	files := depgraph.FileMap{
		"common/ztd/one":   {InstallPath: "hoon/common/ztd", FileName: "one.hoon"},
		"common/ztd/eight": {InstallPath: "hoon/common/ztd", FileName: "eight.hoon"},
		"common/ztd/three": {InstallPath: "hoon/common/ztd", FileName: "three.hoon"},
		"other/one":        {InstallPath: "hoon/other", FileName: "one.hoon"},
	}
	graph := depgraph.DependencyGraph{}

	manifest := Build(testWorkspace(), files, graph)

	// "three" is not an aliased volume, and "other/one" is outside the ztd
	// prefix.
	assert.Equal(t, []Alias{
		{Name: "nockchain/eight", Target: "nockchain/common/ztd/eight"},
		{Name: "nockchain/one", Target: "nockchain/common/ztd/one"},
	}, manifest.Aliases)
}

func TestBuild_StandardAliasesOnlyWhenDiscovered(t *testing.T) {
	files := depgraph.FileMap{
		"common/zeke": {InstallPath: "hoon/common", FileName: "zeke.hoon"},
		"common/zose": {InstallPath: "hoon/common", FileName: "zose.hoon"},
	}

	manifest := Build(testWorkspace(), files, depgraph.DependencyGraph{})

	// zoon is absent from the scan, so no alias is generated for it.
	assert.Equal(t, []Alias{
		{Name: "nockchain/zeke", Target: "nockchain/common/zeke"},
		{Name: "nockchain/zose", Target: "nockchain/common/zose"},
	}, manifest.Aliases)
}

func TestBuild_NoAliasesForPlainTree(t *testing.T) {
	files := depgraph.FileMap{
		"lib/util": {InstallPath: "hoon/lib", FileName: "util.hoon"},
	}

	manifest := Build(testWorkspace(), files, depgraph.DependencyGraph{})

	assert.Empty(t, manifest.Aliases)
}

func TestBuild_RoundTrip(t *testing.T) {
	// Every fully-qualified dependency name must correspond to a package
	// record in the same manifest.
	files := depgraph.FileMap{
		"a/x":  {InstallPath: "hoon/a", FileName: "x.hoon"},
		"a/y":  {InstallPath: "hoon/a", FileName: "y.hoon"},
		"zeke": {InstallPath: "hoon", FileName: "zeke.hoon"},
	}
	graph := depgraph.DependencyGraph{
		"a/x":  {"a/y", "zeke"},
		"a/y":  {"zeke"},
		"zeke": {},
	}

	manifest := Build(testWorkspace(), files, graph)

	names := make(map[string]bool, len(manifest.Packages))
	for _, pkg := range manifest.Packages {
		names[pkg.Name] = true
	}
	for _, pkg := range manifest.Packages {
		for _, dep := range pkg.Dependencies {
			assert.True(t, names[dep], "dependency %s has no package record", dep)
		}
	}
}

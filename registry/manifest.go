package registry

import (
	"strings"

	"github.com/nockbuild/hoonscan/depgraph"
)

// Workspace describes the scanned workspace as recorded in the manifest.
type Workspace struct {
	Name        string `json:"name"`
	GitURL      string `json:"git_url"`
	Ref         string `json:"ref"`
	Description string `json:"description"`
	RootPath    string `json:"root_path"`
}

// Package is one manifest record per discovered file.
type Package struct {
	Name         string   `json:"name"`
	Workspace    string   `json:"workspace"`
	Path         string   `json:"path"`
	File         string   `json:"file"`
	Dependencies []string `json:"dependencies"`
}

// Alias maps a short name to a fully-qualified package name.
type Alias struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

// Manifest is the full registry document emitted for one scan.
type Manifest struct {
	Workspace Workspace `json:"workspace"`
	Packages  []Package `json:"packages"`
	Aliases   []Alias   `json:"aliases,omitempty"`
}

// The ztd core library ships as numbered volumes under common/ztd; each one
// gets a short alias so packages can depend on the bare volume name.
const ztdAliasPrefix = "common/ztd/"

var ztdAliasStems = map[string]bool{
	"one":   true,
	"two":   true,
	"four":  true,
	"five":  true,
	"six":   true,
	"seven": true,
	"eight": true,
}

// Fixed top-level short names for the standard library entry points. The
// alias is only emitted when the target package was actually discovered.
var standardAliases = []Alias{
	{Name: "zeke", Target: "common/zeke"},
	{Name: "zoon", Target: "common/zoon"},
	{Name: "zose", Target: "common/zose"},
}

// Build assembles a manifest from the discovered files and their dependency
// graph. Packages are sorted by key so output is stable across runs.
func Build(ws Workspace, files depgraph.FileMap, graph depgraph.DependencyGraph) Manifest {
	manifest := Manifest{
		Workspace: ws,
		Packages:  make([]Package, 0, len(files)),
	}

	for _, key := range files.SortedKeys() {
		record := files[key]

		deps := make([]string, 0, len(graph[key]))
		for _, dep := range graph[key] {
			deps = append(deps, qualify(ws.Name, dep))
		}

		manifest.Packages = append(manifest.Packages, Package{
			Name:         qualify(ws.Name, key),
			Workspace:    ws.Name,
			Path:         record.InstallPath,
			File:         record.FileName,
			Dependencies: deps,
		})

		if stem := key.Base(); strings.HasPrefix(string(key), ztdAliasPrefix) && ztdAliasStems[stem] {
			manifest.Aliases = append(manifest.Aliases, Alias{
				Name:   ws.Name + "/" + stem,
				Target: qualify(ws.Name, key),
			})
		}
	}

	for _, alias := range standardAliases {
		if _, ok := files[depgraph.PackageKey(alias.Target)]; !ok {
			continue
		}
		manifest.Aliases = append(manifest.Aliases, Alias{
			Name:   ws.Name + "/" + alias.Name,
			Target: ws.Name + "/" + alias.Target,
		})
	}

	return manifest
}

func qualify(workspace string, key depgraph.PackageKey) string {
	return workspace + "/" + key.String()
}

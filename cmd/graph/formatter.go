package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nockbuild/hoonscan/depgraph"

	graphlib "github.com/dominikbraun/graph"
)

// renderDOT converts the dependency graph to Graphviz DOT format. The graph
// is rebuilt through the graph library so duplicate imports collapse to a
// single drawn edge; vertices and edges are emitted in sorted order.
func renderDOT(g depgraph.DependencyGraph) (string, error) {
	dg := graphlib.New(graphlib.StringHash, graphlib.Directed())

	keys := sortedKeys(g)
	for _, key := range keys {
		if err := dg.AddVertex(key); err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
			return "", err
		}
	}
	for _, key := range keys {
		for _, dep := range g[depgraph.PackageKey(key)] {
			if err := dg.AddEdge(key, dep.String()); err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
				return "", err
			}
		}
	}

	adjacency, err := dg.AdjacencyMap()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("digraph dependencies {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=box];\n")
	sb.WriteString("\n")

	for _, key := range keys {
		sb.WriteString(fmt.Sprintf("  %q;\n", key))
	}
	sb.WriteString("\n")

	for _, key := range keys {
		targets := make([]string, 0, len(adjacency[key]))
		for target := range adjacency[key] {
			targets = append(targets, target)
		}
		sort.Strings(targets)
		for _, target := range targets {
			sb.WriteString(fmt.Sprintf("  %q -> %q;\n", key, target))
		}
	}

	sb.WriteString("}")
	return sb.String(), nil
}

// renderMermaid converts the dependency graph to Mermaid.js flowchart format.
// Mermaid node IDs can't have dots or slashes, so keys map to n0, n1, … in
// sorted order.
func renderMermaid(g depgraph.DependencyGraph) (string, error) {
	keys := sortedKeys(g)

	nodeIDs := make(map[string]string, len(keys))
	for i, key := range keys {
		nodeIDs[key] = fmt.Sprintf("n%d", i)
	}

	var sb strings.Builder
	sb.WriteString("flowchart LR\n")

	for _, key := range keys {
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", nodeIDs[key], key))
	}

	for _, key := range keys {
		deps := g[depgraph.PackageKey(key)]
		sortedDeps := make([]string, len(deps))
		for i, dep := range deps {
			sortedDeps[i] = dep.String()
		}
		sort.Strings(sortedDeps)

		for _, dep := range sortedDeps {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", nodeIDs[key], nodeIDs[dep]))
		}
	}

	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// renderJSON converts the dependency graph to an indented JSON adjacency map.
func renderJSON(g depgraph.DependencyGraph) (string, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func sortedKeys(g depgraph.DependencyGraph) []string {
	keys := make([]string, 0, len(g))
	for key := range g {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)
	return keys
}

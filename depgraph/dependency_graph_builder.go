package depgraph

import (
	"fmt"
	"strings"

	"github.com/nockbuild/hoonscan/hoon"
)

// BuildDependencyGraph extracts and resolves imports for every file in the
// map, producing a total graph over all discovered keys. rootName is the
// scan root's own directory name; dependency paths expressed relative to the
// workspace carry it as a prefix, which is stripped before resolution.
//
// Files are processed in sorted key order so diagnostics come out in a
// stable order. The returned diagnostics cover unreadable files, unresolved
// tokens, and ambiguous tokens; none of them abort the scan.
func BuildDependencyGraph(files FileMap, rootName string, read hoon.ContentReader) (DependencyGraph, []Diagnostic) {
	graph := make(DependencyGraph, len(files))
	var diags []Diagnostic
	resolver := NewResolver(files)

	for _, key := range files.SortedKeys() {
		record := files[key]

		tokens, err := hoon.Imports(record.AbsPath, read)
		if err != nil {
			diags = append(diags, Diagnostic{
				Category: DiagUnreadableFile,
				Message:  fmt.Sprintf("could not read %s: %v", record.AbsPath, err),
			})
		}

		resolved := make([]PackageKey, 0, len(tokens))
		for _, token := range tokens {
			token = strings.TrimPrefix(token, rootName+"/")

			target, resolveDiags, ok := resolver.Resolve(token, key.Dir())
			diags = append(diags, resolveDiags...)
			if !ok {
				diags = append(diags, Diagnostic{
					Category: DiagUnresolved,
					Message:  fmt.Sprintf("could not resolve dependency %q in %s", token, key),
				})
				continue
			}
			resolved = append(resolved, target)
		}

		graph[key] = resolved
	}

	return graph, diags
}

// Scan discovers all Hoon files under root and builds their dependency
// graph. The file map is fully built before any resolution begins.
func Scan(root string, read hoon.ContentReader) (FileMap, DependencyGraph, []Diagnostic, error) {
	files, diags, err := DiscoverFiles(root)
	if err != nil {
		return nil, nil, nil, err
	}

	graph, buildDiags := BuildDependencyGraph(files, ScanRootName(root), read)
	return files, graph, append(diags, buildDiags...), nil
}

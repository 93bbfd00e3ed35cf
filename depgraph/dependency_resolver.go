package depgraph

import (
	"fmt"
	"sort"
	"strings"
)

// Resolver maps raw import tokens to package keys against a frozen file map.
// The map must be fully built before any Resolve call: the same-directory,
// root-level, sibling, and suffix rules all assume total knowledge of the
// discovered files.
type Resolver struct {
	files FileMap
}

// NewResolver creates a resolver over the given file map.
func NewResolver(files FileMap) *Resolver {
	return &Resolver{files: files}
}

// Resolve maps one raw token to the package key it refers to. importerDir is
// the directory portion of the importing file's key ("" for a root-level
// file).
//
// Precedence: an explicit path token is tried verbatim first, then reduced
// to its final segment. A bare name is tried in the importer's own
// directory, at the root level, in the importer's parent directory, and
// finally by suffix search over every known key. An ambiguous suffix search
// picks the lexicographically smallest candidate and reports the rest.
func (r *Resolver) Resolve(token, importerDir string) (PackageKey, []Diagnostic, bool) {
	name := token
	if strings.Contains(name, "/") {
		if _, ok := r.files[PackageKey(name)]; ok {
			return PackageKey(name), nil, true
		}
		name = name[strings.LastIndex(name, "/")+1:]
	}

	if importerDir != "" {
		if key := PackageKey(importerDir + "/" + name); r.contains(key) {
			return key, nil, true
		}
	}

	if key := PackageKey(name); r.contains(key) {
		return key, nil, true
	}

	if parent := parentDir(importerDir); parent != "" {
		if key := PackageKey(parent + "/" + name); r.contains(key) {
			return key, nil, true
		}
	}

	return r.resolveBySuffix(name, importerDir)
}

func (r *Resolver) contains(key PackageKey) bool {
	_, ok := r.files[key]
	return ok
}

// resolveBySuffix collects every key equal to name or ending in "/"+name.
// Candidates are sorted so the pick is stable across runs regardless of map
// iteration order.
func (r *Resolver) resolveBySuffix(name, importerDir string) (PackageKey, []Diagnostic, bool) {
	var matches []PackageKey
	for key := range r.files {
		if string(key) == name || strings.HasSuffix(string(key), "/"+name) {
			matches = append(matches, key)
		}
	}

	switch len(matches) {
	case 0:
		return "", nil, false
	case 1:
		return matches[0], nil, true
	default:
		sort.Slice(matches, func(i, j int) bool { return matches[i] < matches[j] })
		diag := Diagnostic{
			Category: DiagAmbiguous,
			Message:  fmt.Sprintf("ambiguous dependency %q from %q, found: %v", name, importerDir, matches),
		}
		return matches[0], []Diagnostic{diag}, true
	}
}

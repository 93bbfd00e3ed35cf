package depgraph

import "fmt"

// DependencyGraph maps every discovered package key to its resolved
// dependency keys, in import order with duplicates preserved. Files with no
// resolvable imports map to an empty list, never to an absent entry.
// Unresolved imports are dropped, so no edge ever points outside the file
// map.
type DependencyGraph map[PackageKey][]PackageKey

// Validate reports an error if any graph node or edge target is missing from
// the file map.
func (g DependencyGraph) Validate(files FileMap) error {
	for key, deps := range g {
		if _, ok := files[key]; !ok {
			return fmt.Errorf("graph node %q has no file record", key)
		}
		for _, dep := range deps {
			if _, ok := files[dep]; !ok {
				return fmt.Errorf("edge %q -> %q points to an unknown key", key, dep)
			}
		}
	}
	return nil
}

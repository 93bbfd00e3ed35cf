package depgraph

import "sort"

// FileRecord describes one discovered source file. Records are immutable
// after discovery completes.
type FileRecord struct {
	// AbsPath is the file's absolute path on disk.
	AbsPath string
	// InstallPath is the scan root's own directory name, joined with the
	// file's relative subdirectory when it has one.
	InstallPath string
	// FileName is the base name including the extension.
	FileName string
}

// FileMap maps every package key discovered in a scan to its file record.
type FileMap map[PackageKey]FileRecord

// SortedKeys returns the map's keys in lexicographic order.
func (m FileMap) SortedKeys() []PackageKey {
	keys := make([]PackageKey, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

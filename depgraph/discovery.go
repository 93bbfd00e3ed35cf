package depgraph

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

const hoonExt = ".hoon"

// ScanRootName returns the scan root's own directory name. It prefixes every
// install path and is stripped from workspace-relative dependency paths
// during resolution.
func ScanRootName(root string) string {
	return filepath.Base(filepath.Clean(root))
}

// DiscoverFiles recursively enumerates all .hoon files under root and
// assigns each a package key and file record. Two files that normalize to
// the same key collide: the later one wins and a diagnostic is emitted.
func DiscoverFiles(root string) (FileMap, []Diagnostic, error) {
	files := make(FileMap)
	var diags []Diagnostic
	rootName := ScanRootName(root)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(d.Name()) != hoonExt {
			return nil
		}

		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			return err
		}
		relDir := filepath.ToSlash(rel)
		if relDir == "." {
			relDir = ""
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		installPath := rootName
		if relDir != "" {
			installPath = rootName + "/" + relDir
		}

		key := KeyFrom(relDir, strings.TrimSuffix(d.Name(), hoonExt))
		if prev, ok := files[key]; ok {
			diags = append(diags, Diagnostic{
				Category: DiagKeyCollision,
				Message:  fmt.Sprintf("package key %q maps to both %s and %s; keeping the latter", key, prev.AbsPath, absPath),
			})
		}

		files[key] = FileRecord{
			AbsPath:     absPath,
			InstallPath: installPath,
			FileName:    d.Name(),
		}
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, diags, nil
}

package depgraph

import "strings"

// PackageKey canonically identifies a discovered file within one scan. It is
// the file's subdirectory path relative to the scan root plus its name stem,
// joined with forward slashes regardless of host path conventions.
type PackageKey string

// KeyFrom builds a package key from a slash-separated relative directory and
// a file name stem. An empty directory yields the bare stem.
func KeyFrom(relDir, stem string) PackageKey {
	if relDir == "" {
		return PackageKey(stem)
	}
	return PackageKey(relDir + "/" + stem)
}

func (k PackageKey) String() string {
	return string(k)
}

// Dir returns the directory portion of the key, or "" for a root-level key.
func (k PackageKey) Dir() string {
	if i := strings.LastIndex(string(k), "/"); i >= 0 {
		return string(k)[:i]
	}
	return ""
}

// Base returns the final segment of the key.
func (k PackageKey) Base() string {
	if i := strings.LastIndex(string(k), "/"); i >= 0 {
		return string(k)[i+1:]
	}
	return string(k)
}

// parentDir drops the last segment of a slash-separated directory. It returns
// "" when dir has a single segment (no parent within the scan).
func parentDir(dir string) string {
	if i := strings.LastIndex(dir, "/"); i >= 0 {
		return dir[:i]
	}
	return ""
}

package hoon

import (
	"fmt"
	"strings"
)

// Import runes recognized in the header region of a Hoon file.
const (
	runeLibImport  = "/+"
	runeSurImport  = "/-"
	runeDepImport  = "/#"
	runePathImport = "/="

	commentPrefix = "::"
)

// Imports reads the file at filePath and extracts its raw import tokens.
func Imports(filePath string, read ContentReader) ([]string, error) {
	source, err := read(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	return ParseImports(source), nil
}

// ParseImports scans the header region of Hoon source and returns raw
// dependency tokens in order of appearance, duplicates preserved.
//
// The header is the leading block of blank lines, :: comments, and /-rune
// lines. The first line outside those categories ends the scan; the rest of
// the file is never inspected. Rune lines that are not import runes (marks
// like /*) stay part of the header but contribute no tokens.
func ParseImports(source []byte) []string {
	var tokens []string

	for _, line := range strings.Split(string(source), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, commentPrefix) {
			continue
		}
		if !strings.HasPrefix(line, "/") {
			break
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case runeLibImport, runeSurImport, runeDepImport:
			tokens = append(tokens, parseNamedSpecifiers(strings.Join(parts[1:], " "))...)
		case runePathImport:
			// /= name /path/to/file — the path is workspace-absolute and is
			// kept whole so it can be resolved as a full path.
			if len(parts) >= 3 {
				path := strings.TrimPrefix(parts[2], "/")
				if path != "" {
					tokens = append(tokens, path)
				}
			}
		}
	}

	return tokens
}

// parseNamedSpecifiers splits the comma-separated specifier list of a named
// import rune. A leading * wildcard is dropped, and a rename (source=alias)
// keeps only the alias.
func parseNamedSpecifiers(list string) []string {
	var tokens []string

	for _, spec := range strings.Split(list, ",") {
		spec = strings.TrimSpace(spec)
		spec = strings.TrimPrefix(spec, "*")
		if i := strings.LastIndex(spec, "="); i >= 0 {
			spec = strings.TrimSpace(spec[i+1:])
		}
		if spec != "" {
			tokens = append(tokens, spec)
		}
	}

	return tokens
}

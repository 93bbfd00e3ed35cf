package registry

import (
	"fmt"
	"strings"
)

const banner = "# ============================================================================"

// TOMLFormatter renders manifests in the typhoon registry format. The
// registry consumer diffs generated files against previous output, so
// sections are emitted in a fixed order with the original comment banners —
// which is why this is built as ordered text rather than with a TOML
// marshaler.
type TOMLFormatter struct{}

// Format converts the manifest to typhoon registry TOML.
func (f *TOMLFormatter) Format(m Manifest) (string, error) {
	var lines []string

	lines = append(lines,
		banner,
		fmt.Sprintf("# %s workspace packages", m.Workspace.Name),
		"# Generated by hoonscan",
		banner,
		"",
	)

	lines = append(lines,
		fmt.Sprintf("[workspace.%s]", m.Workspace.Name),
		fmt.Sprintf("git_url = %q", m.Workspace.GitURL),
		fmt.Sprintf("ref = %q", m.Workspace.Ref),
		fmt.Sprintf("description = %q", m.Workspace.Description),
		fmt.Sprintf("root_path = %q", m.Workspace.RootPath),
		"",
	)

	for _, pkg := range m.Packages {
		lines = append(lines,
			"[[package]]",
			fmt.Sprintf("name = %q", pkg.Name),
			fmt.Sprintf("workspace = %q", pkg.Workspace),
			fmt.Sprintf("path = %q", pkg.Path),
			fmt.Sprintf("file = %q", pkg.File),
			dependencyLine(pkg.Dependencies),
			"",
		)
	}

	if len(m.Aliases) > 0 {
		lines = append(lines,
			banner,
			"# Aliases",
			banner,
			"",
		)
		for _, alias := range m.Aliases {
			lines = append(lines,
				"[[alias]]",
				fmt.Sprintf("name = %q", alias.Name),
				fmt.Sprintf("target = %q", alias.Target),
				"",
			)
		}
	}

	return strings.Join(lines, "\n"), nil
}

func dependencyLine(deps []string) string {
	if len(deps) == 0 {
		return "dependencies = []"
	}

	quoted := make([]string, len(deps))
	for i, dep := range deps {
		quoted[i] = fmt.Sprintf("%q", dep)
	}
	return fmt.Sprintf("dependencies = [%s]", strings.Join(quoted, ", "))
}

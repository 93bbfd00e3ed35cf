package graph

import (
	"fmt"
	"os"

	"github.com/nockbuild/hoonscan/depgraph"
	"github.com/nockbuild/hoonscan/hoon"
	"github.com/spf13/cobra"
)

const (
	formatDOT     = "dot"
	formatMermaid = "mermaid"
	formatJSON    = "json"
)

type graphOptions struct {
	outputFormat string
}

// Cmd represents the graph command.
var Cmd = NewCommand()

// NewCommand returns a new graph command instance.
func NewCommand() *cobra.Command {
	opts := &graphOptions{
		outputFormat: formatDOT,
	}

	cmd := &cobra.Command{
		Use:   "graph <directory>",
		Short: "Render the dependency graph of a Hoon workspace.",
		Long: `Scan a directory tree for .hoon files and render their dependency graph
for visualization, without emitting a registry manifest.

Output formats:
  - dot: Graphviz DOT format (default)
  - mermaid: Mermaid.js flowchart
  - json: adjacency map keyed by package key`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGraph(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", opts.outputFormat,
		fmt.Sprintf("Output format (%s, %s, %s)", formatDOT, formatMermaid, formatJSON))

	return cmd
}

func runGraph(cmd *cobra.Command, opts *graphOptions, dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	_, graph, diags, err := depgraph.Scan(dir, hoon.FilesystemContentReader())
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	for _, diag := range diags {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", diag)
	}

	var output string
	switch opts.outputFormat {
	case formatDOT:
		output, err = renderDOT(graph)
	case formatMermaid:
		output, err = renderMermaid(graph)
	case formatJSON:
		output, err = renderJSON(graph)
	default:
		return fmt.Errorf("unknown format: %s (valid options: %s, %s, %s)",
			opts.outputFormat, formatDOT, formatMermaid, formatJSON)
	}
	if err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

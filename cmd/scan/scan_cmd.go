package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nockbuild/hoonscan/depgraph"
	"github.com/nockbuild/hoonscan/hoon"
	"github.com/nockbuild/hoonscan/registry"
	"github.com/spf13/cobra"
)

type scanOptions struct {
	workspace    string
	gitURL       string
	ref          string
	rootPath     string
	description  string
	output       string
	outputFormat string
}

// Cmd represents the scan command.
var Cmd = NewCommand()

// NewCommand returns a new scan command instance.
func NewCommand() *cobra.Command {
	opts := &scanOptions{
		outputFormat: registry.OutputFormatTOML.String(),
	}

	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "Scan a directory of Hoon files and emit a registry manifest.",
		Long: `Scan a directory tree for .hoon files, resolve the import runes in each
file's header, and emit a typhoon-format registry manifest.

Unresolved or ambiguous imports are reported as warnings on stderr and never
fail the scan; the only fatal condition is a scan path that is not a
directory.

Example:
  hoonscan scan --workspace nockchain --root-path hoon \
      --git-url https://github.com/nockchain/nockchain --ref a19ad4dc \
      --description "Nockchain standard library" \
      /path/to/nockchain/hoon`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.workspace, "workspace", "", "Workspace name (e.g. \"nockchain\")")
	cmd.Flags().StringVar(&opts.gitURL, "git-url", "", "Git repository URL")
	cmd.Flags().StringVar(&opts.ref, "ref", "", "Git ref (tag or commit hash)")
	cmd.Flags().StringVar(&opts.rootPath, "root-path", "", "Root path in the repo (e.g. \"hoon\", \"pkg/arvo\")")
	cmd.Flags().StringVar(&opts.description, "description", "", "Workspace description")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.outputFormat, "format", "f", opts.outputFormat,
		fmt.Sprintf("Output format (%s, %s)", registry.OutputFormatTOML, registry.OutputFormatJSON))

	for _, flag := range []string{"workspace", "git-url", "ref", "root-path"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func runScan(cmd *cobra.Command, opts *scanOptions, dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	formatter, err := registry.NewFormatter(opts.outputFormat)
	if err != nil {
		return err
	}

	files, graph, diags, err := depgraph.Scan(dir, hoon.FilesystemContentReader())
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Found %d hoon files\n", len(files))
	for _, diag := range diags {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", diag)
	}

	manifest := registry.Build(registry.Workspace{
		Name:        opts.workspace,
		GitURL:      opts.gitURL,
		Ref:         opts.ref,
		Description: opts.description,
		RootPath:    opts.rootPath,
	}, files, graph)

	output, err := formatter.Format(manifest)
	if err != nil {
		return fmt.Errorf("failed to format manifest: %w", err)
	}

	if opts.output != "" {
		if err := os.WriteFile(filepath.Clean(opts.output), []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.output, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote registry to %s\n", opts.output)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}

package watch

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nockbuild/hoonscan/registry"
	"github.com/spf13/cobra"
)

type watchOptions struct {
	workspace   string
	gitURL      string
	ref         string
	rootPath    string
	description string
	output      string
}

// Cmd represents the watch command.
var Cmd = NewCommand()

// NewCommand returns a new watch command instance.
func NewCommand() *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <directory>",
		Short: "Watch a Hoon workspace and regenerate the registry on changes.",
		Long: `Watch a directory tree for .hoon file changes and rewrite the registry
manifest after every change, debounced. Useful while developing a workspace
whose registry is consumed by other tooling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.workspace, "workspace", "", "Workspace name (e.g. \"nockchain\")")
	cmd.Flags().StringVar(&opts.gitURL, "git-url", "", "Git repository URL")
	cmd.Flags().StringVar(&opts.ref, "ref", "", "Git ref (tag or commit hash)")
	cmd.Flags().StringVar(&opts.rootPath, "root-path", "", "Root path in the repo (e.g. \"hoon\", \"pkg/arvo\")")
	cmd.Flags().StringVar(&opts.description, "description", "", "Workspace description")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Registry file to rewrite on every change")

	for _, flag := range []string{"workspace", "git-url", "ref", "root-path", "output"} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func runWatch(cmd *cobra.Command, opts *watchOptions, dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve scan path: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ws := registry.Workspace{
		Name:        opts.workspace,
		GitURL:      opts.gitURL,
		Ref:         opts.ref,
		Description: opts.description,
		RootPath:    opts.rootPath,
	}

	if err := rebuildRegistry(cmd, absDir, ws, opts.output); err != nil {
		return fmt.Errorf("initial registry build failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Watching %s\n", absDir)
	fmt.Fprintf(cmd.OutOrStdout(), "Press Ctrl+C to stop\n")

	return watchAndRebuild(ctx, cmd, absDir, ws, opts.output)
}

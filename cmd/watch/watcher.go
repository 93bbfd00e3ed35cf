package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nockbuild/hoonscan/depgraph"
	"github.com/nockbuild/hoonscan/hoon"
	"github.com/nockbuild/hoonscan/registry"
	"github.com/spf13/cobra"
)

const debounceInterval = 300 * time.Millisecond

var skippedDirs = map[string]bool{
	".git": true,
}

func watchAndRebuild(ctx context.Context, cmd *cobra.Command, dir string, ws registry.Workspace, output string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, dir); err != nil {
		return fmt.Errorf("failed to watch directories: %w", err)
	}

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isRelevantChange(event) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceInterval, func() {
				if err := rebuildRegistry(cmd, dir, ws, output); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "registry rebuild error: %v\n", err)
				}
			})

			if event.Has(fsnotify.Create) {
				addIfDirectory(watcher, event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watcher error: %v\n", err)
		}
	}
}

// rebuildRegistry rescans the tree and rewrites the registry file. Scan
// warnings go to stderr; only I/O failures are errors.
func rebuildRegistry(cmd *cobra.Command, dir string, ws registry.Workspace, output string) error {
	files, graph, diags, err := depgraph.Scan(dir, hoon.FilesystemContentReader())
	if err != nil {
		return err
	}

	for _, diag := range diags {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", diag)
	}

	manifest := registry.Build(ws, files, graph)
	formatted, err := (&registry.TOMLFormatter{}).Format(manifest)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, []byte(formatted), 0644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote registry to %s (%d packages)\n", output, len(files))
	return nil
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if skippedDirs[d.Name()] {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func addIfDirectory(watcher *fsnotify.Watcher, path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	if skippedDirs[filepath.Base(path)] {
		return
	}
	_ = watcher.Add(path)
}

func isRelevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	return filepath.Ext(event.Name) == ".hoon"
}

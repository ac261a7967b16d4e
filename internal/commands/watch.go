package commands

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the bursts of events editors emit on save.
const watchDebounce = 100 * time.Millisecond

// watch runs fn once, then again after every change of path, until ctx is
// done. The parent directory is watched so that editors replacing the file
// on save are followed. Errors of fn are logged and do not stop watching.
func watch(ctx context.Context, log *slog.Logger, path string, fn func() error) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	run := func() {
		if err := fn(); err != nil {
			log.ErrorContext(ctx, "generation failed", "schema", path, "error", err)
		}
	}
	run()
	log.InfoContext(ctx, "watching schema", "schema", path)

	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.DebugContext(ctx, "schema changed", "schema", path, "op", ev.Op.String())
			timer.Reset(watchDebounce)
		case <-timer.C:
			run()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.WarnContext(ctx, "watch error", "error", err)
		}
	}
}

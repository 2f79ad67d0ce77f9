package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces editor write bursts into one reload.
const watchDebounce = 250 * time.Millisecond

// Watch reloads path whenever it changes and hands the new configuration to
// apply. Only timeout knobs are expected to take effect at runtime; callers
// decide what to do with the rest. Watch returns when ctx is done.
func Watch(ctx context.Context, path string, apply func(*Config)) error {
	if path == "" {
		path = DefaultPath
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which drops a
	// watch registered on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	target := filepath.Clean(path)

	var timer *time.Timer
	reload := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("config watcher error", "err", err)
		case <-reload:
			cfg, err := Load(path)
			if err != nil {
				slog.Warn("config reload failed, keeping previous settings", "path", path, "err", err)
				continue
			}
			slog.Info("config reloaded",
				"default_per_file_timeout_ms", cfg.Timeouts.DefaultPerFileMs,
				"max_per_file_timeout_ms", cfg.Timeouts.MaxPerFileMs)
			apply(cfg)
		}
	}
}

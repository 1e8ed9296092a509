package assets

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// WatchBackground re-decodes the background whenever path is written or
// recreated and delivers the new RGB pixels on the returned channel. Only
// the latest undelivered frame is kept. The channel closes when ctx is done.
func WatchBackground(ctx context.Context, path string, width, height int, logger *log.Logger) (<-chan []byte, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("background watcher: %w", err)
	}
	// Editors often replace the file, so watch the directory instead.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	out := make(chan []byte, 1)
	go func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				rgb, err := LoadBackground(target, width, height)
				if err != nil {
					// partial writes fail to decode; the next event retries
					logger.Debug("background reload skipped", "error", err)
					continue
				}
				select {
				case <-out:
				default:
				}
				out <- rgb
				logger.Info("background reloaded", "path", target)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("background watcher", "error", err)
			}
		}
	}()
	return out, nil
}

package platform

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RunFunc performs one export. Watch calls it from its own goroutine only,
// so runs never overlap.
type RunFunc func(ctx context.Context) error

// Watch runs once, then runs again each time the file at csvPath settles
// after a change. The parent directory is watched so that editors replacing
// the file by rename are noticed. Run errors are logged and watching goes on.
// Watch returns nil when ctx is cancelled.
func Watch(ctx context.Context, csvPath string, run RunFunc, opts ...Option) error {
	o := buildOptions(opts)
	logger := o.log()

	target, err := filepath.Abs(csvPath)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", csvPath, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	runOnce := func() {
		if err := run(ctx); err != nil {
			logger.Error("export failed", "csv", target, "error", err)
		}
	}

	runOnce()
	logger.Info("watching for changes", "csv", target, "debounce", o.debounce)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !relevant(event, target) {
				continue
			}
			logger.Debug("change detected", "name", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(o.debounce)
			} else {
				timer.Reset(o.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if ctx.Err() != nil {
				return nil
			}
			runOnce()

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("fsnotify error", "error", wErr)
		}
	}
}

func relevant(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

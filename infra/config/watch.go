package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/CrestNiraj12/speakfeed/app"
)

// Watch reloads s whenever its file is written or created, and reports
// each reload to onReload. It watches the parent directory so editors
// that save by replacing the file are still seen. The watcher stops
// when ctx is cancelled.
func Watch(ctx context.Context, s *Store, onReload func(app.Snapshot, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				snap, err := s.Reload()
				if onReload != nil {
					onReload(snap, err)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.log.Warn("template watcher error", "path", s.path, "err", err)
			}
		}
	}()
	return nil
}

package server

import (
	"context"
	"os"
	"path/filepath"

	fsnotify "github.com/fsnotify/fsnotify"

	"termfolio/internal/content"
	"termfolio/internal/system"
)

// watchContent reloads the in-memory content when content.json changes.
// Watches the parent directory rather than the file so editors that
// rename-on-save keep working. Returns the watcher's close func.
func (s *Server) watchContent(ctx context.Context) (func() error, error) {
	p, err := content.Path()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(p)); err != nil {
		_ = w.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(p) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				f, err := content.Load()
				if err != nil {
					system.Logger.Warn("content reload failed", "err", err)
					continue
				}
				s.mu.Lock()
				s.data = f
				s.mu.Unlock()
				system.Logger.Info("content reloaded", "path", ev.Name)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				system.Logger.Warn("content watcher error", "err", err)
			}
		}
	}()
	return w.Close, nil
}

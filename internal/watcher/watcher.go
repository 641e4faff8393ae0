// Package watcher notifies about changes to a single file on disk.
package watcher

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher calls onChange, debounced, whenever the watched file is written,
// created, renamed or removed. The parent directory is watched so editors that
// replace the file on save are handled.
type FileWatcher struct {
	path     string
	debounce time.Duration
	onChange func()
	log      *slog.Logger

	w    *fsnotify.Watcher
	done chan struct{}
	once sync.Once
}

// New creates a watcher for path
func New(path string, debounce time.Duration, onChange func(), logger *slog.Logger) (*FileWatcher, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	return &FileWatcher{
		path:     path,
		debounce: debounce,
		onChange: onChange,
		log:      logger,
		w:        w,
		done:     make(chan struct{}),
	}, nil
}

// Start begins delivering events in a background goroutine
func (f *FileWatcher) Start() {
	go f.loop()
}

// Stop ends the watcher; it is safe to call more than once
func (f *FileWatcher) Stop() {
	f.once.Do(func() {
		close(f.done)
		_ = f.w.Close()
	})
}

func (f *FileWatcher) loop() {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-f.done:
			return

		case ev, ok := <-f.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != f.path {
				continue
			}
			if !ev.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove) {
				continue
			}
			f.log.Debug("watched file changed", "path", f.path, "op", ev.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(f.debounce, f.onChange)

		case err, ok := <-f.w.Errors:
			if !ok {
				return
			}
			f.log.Warn("file watcher error", "path", f.path, "err", err)
		}
	}
}

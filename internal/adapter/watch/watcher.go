// Package watch monitors a report drop folder and signals when a rescan is
// worthwhile.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher debounces create/write events for report files under a directory
// tree into rescan signals.
type Watcher struct {
	watcher    *fsnotify.Watcher
	extensions []string
	debounce   time.Duration
}

// NewWatcher creates a watcher for the given file extensions.
func NewWatcher(extensions []string, debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if len(extensions) == 0 {
		extensions = []string{".pdf", ".txt"}
	}
	if debounce <= 0 {
		debounce = 2 * time.Second
	}
	return &Watcher{
		watcher:    w,
		extensions: extensions,
		debounce:   debounce,
	}, nil
}

// Watch registers root and its subdirectories and emits one signal per burst
// of report file changes. The channel closes when ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, root string) (<-chan struct{}, error) {
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	signals := make(chan struct{}, 1)

	go func() {
		defer close(signals)
		var timer *time.Timer
		var timerC <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				// New directories need watching too; a dropped folder of
				// reports only raises events for the folder itself.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.watcher.Add(event.Name)
					continue
				}
				if !w.isReportFile(event.Name) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(w.debounce)
					timerC = timer.C
				} else {
					timer.Reset(w.debounce)
				}
			case <-timerC:
				timer = nil
				timerC = nil
				select {
				case signals <- struct{}{}:
				default:
				}
			case _, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return signals, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) isReportFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range w.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

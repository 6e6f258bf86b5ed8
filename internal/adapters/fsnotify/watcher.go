// Package fsnotify implements the ports.HistoryWatcher interface using
// github.com/fsnotify/fsnotify. It watches the directory holding a history
// log (so the log may be created or deleted while watched), filters events
// down to that one file, and debounces rapid events.
package fsnotify

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/m-mizutani/goerr/v2"
)

// DebounceInterval collapses bursts of events for the same file.
const DebounceInterval = 50 * time.Millisecond

// Watcher implements ports.HistoryWatcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex

	// OnError receives watcher errors. Nil swallows them; fsnotify
	// recovers automatically.
	OnError func(error)
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, goerr.Wrap(err, "create fsnotify watcher")
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring the file at path. The parent directory must exist.
func (w *Watcher) Watch(path string, onChange func()) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return goerr.Wrap(err, "resolve watch path", goerr.V("path", path))
	}
	dir := filepath.Dir(absPath)
	if err := w.fw.Add(dir); err != nil {
		return goerr.Wrap(err, "watch directory", goerr.V("dir", dir))
	}

	// Trailing debounce: fire once the file has been quiet for
	// DebounceInterval, so readers see the completed write.
	timer := time.NewTimer(DebounceInterval)
	timer.Stop()

	go func() {
		defer timer.Stop()
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absPath {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					timer.Reset(DebounceInterval)
				}

			case <-timer.C:
				onChange()

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				if w.OnError != nil {
					w.OnError(err)
				}

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}

// Package fsnotify implements the ports.Watcher interface using
// github.com/fsnotify/fsnotify. It watches the parent directory of a
// target file (editors replace files on save, which a direct file watch
// misses) and debounces rapid events.
package fsnotify

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval suppresses duplicate events from editors that trigger
// multiple writes per save.
const debounceInterval = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring the given file. onChange is called with the
// absolute file path after each write, create, or rename that touches it.
func (w *Watcher) Watch(path string, onChange func(filePath string)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	// Watch the containing directory, filter to the target file.
	if err := w.fw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	var dmu sync.Mutex
	var last time.Time

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if event.Name != absPath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Rename) {
					continue
				}

				dmu.Lock()
				now := time.Now()
				if now.Sub(last) < debounceInterval {
					dmu.Unlock()
					continue
				}
				last = now
				dmu.Unlock()

				onChange(absPath)

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed — fsnotify recovers automatically

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

// Package watcher watches the config file and signals, debounced, when its
// contents have changed.
package watcher

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/dlist/internal/log"
)

// Watcher monitors one file and sends a signal after each burst of writes
// that leaves the file with different contents.
type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	debounce time.Duration

	changes  chan struct{}
	done     chan struct{}
	stopOnce sync.Once

	// last holds the contents seen by the previous signal. Only the loop
	// goroutine touches it after Start.
	last []byte
}

// Config holds watcher configuration options.
type Config struct {
	Path        string
	DebounceDur time.Duration
}

// DefaultConfig returns the settings used for the config file.
func DefaultConfig(path string) Config {
	return Config{
		Path:        path,
		DebounceDur: 300 * time.Millisecond,
	}
}

// New creates a watcher for cfg.Path. Nothing is watched until Start.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fs:       fsw,
		path:     cfg.Path,
		debounce: cfg.DebounceDur,
		changes:  make(chan struct{}, 1),
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching the file's directory. Saves replace the file by
// rename, so watching the file itself would lose track after the first save.
// The returned channel holds at most one pending signal.
func (w *Watcher) Start() (<-chan struct{}, error) {
	dir := filepath.Dir(w.path)
	if err := w.fs.Add(dir); err != nil {
		return nil, fmt.Errorf("watching directory %s: %w", dir, err)
	}
	w.last, _ = os.ReadFile(w.path)

	go w.loop()

	return w.changes, nil
}

// Stop terminates the watcher. It is safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) loop() {
	// fire is nil while no burst is pending, which disables its case.
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if w.targets(event) {
				fire = time.After(w.debounce)
			}

		case <-fire:
			fire = nil
			if !w.changed() {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatConfig, "config watcher error", err, "path", w.path)

		case <-w.done:
			return
		}
	}
}

// targets reports whether event wrote to the watched file. Atomic saves show
// up as Create on the target name.
func (w *Watcher) targets(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return filepath.Base(event.Name) == filepath.Base(w.path)
}

// changed compares the file with the last signalled contents. A file that
// cannot be read yet is treated as unchanged; the write that completes it
// raises another event.
func (w *Watcher) changed() bool {
	data, err := os.ReadFile(w.path)
	if err != nil {
		log.Debug(log.CatConfig, "config unreadable after change", "path", w.path, "error", err)
		return false
	}
	if bytes.Equal(data, w.last) {
		log.Debug(log.CatConfig, "config rewritten without changes", "path", w.path)
		return false
	}
	w.last = data
	return true
}

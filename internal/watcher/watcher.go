// Package watcher reports structural changes under a notebook root: entries
// created, removed or renamed anywhere in the tree. Content writes are not
// reported since they never change the tree's shape.
//
// Bursts of filesystem events are coalesced into one signal per debounce
// window, and signals are dropped rather than queued while the consumer is
// busy, so a slow UI sees at most one pending change.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/treykane/skrib/internal/logging"
)

// DefaultDebounce is the quiet period after the last event before a change
// is signalled.
const DefaultDebounce = 200 * time.Millisecond

var log = logging.New("watcher")

// Watcher watches a directory tree recursively.
type Watcher struct {
	root     string
	debounce time.Duration
	fs       *fsnotify.Watcher
	changes  chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the coalescing window. Non-positive values keep the
// default.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// New starts watching root and every directory below it. Events are only
// delivered once Run is called.
func New(root string, opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{
		root:     root,
		debounce: DefaultDebounce,
		fs:       fw,
		changes:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	if err := w.addTree(root); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", root, err)
	}
	return w, nil
}

// Root returns the watched directory.
func (w *Watcher) Root() string { return w.root }

// Changes delivers one value per debounced burst of structural events. It is
// closed when Run returns.
func (w *Watcher) Changes() <-chan struct{} { return w.changes }

// Run processes filesystem events until ctx is done or the watcher is
// closed.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.changes)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.handle(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Warn("watch error", "root", w.root, "error", err)
		case <-fire:
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}
		}
	}
}

// Close stops watching. Run returns shortly after.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.fs.Close()
	})
	return w.closeErr
}

// handle reports whether event changes the tree shape, and starts watching
// directories as they appear.
func (w *Watcher) handle(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if event.Has(fsnotify.Create) {
		if info, err := os.Lstat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				log.Warn("watch new directory", "path", event.Name, "error", err)
			}
		}
	}
	log.Debug("tree changed", "path", event.Name, "op", event.Op.String())
	return true
}

// addTree watches root and its subdirectories. Symlinks are not followed.
// Unreadable subdirectories are skipped.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.Warn("skip unwatchable directory", "path", path, "error", err)
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fs.Add(path); err != nil {
			if path == root {
				return err
			}
			log.Warn("skip unwatchable directory", "path", path, "error", err)
		}
		return nil
	})
}

package watch

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher delivers debounced change events for a set of files.
type Watcher struct {
	mu sync.Mutex

	fsw     *fsnotify.Watcher
	handler Handler
	log     *logrus.Entry

	// Configuration
	debounce time.Duration

	// Tracked files and the directories registered with fsnotify
	files map[string]bool
	dirs  map[string]bool

	closed bool
}

// New creates a watcher that calls handler for every change.
func New(handler Handler, opts ...Option) (*Watcher, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}

	w := &Watcher{
		handler:  handler,
		debounce: DefaultDebounce,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.log == nil {
		w.log = logrus.NewEntry(logrus.StandardLogger())
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w.fsw = fsw
	return w, nil
}

// Add starts tracking the file at path.
func (w *Watcher) Add(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}
	if info.IsDir() {
		return ErrNotFile
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	dir := filepath.Dir(absPath)
	if !w.dirs[dir] {
		if err := w.fsw.Add(dir); err != nil {
			return err
		}
		w.dirs[dir] = true
	}
	w.files[absPath] = true

	w.log.WithField("path", absPath).Debug("watching file")
	return nil
}

// Files returns the tracked paths in sorted order.
func (w *Watcher) Files() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return sortedKeys(w.files)
}

// Run processes events until ctx is done or the watcher is closed. It
// returns nil in both cases. Handlers run on the calling goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	w.mu.Unlock()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var fire <-chan time.Time
	pending := make(map[string]Op)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			path, op, tracked := w.filter(ev)
			if !tracked {
				continue
			}
			pending[path] |= op
			if w.debounce == 0 {
				w.flush(pending)
				continue
			}
			timer.Reset(w.debounce)
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Warn("file watcher error")

		case <-fire:
			fire = nil
			w.flush(pending)
		}
	}
}

// filter reports whether ev concerns a tracked file.
func (w *Watcher) filter(ev fsnotify.Event) (string, Op, bool) {
	op := convertOp(ev.Op)
	if op == 0 {
		return "", 0, false
	}
	path := filepath.Clean(ev.Name)

	w.mu.Lock()
	defer w.mu.Unlock()
	return path, op, w.files[path]
}

// flush delivers and clears the pending events.
func (w *Watcher) flush(pending map[string]Op) {
	now := time.Now()
	for _, path := range sortedKeys(pending) {
		ev := Event{Path: path, Op: pending[path], Time: now}
		delete(pending, path)

		w.log.WithFields(logrus.Fields{
			"path": ev.Path,
			"op":   ev.Op.String(),
		}).Debug("file changed")
		w.handler(ev)
	}
}

// Close stops the watcher. Run returns once the event channels close.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	return w.fsw.Close()
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

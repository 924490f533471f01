package watch

import (
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultDebounce is the quiet period before changes are delivered.
const DefaultDebounce = 100 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period. Zero delivers every event
// immediately; negative values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Entry) Option {
	return func(w *Watcher) {
		if log != nil {
			w.log = log
		}
	}
}

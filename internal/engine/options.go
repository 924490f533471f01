package engine

import "github.com/sirupsen/logrus"

// Option configures an Engine during creation.
type Option func(*Engine)

// WithSlots sets the number of scratch buffers.
func WithSlots(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.slots = n
		}
	}
}

// WithSlotSize sets the size of each scratch buffer in bytes.
func WithSlotSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.slotSize = size
		}
	}
}

// WithTrimSet sets the bytes removed by Trim.
// An empty set keeps the default.
func WithTrimSet(set string) Option {
	return func(e *Engine) {
		if set != "" {
			e.trimSet = set
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(log *logrus.Entry) Option {
	return func(e *Engine) {
		e.log = log
	}
}

package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/dshills/crtext/internal/engine/format"
	"github.com/dshills/crtext/internal/engine/scratch"
	"github.com/dshills/crtext/internal/engine/str"
	"github.com/dshills/crtext/internal/engine/unicase"
	"github.com/dshills/crtext/internal/engine/view"
)

// Re-export commonly used types for convenience.
type (
	// String is an owned, growable byte string.
	String = str.String

	// View is a borrowed read-only window over bytes.
	View = view.View

	// Arg is a single formatting argument.
	Arg = format.Arg

	// Lease is a handle to text held in a scratch slot.
	Lease = scratch.Lease
)

// InvalidIndex is returned by searches that find nothing.
const InvalidIndex = view.InvalidIndex

// Engine bundles the text facilities behind one caller-owned value: a
// scratch pool for transient formatting, the trim set used by Trim and a
// logger.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	pool *scratch.Pool
	log  *logrus.Entry

	// Configuration
	slots    int
	slotSize int
	trimSet  string
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		slots:    scratch.DefaultSlots,
		slotSize: scratch.DefaultSlotSize,
		trimSet:  str.DefaultTrimSet,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.log == nil {
		e.log = logrus.NewEntry(logrus.StandardLogger())
	}
	e.pool = scratch.New(
		scratch.WithSlots(e.slots),
		scratch.WithSlotSize(e.slotSize),
	)

	e.log.WithFields(logrus.Fields{
		"slots":     e.slots,
		"slot_size": e.slotSize,
	}).Debug("text engine created")
	return e
}

// Scratch returns the engine's scratch pool.
func (e *Engine) Scratch() *scratch.Pool {
	return e.pool
}

// Logger returns the engine's logger.
func (e *Engine) Logger() *logrus.Entry {
	return e.log
}

// TrimSet returns the bytes removed by Trim.
func (e *Engine) TrimSet() string {
	return e.trimSet
}

// Format renders template into the next scratch slot. The result stays
// valid until the pool has rotated through all of its slots.
func (e *Engine) Format(template string, args ...Arg) *Lease {
	l := e.pool.Format(template, args...)
	if l.Truncated() {
		e.log.WithFields(logrus.Fields{
			"template":  template,
			"slot_size": e.slotSize,
		}).Warn("formatted text truncated to slot size")
	}
	return l
}

// Sprintf renders template into a new heap string with no size limit.
func (e *Engine) Sprintf(template string, args ...Arg) string {
	return format.Sprintf(template, args...)
}

// JoinPath joins parts with the operating system path separator.
func (e *Engine) JoinPath(parts ...string) *String {
	return e.pool.JoinPath(parts...)
}

// Matches reports whether a and b are equal ignoring case.
func (e *Engine) Matches(a, b string) bool {
	return e.pool.Matches(a, b)
}

// NewString returns an owned copy of text.
func (e *Engine) NewString(text string) *String {
	return str.New(text)
}

// Upper upper-cases every code point covered by the case table.
func (e *Engine) Upper(text string) string {
	return unicase.StrToUpper(text)
}

// Lower lower-cases ASCII letters.
func (e *Engine) Lower(text string) string {
	return str.New(text).Lowercase().String()
}

// Trim removes the engine's trim set from both ends of s in place and
// returns s.
func (e *Engine) Trim(s *String) *String {
	return s.TrimChars(e.trimSet)
}

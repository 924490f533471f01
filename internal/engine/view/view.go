package view

import (
	"bytes"
	"math"
	"unsafe"
)

// InvalidIndex is returned by search functions when nothing matches.
const InvalidIndex = math.MaxInt

// FNV-1a 32-bit parameters.
const (
	fnvBasis uint32 = 0x811c9dc5
	fnvPrime uint32 = 0x01000193
)

// View is a borrowed window over text. The zero value is the empty view.
// A View never writes through its slice.
type View struct {
	b []byte
}

// New returns a view over s without copying it.
func New(s string) View {
	if len(s) == 0 {
		return View{}
	}
	return View{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// FromBytes returns a view borrowing b without copying. Changes to b are
// visible through the view; text taken out with String or Bytes is a copy
// and never changes.
func FromBytes(b []byte) View {
	return View{b: b}
}

// FromCString returns a view over b up to, not including, the first zero
// byte. Without a terminator the whole slice is used.
func FromCString(b []byte) View {
	for i, c := range b {
		if c == 0 {
			return FromBytes(b[:i])
		}
	}
	return FromBytes(b)
}

// Len returns the length of the view in bytes.
func (v View) Len() int {
	return len(v.b)
}

// IsEmpty returns true if the view has no bytes.
func (v View) IsEmpty() bool {
	return len(v.b) == 0
}

// At returns the byte at index i. The second result is false when i is
// outside the view.
func (v View) At(i int) (byte, bool) {
	if i < 0 || i >= len(v.b) {
		return 0, false
	}
	return v.b[i], true
}

// String returns a copy of the viewed text.
func (v View) String() string {
	return string(v.b)
}

// Bytes returns a copy of the viewed bytes.
func (v View) Bytes() []byte {
	if len(v.b) == 0 {
		return nil
	}
	return bytes.Clone(v.b)
}

// Equals compares lengths first and content second.
func (v View) Equals(other View) bool {
	return len(v.b) == len(other.b) && bytes.Equal(v.b, other.b)
}

// EqualString compares the view with s.
func (v View) EqualString(s string) bool {
	return len(v.b) == len(s) && string(v.b) == s
}

// transient returns the view as a string that shares its bytes. The result
// must not outlive the call it is passed to, and must not be retained by it.
func (v View) transient() string {
	if len(v.b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(v.b), len(v.b))
}

// Hash returns the FNV-1a hash of the view. Hashing stops at the end of the
// view or at the first zero byte, whichever comes first.
func (v View) Hash() uint32 {
	h := fnvBasis
	for i := 0; i < len(v.b); i++ {
		c := v.b[i]
		if c == 0 {
			break
		}
		h = (h ^ uint32(c)) * fnvPrime
	}
	return h
}

// StartsWith returns true if the view begins with prefix.
func (v View) StartsWith(prefix string) bool {
	return len(prefix) <= len(v.b) && string(v.b[:len(prefix)]) == prefix
}

// EndsWith returns true if the view ends with suffix.
func (v View) EndsWith(suffix string) bool {
	return len(suffix) <= len(v.b) && string(v.b[len(v.b)-len(suffix):]) == suffix
}

// Contains returns true if pattern occurs in the view.
func (v View) Contains(pattern string) bool {
	return v.Find(pattern, 0) != InvalidIndex
}

// Substr returns the window starting at start and spanning count bytes.
// start is clamped to the view length and count to the remaining bytes; a
// negative count (or InvalidIndex) selects everything after start.
func (v View) Substr(start, count int) View {
	if start < 0 {
		start = 0
	}
	if start > len(v.b) {
		start = len(v.b)
	}
	remaining := len(v.b) - start
	if count < 0 || count > remaining {
		count = remaining
	}
	return View{b: v.b[start : start+count]}
}

package str

import (
	"unsafe"

	"github.com/dshills/crtext/internal/engine/format"
	"github.com/dshills/crtext/internal/engine/view"
)

// InvalidIndex is returned by search functions when nothing matches.
const InvalidIndex = view.InvalidIndex

// Growth policy constants.
const (
	// MinCapacity is the smallest capacity of a freshly allocated buffer,
	// before headroom.
	MinCapacity = 12

	// SmallGrowth is the headroom added when fewer than smallRequest bytes
	// were requested.
	SmallGrowth = 8

	smallRequest = 4
)

// String is an owned, growable byte string. The zero value is an empty,
// unallocated string ready to use.
type String struct {
	buf    []byte // len(buf) is the capacity
	length int
}

// New returns a String holding a copy of text.
func New(text string) *String {
	s := &String{}
	s.Assign(text)
	return s
}

// FromView returns a String holding a copy of v.
func FromView(v view.View) *String {
	return New(v.String())
}

// FromBytes returns a String holding a copy of b.
func FromBytes(b []byte) *String {
	return New(view.FromBytes(b).String())
}

// FromCString returns a String holding a copy of b up to the first zero byte.
func FromCString(b []byte) *String {
	return New(view.FromCString(b).String())
}

// Newf returns a String holding the formatted template.
func Newf(template string, args ...format.Arg) *String {
	s := &String{}
	s.Assignf(template, args...)
	return s
}

// Len returns the content length in bytes.
func (s *String) Len() int {
	return s.length
}

// Cap returns the allocated capacity, zero when no buffer is allocated.
func (s *String) Cap() int {
	return len(s.buf)
}

// IsEmpty returns true if the string has no content.
func (s *String) IsEmpty() bool {
	return s.length == 0
}

// Reserve makes room for extra more bytes plus the terminator.
func (s *String) Reserve(extra int) {
	if extra < 0 {
		extra = 0
	}
	if s.length+extra < len(s.buf) {
		return
	}

	capacity := s.growFactor(extra) + s.length
	buf := make([]byte, capacity)
	copy(buf, s.buf[:s.length])
	s.buf = buf
}

// growFactor computes the capacity needed to hold extra more bytes.
func (s *String) growFactor(extra int) int {
	capacity := len(s.buf)
	if capacity == 0 {
		capacity = max(MinCapacity, extra+1)
	}
	for s.length+extra > capacity {
		capacity += capacity * 2 / 3
	}
	if extra < smallRequest {
		return capacity + SmallGrowth
	}
	return capacity + extra
}

// terminate writes the zero byte after the content.
func (s *String) terminate() {
	if len(s.buf) > 0 {
		s.buf[s.length] = 0
	}
}

// overlaps reports whether text points into the string's own buffer.
func (s *String) overlaps(text string) bool {
	if len(text) == 0 || len(s.buf) == 0 {
		return false
	}
	start := uintptr(unsafe.Pointer(unsafe.SliceData(s.buf)))
	end := start + uintptr(len(s.buf))
	p := uintptr(unsafe.Pointer(unsafe.StringData(text)))
	return p >= start && p < end
}

// At returns the byte at index i. The second result is false when i is
// outside the content.
func (s *String) At(i int) (byte, bool) {
	if i < 0 || i >= s.length {
		return 0, false
	}
	return s.buf[i], true
}

// SetAt overwrites the byte at index i. It returns false when i is outside
// the content.
func (s *String) SetAt(i int, c byte) bool {
	if i < 0 || i >= s.length {
		return false
	}
	s.buf[i] = c
	return true
}

// View returns a borrowed view of the content, valid until the next
// mutation. Text copied out of the view with String or Bytes stays
// unchanged after later mutations. A nil String has an empty view.
func (s *String) View() view.View {
	if s == nil {
		return view.View{}
	}
	return view.FromBytes(s.buf[:s.length])
}

// String returns a copy of the content.
func (s *String) String() string {
	return string(s.buf[:s.length])
}

// Bytes returns a copy of the content.
func (s *String) Bytes() []byte {
	out := make([]byte, s.length)
	copy(out, s.buf)
	return out
}

// CString returns a copy of the content followed by a zero byte.
func (s *String) CString() []byte {
	out := make([]byte, s.length+1)
	copy(out, s.buf[:s.length])
	return out
}

// Clone returns an independent copy.
func (s *String) Clone() *String {
	return New(s.String())
}

// Clear empties the content and keeps the buffer.
func (s *String) Clear() *String {
	s.length = 0
	s.terminate()
	return s
}

// Reset empties the content and releases the buffer.
func (s *String) Reset() {
	s.buf = nil
	s.length = 0
}

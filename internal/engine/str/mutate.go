package str

import (
	"strings"

	"github.com/dshills/crtext/internal/engine/format"
	"github.com/dshills/crtext/internal/engine/view"
)

// DefaultTrimSet holds the bytes removed by Trim, LTrim and RTrim.
const DefaultTrimSet = "\r\n\t "

// Assign replaces the content with text.
func (s *String) Assign(text string) *String {
	s.length = 0
	s.Reserve(len(text))
	copy(s.buf, text)
	s.length = len(text)
	s.terminate()
	return s
}

// AssignView replaces the content with v.
func (s *String) AssignView(v view.View) *String {
	return s.Assign(v.String())
}

// AssignBytes replaces the content with b.
func (s *String) AssignBytes(b []byte) *String {
	return s.Assign(view.FromBytes(b).String())
}

// AssignByte replaces the content with the single byte c.
func (s *String) AssignByte(c byte) *String {
	s.length = 0
	return s.AppendByte(c)
}

// Assignf replaces the content with the formatted template. The template is
// rendered twice: once to measure and once into an exactly sized buffer.
func (s *String) Assignf(template string, args ...format.Arg) *String {
	return s.AssignBytes(render(template, args))
}

// Append adds text to the end.
func (s *String) Append(text string) *String {
	s.Reserve(len(text))
	copy(s.buf[s.length:], text)
	s.length += len(text)
	s.terminate()
	return s
}

// AppendView adds v to the end.
func (s *String) AppendView(v view.View) *String {
	return s.Append(v.String())
}

// AppendBytes adds b to the end.
func (s *String) AppendBytes(b []byte) *String {
	return s.Append(view.FromBytes(b).String())
}

// AppendByte adds the single byte c to the end.
func (s *String) AppendByte(c byte) *String {
	s.Reserve(1)
	s.buf[s.length] = c
	s.length++
	s.terminate()
	return s
}

// Appendf adds the formatted template to the end.
func (s *String) Appendf(template string, args ...format.Arg) *String {
	return s.AppendBytes(render(template, args))
}

// render formats template into a buffer of exactly the measured size.
func render(template string, args []format.Arg) []byte {
	n := format.Format(nil, template, args...)
	buf := make([]byte, n+1)
	format.Format(buf, template, args...)
	return buf[:n]
}

// Insert places text before index. An index at or past the end appends. It
// returns false, leaving the string untouched, when text is empty.
func (s *String) Insert(index int, text string) bool {
	if text == "" {
		return false
	}
	if index < 0 {
		index = 0
	}
	if index >= s.length {
		s.Append(text)
		return true
	}
	if s.overlaps(text) {
		text = strings.Clone(text)
	}

	n := len(text)
	s.Reserve(n)
	copy(s.buf[index+n:s.length+n], s.buf[index:s.length])
	copy(s.buf[index:], text)
	s.length += n
	s.terminate()
	return true
}

// Erase removes count bytes starting at index. It returns false, leaving
// the string untouched, when the span does not lie within the content.
// Capacity is kept.
func (s *String) Erase(index, count int) bool {
	if index < 0 || count < 0 || index > s.length || count > s.length-index {
		return false
	}
	if count == 0 {
		return true
	}

	copy(s.buf[index:], s.buf[index+count:s.length])
	s.length -= count
	s.terminate()
	return true
}

// Replace substitutes every non-overlapping occurrence of needle with
// target, scanning left to right, and returns the number of replacements.
// Text produced by a replacement is never scanned again. It does nothing
// when either operand is empty.
func (s *String) Replace(needle, target string) int {
	if needle == "" || target == "" {
		return 0
	}
	if s.overlaps(needle) {
		needle = strings.Clone(needle)
	}
	if s.overlaps(target) {
		target = strings.Clone(target)
	}

	replaced, pos := 0, 0
	for pos < s.length {
		pos = s.View().Find(needle, pos)
		if pos == InvalidIndex {
			break
		}
		s.Erase(pos, len(needle))
		s.Insert(pos, target)

		pos += len(target)
		replaced++
	}
	return replaced
}

// Lowercase converts ASCII letters to lower case in place.
func (s *String) Lowercase() *String {
	for i := 0; i < s.length; i++ {
		if c := s.buf[i]; c >= 'A' && c <= 'Z' {
			s.buf[i] = c + ('a' - 'A')
		}
	}
	return s
}

// Uppercase converts ASCII letters to upper case in place.
func (s *String) Uppercase() *String {
	for i := 0; i < s.length; i++ {
		if c := s.buf[i]; c >= 'a' && c <= 'z' {
			s.buf[i] = c - ('a' - 'A')
		}
	}
	return s
}

// Trim removes leading and trailing bytes in DefaultTrimSet.
func (s *String) Trim() *String {
	return s.TrimChars(DefaultTrimSet)
}

// LTrim removes leading bytes in DefaultTrimSet.
func (s *String) LTrim() *String {
	return s.LTrimChars(DefaultTrimSet)
}

// RTrim removes trailing bytes in DefaultTrimSet.
func (s *String) RTrim() *String {
	return s.RTrimChars(DefaultTrimSet)
}

// TrimChars removes leading and trailing bytes in set.
func (s *String) TrimChars(set string) *String {
	return s.LTrimChars(set).RTrimChars(set)
}

// LTrimChars removes leading bytes in set.
func (s *String) LTrimChars(set string) *String {
	begin := s.View().FindFirstNotOf(set, 0)
	if begin == InvalidIndex {
		begin = s.length
	}
	s.Erase(0, begin)
	return s
}

// RTrimChars removes trailing bytes in set.
func (s *String) RTrimChars(set string) *String {
	last := s.View().FindLastNotOf(set)
	if last == InvalidIndex {
		s.length = 0
	} else {
		s.length = last + 1
	}
	s.terminate()
	return s
}

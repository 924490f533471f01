package str

import "github.com/dshills/crtext/internal/engine/view"

// Find returns the index of the first occurrence of pattern at or after
// start, or InvalidIndex.
func (s *String) Find(pattern string, start int) int {
	return s.View().Find(pattern, start)
}

// FindByte returns the index of the first c at or after start, or
// InvalidIndex.
func (s *String) FindByte(c byte, start int) int {
	return s.View().FindByte(c, start)
}

// RFind returns the index of the last occurrence of pattern, or InvalidIndex.
func (s *String) RFind(pattern string) int {
	return s.View().RFind(pattern)
}

// RFindByte returns the index of the last c, or InvalidIndex.
func (s *String) RFindByte(c byte) int {
	return s.View().RFindByte(c)
}

func (s *String) FindFirstOf(set string, start int) int {
	return s.View().FindFirstOf(set, start)
}

func (s *String) FindLastOf(set string) int {
	return s.View().FindLastOf(set)
}

func (s *String) FindFirstNotOf(set string, start int) int {
	return s.View().FindFirstNotOf(set, start)
}

func (s *String) FindLastNotOf(set string) int {
	return s.View().FindLastNotOf(set)
}

// CountByte returns how many times c occurs.
func (s *String) CountByte(c byte) int {
	return s.View().CountByte(c)
}

// Count returns the number of non-overlapping occurrences of pattern.
func (s *String) Count(pattern string) int {
	return s.View().Count(pattern)
}

func (s *String) Contains(pattern string) bool {
	return s.View().Contains(pattern)
}

func (s *String) StartsWith(prefix string) bool {
	return s.View().StartsWith(prefix)
}

func (s *String) EndsWith(suffix string) bool {
	return s.View().EndsWith(suffix)
}

// Hash returns the FNV-1a hash of the content.
func (s *String) Hash() uint32 {
	return s.View().Hash()
}

// Equals reports whether both strings hold the same bytes. A nil String
// equals an empty one.
func (s *String) Equals(other *String) bool {
	return s.View().Equals(other.View())
}

func (s *String) EqualString(text string) bool {
	return s.View().EqualString(text)
}

// Int parses a leading decimal integer the way atoi does.
func (s *String) Int() int {
	return s.View().Int()
}

// Float parses a leading floating point number the way atof does.
func (s *String) Float() float64 {
	return s.View().Float()
}

// Substr returns an owned copy of count bytes starting at start. Out of
// range arguments are clamped.
func (s *String) Substr(start, count int) *String {
	return FromView(s.View().Substr(start, count))
}

// Split returns owned copies of every delim separated segment, including
// empty ones.
func (s *String) Split(delim string) []*String {
	return fromViews(s.View().Split(delim))
}

// Chunks returns owned copies of consecutive maxLen byte pieces.
func (s *String) Chunks(maxLen int) []*String {
	return fromViews(s.View().Chunks(maxLen))
}

func fromViews(views []view.View) []*String {
	out := make([]*String, len(views))
	for i, v := range views {
		out[i] = FromView(v)
	}
	return out
}

// Join concatenates parts[start:] with delim between neighbours. Nil parts
// are skipped. A start outside parts yields an empty string.
func Join(parts []*String, delim string, start int) *String {
	out := &String{}
	if start < 0 {
		start = 0
	}
	first := true
	for i := start; i < len(parts); i++ {
		if parts[i] == nil {
			continue
		}
		if !first {
			out.Append(delim)
		}
		first = false
		out.AppendView(parts[i].View())
	}
	return out
}

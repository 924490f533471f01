package unicase

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// caseMapping is a single lower to upper case row.
type caseMapping struct {
	from rune
	to   rune
}

// ToUpper returns the upper case form of r, or r itself when the table has
// no mapping for it.
func ToUpper(r rune) rune {
	i := sort.Search(len(upperTable), func(i int) bool {
		return upperTable[i].from >= r
	})
	if i < len(upperTable) && upperTable[i].from == r {
		return upperTable[i].to
	}
	return r
}

// StrToUpper upper-cases s code point by code point into a new string.
// Bytes that do not decode are copied unchanged. Mappings that change the
// encoded length are supported.
func StrToUpper(s string) string {
	out := make([]byte, 0, len(s))
	var enc [MaxSequence]byte

	for i := 0; i < len(s); {
		r, n := DecodeString(s[i:])
		if n < 0 {
			out = append(out, s[i])
			i++
			continue
		}
		m := Encode(enc[:], ToUpper(r))
		out = append(out, enc[:m]...)
		i += n
	}

	asciiUpper(out)
	return string(out)
}

// UpperInPlace upper-cases b destructively. The code point pass stops at the
// first mapping whose encoding would not occupy exactly the bytes it
// replaces; every remaining ASCII letter is still upper-cased. It returns the
// number of leading bytes covered by the code point pass.
func UpperInPlace(b []byte) int {
	i := 0
	for i < len(b) {
		r, n := Decode(b[i:])
		if n < 0 {
			i++
			continue
		}
		upper := ToUpper(r)
		if EncodedLen(upper) != n {
			break
		}
		Encode(b[i:i+n], upper)
		i += n
	}

	asciiUpper(b)
	return i
}

// FullUpper applies the complete Unicode upper casing rules, including
// mappings that expand one code point into several (e.g. "ß" to "SS").
func FullUpper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func asciiUpper(b []byte) {
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
}

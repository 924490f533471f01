package unicase

// MaxSequence is the longest sequence the codec reads or writes.
const MaxSequence = 6

// sequence describes one encoded length.
type sequence struct {
	cmask byte  // lead byte mask
	cval  byte  // lead byte value after masking
	shift uint  // bits carried by continuation bytes
	lmask int64 // largest value the length can carry
	lval  int64 // smallest value allowed, rejects overlong forms
}

var sequences = [MaxSequence]sequence{
	{0x80, 0x00, 0 * 6, 0x7f, 0},
	{0xe0, 0xc0, 1 * 6, 0x7ff, 0x80},
	{0xf0, 0xe0, 2 * 6, 0xffff, 0x800},
	{0xf8, 0xf0, 3 * 6, 0x1fffff, 0x10000},
	{0xfc, 0xf8, 4 * 6, 0x3ffffff, 0x200000},
	{0xfe, 0xfc, 5 * 6, 0x7fffffff, 0x4000000},
}

// Decode reads the sequence at the start of p and returns its code point and
// length in bytes. The length is -1 when p is empty or truncated, a
// continuation byte is malformed, or the value is overlong.
func Decode(p []byte) (rune, int) {
	return decode(p)
}

// DecodeString is Decode for strings.
func DecodeString(s string) (rune, int) {
	return decode(s)
}

func decode[T ~string | ~[]byte](p T) (rune, int) {
	if len(p) == 0 {
		return 0, -1
	}

	lead := p[0]
	l := int64(lead)
	for i, seq := range sequences {
		if lead&seq.cmask == seq.cval {
			l &= seq.lmask
			if l < seq.lval {
				return 0, -1
			}
			return rune(l), i + 1
		}

		if i+1 >= len(p) {
			return 0, -1
		}
		c := p[i+1] ^ 0x80
		if c&0xc0 != 0 {
			return 0, -1
		}
		l = l<<6 | int64(c)
	}
	return 0, -1
}

// Encode writes the sequence for r into dst and returns the number of bytes
// written, or -1 when r is negative or dst is too short.
func Encode(dst []byte, r rune) int {
	if r < 0 {
		return -1
	}

	l := int64(r)
	for i, seq := range sequences {
		if l > seq.lmask {
			continue
		}
		if len(dst) < i+1 {
			return -1
		}

		shift := seq.shift
		dst[0] = seq.cval | byte(l>>shift)
		for k := 1; shift > 0; k++ {
			shift -= 6
			dst[k] = 0x80 | byte((l>>shift)&0x3f)
		}
		return i + 1
	}
	return -1
}

// EncodedLen returns the number of bytes Encode writes for r, or -1 for a
// negative rune.
func EncodedLen(r rune) int {
	if r < 0 {
		return -1
	}
	for i, seq := range sequences {
		if int64(r) <= seq.lmask {
			return i + 1
		}
	}
	return -1
}

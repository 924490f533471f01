package unicase

import (
	"testing"
	"testing/quick"
	"unicode/utf8"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  rune
		size  int
	}{
		{"ascii", []byte("A"), 'A', 1},
		{"nul", []byte{0}, 0, 1},
		{"two bytes", []byte{0xc3, 0xa9}, 0xe9, 2},
		{"euro sign", []byte{0xe2, 0x82, 0xac}, 0x20ac, 3},
		{"four bytes", []byte{0xf0, 0x9f, 0x98, 0x80}, 0x1f600, 4},
		{"five bytes", []byte{0xf8, 0x88, 0x80, 0x80, 0x80}, 0x200000, 5},
		{"six bytes max", []byte{0xfd, 0xbf, 0xbf, 0xbf, 0xbf, 0xbf}, 0x7fffffff, 6},
		{"trailing bytes ignored", []byte{0xe2, 0x82, 0xac, 'x'}, 0x20ac, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, n := Decode(tt.input)
			if r != tt.want || n != tt.size {
				t.Errorf("Decode(% x) = (%#x, %d), want (%#x, %d)", tt.input, r, n, tt.want, tt.size)
			}
		})
	}
}

func TestDecodeFailures(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
	}{
		{"empty", nil},
		{"overlong nul", []byte{0xc0, 0x80}},
		{"overlong slash", []byte{0xe0, 0x80, 0xaf}},
		{"bad continuation", []byte{0xe2, 0x28, 0xa1}},
		{"truncated", []byte{0xe2, 0x82}},
		{"lone continuation", []byte{0x80}},
		{"invalid lead", []byte{0xff, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, n := Decode(tt.input); n != -1 {
				t.Errorf("Decode(% x) length = %d, want -1", tt.input, n)
			}
		})
	}
}

func TestDecodeString(t *testing.T) {
	r, n := DecodeString("€uro")
	if r != 0x20ac || n != 3 {
		t.Errorf("DecodeString = (%#x, %d), want (0x20ac, 3)", r, n)
	}
}

func TestEncode(t *testing.T) {
	var buf [MaxSequence]byte
	n := Encode(buf[:], 0x20ac)
	if n != 3 || string(buf[:n]) != "€" {
		t.Errorf("Encode(U+20AC) = % x (%d)", buf[:n], n)
	}

	if n := Encode(buf[:], -1); n != -1 {
		t.Errorf("Encode(-1) = %d, want -1", n)
	}
	if n := Encode(buf[:2], 0x20ac); n != -1 {
		t.Errorf("Encode into short buffer = %d, want -1", n)
	}
	if n := Encode(buf[:], 0x7fffffff); n != 6 {
		t.Errorf("Encode(0x7fffffff) = %d, want 6", n)
	}
}

func TestEncodedLen(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{0, 1}, {0x7f, 1}, {0x80, 2}, {0x7ff, 2}, {0x800, 3}, {0xffff, 3},
		{0x10000, 4}, {0x1fffff, 4}, {0x200000, 5}, {0x4000000, 6}, {-5, -1},
	}
	for _, tt := range tests {
		if got := EncodedLen(tt.r); got != tt.want {
			t.Errorf("EncodedLen(%#x) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestEncodeMatchesStandardUTF8(t *testing.T) {
	var ours [MaxSequence]byte
	var std [utf8.UTFMax]byte
	for r := rune(0); r <= utf8.MaxRune; r++ {
		if r >= 0xd800 && r <= 0xdfff {
			continue
		}
		n := Encode(ours[:], r)
		m := utf8.EncodeRune(std[:], r)
		if n != m || string(ours[:n]) != string(std[:m]) {
			t.Fatalf("Encode(%#x) = % x, utf8 gives % x", r, ours[:n], std[:m])
		}
	}
}

func TestRoundTrip(t *testing.T) {
	f := func(u uint32) bool {
		r := rune(u & 0x7fffffff)
		var buf [MaxSequence]byte
		n := Encode(buf[:], r)
		got, m := Decode(buf[:n])
		return n == EncodedLen(r) && m == n && got == r
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestToUpper(t *testing.T) {
	tests := []struct {
		in, want rune
	}{
		{'a', 'A'},
		{'z', 'Z'},
		{'A', 'A'},
		{'1', '1'},
		{0x00e9, 0x00c9}, // é
		{0x00ff, 0x0178}, // ÿ
		{0x0131, 0x0049}, // dotless i
		{0x03c3, 0x03a3}, // σ
		{0x0436, 0x0416}, // ж
		{0xff41, 0xff21}, // full-width a
		{0xff5a, 0xff3a}, // last row
		{0x00df, 0x00df}, // ß has no single code point mapping
		{0x4e16, 0x4e16}, // 世
		{-1, -1},
	}
	for _, tt := range tests {
		if got := ToUpper(tt.in); got != tt.want {
			t.Errorf("ToUpper(%#x) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestUpperTableSorted(t *testing.T) {
	if len(upperTable) != 706 {
		t.Errorf("upperTable has %d rows, want 706", len(upperTable))
	}
	for i := 1; i < len(upperTable); i++ {
		if upperTable[i-1].from >= upperTable[i].from {
			t.Fatalf("row %d (%#x) is not above row %d (%#x)", i, upperTable[i].from, i-1, upperTable[i-1].from)
		}
	}
	for _, row := range upperTable {
		if got := ToUpper(row.from); got != row.to {
			t.Errorf("ToUpper(%#x) = %#x, want %#x", row.from, got, row.to)
		}
	}
}

func TestToUpperIdempotent(t *testing.T) {
	for _, row := range upperTable {
		if ToUpper(ToUpper(row.from)) != ToUpper(row.from) {
			t.Errorf("ToUpper not idempotent for %#x", row.from)
		}
	}

	f := func(u uint32) bool {
		r := rune(u % 0x20000)
		return ToUpper(ToUpper(r)) == ToUpper(r)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestStrToUpper(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ascii", "hello world", "HELLO WORLD"},
		{"latin", "wörld café", "WÖRLD CAFÉ"},
		{"cyrillic", "привет", "ПРИВЕТ"},
		{"greek", "αβγ", "ΑΒΓ"},
		{"mixed", "Go → ǆ", "GO → Ǆ"},
		{"length change", "ıi", "II"},
		{"no mapping", "straße", "STRAßE"},
		{"invalid bytes", "a\xffb", "A\xffB"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StrToUpper(tt.input); got != tt.want {
				t.Errorf("StrToUpper(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUpperInPlace(t *testing.T) {
	b := []byte("añb€")
	if n := UpperInPlace(b); n != len(b) {
		t.Errorf("UpperInPlace covered %d bytes, want %d", n, len(b))
	}
	if string(b) != "AÑB€" {
		t.Errorf("UpperInPlace = %q", b)
	}

	// The dotless i would shrink from two bytes to one: the code point pass
	// stops there and only ASCII letters after it are converted.
	b = []byte("xıyé")
	if n := UpperInPlace(b); n != 1 {
		t.Errorf("UpperInPlace covered %d bytes, want 1", n)
	}
	if string(b) != "XıYé" {
		t.Errorf("UpperInPlace = %q, want %q", b, "XıYé")
	}

	b = []byte{'a', 0xff, 'b'}
	if n := UpperInPlace(b); n != 3 || string(b) != "A\xffB" {
		t.Errorf("UpperInPlace over invalid byte = %q (%d)", b, n)
	}
}

func TestFullUpper(t *testing.T) {
	if got := FullUpper("straße"); got != "STRASSE" {
		t.Errorf("FullUpper = %q, want STRASSE", got)
	}
	if got := FullUpper("café"); got != "CAFÉ" {
		t.Errorf("FullUpper = %q, want CAFÉ", got)
	}
}

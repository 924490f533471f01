package scratch

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/dshills/crtext/internal/engine/format"
)

func TestNewDefaults(t *testing.T) {
	p := New()
	if p.Slots() != DefaultSlots || p.SlotSize() != DefaultSlotSize {
		t.Errorf("New() = %d slots of %d, want %d of %d", p.Slots(), p.SlotSize(), DefaultSlots, DefaultSlotSize)
	}
	for i, s := range p.slots {
		if len(s.data) != DefaultSlotSize+1 {
			t.Fatalf("slot %d has %d bytes, want %d", i, len(s.data), DefaultSlotSize+1)
		}
	}

	p = New(WithSlots(4), WithSlotSize(8), WithSlots(-1), WithSlotSize(0))
	if p.Slots() != 4 || p.SlotSize() != 8 {
		t.Errorf("options gave %d slots of %d, want 4 of 8", p.Slots(), p.SlotSize())
	}
}

func TestFormat(t *testing.T) {
	p := New()
	tests := []struct {
		name     string
		template string
		args     []format.Arg
		want     string
	}{
		{"plain", "no placeholders", nil, "no placeholders"},
		{"mixed", "%s has %d items (%.1f%%)", []format.Arg{format.Str("cart"), format.Int(3), format.Float(42.26)}, "cart has 3 items (42.3%)"},
		{"hex", "0x%08X", []format.Arg{format.Uint(0xbeef)}, "0x0000BEEF"},
		{"empty", "", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := p.Format(tt.template, tt.args...)
			got, err := l.Value()
			if err != nil {
				t.Fatalf("Value() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.template, got, tt.want)
			}
			if l.Truncated() {
				t.Error("short output reported as truncated")
			}
		})
	}
}

func TestFormatTruncates(t *testing.T) {
	p := New(WithSlotSize(8))
	l := p.Format("%s-%s", format.Str("abcdef"), format.Str("ghijkl"))
	if l.String() != "abcdef-g" || l.Len() != 8 {
		t.Errorf("truncated = %q (%d), want abcdef-g (8)", l.String(), l.Len())
	}
	if !l.Truncated() {
		t.Error("Truncated() = false, want true")
	}
	if p.slots[l.index].data[8] != 0 {
		t.Error("slot must stay terminated")
	}

	l = p.Format("%s", format.Str("12345678"))
	if l.Truncated() || l.String() != "12345678" {
		t.Errorf("exact fit = %q truncated %v", l.String(), l.Truncated())
	}
}

func TestCopy(t *testing.T) {
	p := New(WithSlotSize(4))
	if l := p.Copy("ab"); l.String() != "ab" || l.Truncated() {
		t.Errorf("Copy(ab) = %q truncated %v", l.String(), l.Truncated())
	}
	l := p.Copy("abcdef")
	if l.String() != "abcd" || !l.Truncated() {
		t.Errorf("Copy(abcdef) = %q truncated %v", l.String(), l.Truncated())
	}
	if l := p.Copy("%d"); l.String() != "%d" {
		t.Errorf("Copy should not interpret placeholders, got %q", l.String())
	}
}

func TestRotation(t *testing.T) {
	p := New(WithSlots(3))
	first := p.Copy("first")
	second := p.Copy("second")
	third := p.Copy("third")
	for _, l := range []*Lease{first, second, third} {
		if !l.Valid() {
			t.Fatalf("lease %q expired too early", l.String())
		}
	}

	fourth := p.Copy("fourth")
	if first.Valid() {
		t.Error("first lease should expire after a full rotation")
	}
	if first.index != fourth.index {
		t.Errorf("fourth lease reused slot %d, want %d", fourth.index, first.index)
	}
	if _, err := first.Value(); !errors.Is(err, ErrLeaseExpired) {
		t.Errorf("Value() error = %v, want ErrLeaseExpired", err)
	}
	if first.Bytes() != nil || first.Len() != 0 || first.String() != "" {
		t.Error("expired lease should expose no content")
	}
	if got, _ := second.Value(); got != "second" {
		t.Errorf("second = %q", got)
	}
	if got, _ := fourth.Value(); got != "fourth" {
		t.Errorf("fourth = %q", got)
	}
}

func TestAcquireClears(t *testing.T) {
	p := New(WithSlots(1))
	p.Copy("stale")
	l := p.Acquire()
	if l.Len() != 0 || l.String() != "" || p.slots[l.index].data[0] != 0 {
		t.Errorf("Acquire should hand out an empty slot, got %q", p.slots[l.index].data[:5])
	}
}

func TestJoinPath(t *testing.T) {
	p := New()
	sep := string(os.PathSeparator)
	tests := []struct {
		parts []string
		want  string
	}{
		{[]string{"addons", "bot", "conf"}, strings.Join([]string{"addons", "bot", "conf"}, sep)},
		{[]string{"single"}, "single"},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := p.JoinPath(tt.parts...).String(); got != tt.want {
			t.Errorf("JoinPath(%v) = %q, want %q", tt.parts, got, tt.want)
		}
	}
}

func TestMatches(t *testing.T) {
	p := New()
	tests := []struct {
		a, b string
		want bool
	}{
		{"Hello", "hELLO", true},
		{"Straße", "STRASSE", false},
		{"ПРИВЕТ", "привет", true},
		{"abc", "abd", false},
		{"", "", true},
	}
	for _, tt := range tests {
		if got := p.Matches(tt.a, tt.b); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
	if !p.IsEmpty("") || p.IsEmpty(" ") {
		t.Error("IsEmpty")
	}
}

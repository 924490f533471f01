package engine

import (
	"strings"
	"testing"

	"github.com/dshills/crtext/internal/engine/format"
	"github.com/dshills/crtext/internal/engine/str"
	"github.com/dshills/crtext/internal/engine/unicase"
)

// ============================================================================
// Setup Helpers
// ============================================================================

func setupLargeText(lines int) string {
	var sb strings.Builder
	line := strings.Repeat("x", 40) + "ÿé " + strings.Repeat("y", 40) + "\n"
	for i := 0; i < lines; i++ {
		sb.WriteString(line)
	}
	return sb.String()
}

// ============================================================================
// Formatting Benchmarks
// ============================================================================

func BenchmarkEngineFormat(b *testing.B) {
	e := New()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = e.Format("%s:%d:%d", format.Str("file.go"), format.Int(i), format.Int(80))
	}
}

func BenchmarkEngineSprintf(b *testing.B) {
	e := New()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = e.Sprintf("%s:%d:%d", format.Str("file.go"), format.Int(i), format.Int(80))
	}
}

// ============================================================================
// String Benchmarks
// ============================================================================

func BenchmarkStringAppendByte(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var s str.String
		for j := 0; j < 1024; j++ {
			s.AppendByte('x')
		}
	}
}

func BenchmarkStringReplace(b *testing.B) {
	text := setupLargeText(100)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s := str.New(text)
		s.Replace("xy", "-")
	}
}

func BenchmarkStringSplit(b *testing.B) {
	s := str.New(setupLargeText(1000))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = s.View().Split("\n")
	}
}

// ============================================================================
// Unicode Benchmarks
// ============================================================================

func BenchmarkUpper(b *testing.B) {
	text := setupLargeText(100)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = unicase.StrToUpper(text)
	}
}

func BenchmarkUpperInPlace(b *testing.B) {
	text := []byte(setupLargeText(100))
	buf := make([]byte, len(text))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		copy(buf, text)
		unicase.UpperInPlace(buf)
	}
}

func BenchmarkFullUpper(b *testing.B) {
	text := setupLargeText(100)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = unicase.FullUpper(text)
	}
}

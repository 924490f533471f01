package format

import (
	"fmt"
	"strconv"
)

// Kind identifies the type held by an Arg.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindString
	KindByte
	KindBool
	KindStringer
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindByte:
		return "byte"
	case KindBool:
		return "bool"
	case KindStringer:
		return "stringer"
	default:
		return "invalid"
	}
}

// Arg is a single formattable value.
type Arg struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	s    string
	str  fmt.Stringer
}

// Int wraps a signed integer.
func Int(v int) Arg { return Arg{kind: KindInt, i: int64(v)} }

// Int64 wraps a 64-bit signed integer.
func Int64(v int64) Arg { return Arg{kind: KindInt, i: v} }

// Uint wraps an unsigned integer.
func Uint(v uint64) Arg { return Arg{kind: KindUint, u: v} }

// Float wraps a floating point number.
func Float(v float64) Arg { return Arg{kind: KindFloat, f: v} }

// Str wraps a string.
func Str(v string) Arg { return Arg{kind: KindString, s: v} }

// Byte wraps a single byte, rendered as a character by %c and %s.
func Byte(v byte) Arg { return Arg{kind: KindByte, u: uint64(v)} }

// Bool wraps a boolean.
func Bool(v bool) Arg {
	a := Arg{kind: KindBool}
	if v {
		a.u = 1
	}
	return a
}

// Stringer wraps any value with a String method, such as views and owned
// strings. A nil Stringer renders as the empty string.
func Stringer(v fmt.Stringer) Arg { return Arg{kind: KindStringer, str: v} }

// Kind returns the kind of the wrapped value.
func (a Arg) Kind() Kind {
	return a.kind
}

// Text returns the natural textual form of the value.
func (a Arg) Text() string {
	switch a.kind {
	case KindInt:
		return strconv.FormatInt(a.i, 10)
	case KindUint:
		return strconv.FormatUint(a.u, 10)
	case KindFloat:
		return strconv.FormatFloat(a.f, 'f', -1, 64)
	case KindString:
		return a.s
	case KindByte:
		return string([]byte{byte(a.u)})
	case KindBool:
		return strconv.FormatBool(a.u == 1)
	case KindStringer:
		if a.str == nil {
			return ""
		}
		return a.str.String()
	default:
		return ""
	}
}

// value returns the Go value handed to the fmt verb.
func (a Arg) value() any {
	switch a.kind {
	case KindInt:
		return a.i
	case KindUint:
		return a.u
	case KindFloat:
		return a.f
	case KindString, KindStringer:
		return a.Text()
	case KindByte:
		return byte(a.u)
	case KindBool:
		return a.u == 1
	default:
		return nil
	}
}

// numeric reports whether the value can feed an integer verb.
func (a Arg) numeric() bool {
	switch a.kind {
	case KindInt, KindUint, KindByte, KindBool:
		return true
	}
	return false
}

// integer returns the value as an int64 for integer verbs.
func (a Arg) integer() any {
	switch a.kind {
	case KindInt:
		return a.i
	case KindUint:
		return a.u
	case KindByte:
		return int64(a.u)
	case KindBool:
		return int64(a.u)
	}
	return a.value()
}

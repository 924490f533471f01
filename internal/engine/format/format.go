package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Format renders template with args into dst and returns the full length of
// the rendered text, which may exceed len(dst). At most len(dst)-1 bytes are
// written and the output is always zero-terminated when dst is non-empty.
func Format(dst []byte, template string, args ...Arg) int {
	w := getBuffer(len(template) + 16*len(args))
	defer putBuffer(w)

	w.buf = Append(w.buf, template, args...)
	n := len(w.buf)

	if len(dst) == 0 {
		return n
	}
	copied := copy(dst[:len(dst)-1], w.buf)
	dst[copied] = 0
	return n
}

// Append renders template with args and appends the result to dst.
func Append(dst []byte, template string, args ...Arg) []byte {
	if strings.IndexByte(template, '%') < 0 {
		return append(dst, template...)
	}
	goTemplate, values := translate(template, args)
	return fmt.Appendf(dst, goTemplate, values...)
}

// Sprintf renders template with args into a new string.
func Sprintf(template string, args ...Arg) string {
	w := getBuffer(len(template) + 16*len(args))
	defer putBuffer(w)

	w.buf = Append(w.buf, template, args...)
	return string(w.buf)
}

// translate rewrites a C-style template into a fmt template and lines up the
// argument values with the verbs that consume them.
func translate(template string, args []Arg) (string, []any) {
	var b strings.Builder
	b.Grow(len(template) + 8)
	values := make([]any, 0, len(args))
	next := 0

	for i := 0; i < len(template); {
		c := template[i]
		if c != '%' {
			b.WriteByte(c)
			i++
			continue
		}

		// Escape a trailing percent sign.
		if i+1 >= len(template) {
			b.WriteString("%%")
			break
		}

		j := i + 1
		for j < len(template) && strings.IndexByte("-+ #0", template[j]) >= 0 {
			j++
		}
		var spec strings.Builder
		spec.WriteString(template[i:j])

		// Width, possibly taken from the argument list.
		if j < len(template) && template[j] == '*' {
			width := starValue(args, &next)
			if width < 0 {
				spec.WriteByte('-')
				width = -width
			}
			spec.WriteString(strconv.Itoa(width))
			j++
		} else {
			start := j
			for j < len(template) && isDigit(template[j]) {
				j++
			}
			spec.WriteString(template[start:j])
		}

		// Precision; a negative * precision means none, as in C.
		if j < len(template) && template[j] == '.' {
			j++
			if j < len(template) && template[j] == '*' {
				if prec := starValue(args, &next); prec >= 0 {
					spec.WriteByte('.')
					spec.WriteString(strconv.Itoa(prec))
				}
				j++
			} else {
				start := j
				for j < len(template) && isDigit(template[j]) {
					j++
				}
				spec.WriteByte('.')
				spec.WriteString(template[start:j])
			}
		}
		for j < len(template) && strings.IndexByte("hlLjzt", template[j]) >= 0 {
			j++
		}
		if j >= len(template) {
			b.WriteString(strings.ReplaceAll(template[i:], "%", "%%"))
			break
		}

		verb := template[j]
		j++

		if verb == '%' {
			b.WriteString("%%")
			i = j
			continue
		}

		goVerb, ok := mapVerb(verb)
		if !ok {
			b.WriteString(strings.ReplaceAll(template[i:j], "%", "%%"))
			i = j
			continue
		}

		b.WriteString(spec.String())
		if next >= len(args) {
			// fmt reports the missing operand.
			b.WriteByte(goVerb)
			i = j
			continue
		}

		arg := args[next]
		next++
		switch goVerb {
		case 's', 'q':
			values = append(values, arg.Text())
		case 'd', 'x', 'X', 'o':
			if arg.numeric() {
				values = append(values, arg.integer())
			} else {
				values = append(values, arg.value())
			}
		case 'c':
			if arg.kind == KindString || arg.kind == KindStringer {
				// C would print the first byte of the pointed-to text.
				text := arg.Text()
				if text == "" {
					values = append(values, "")
					goVerb = 's'
				} else {
					values = append(values, rune(text[0]))
				}
			} else {
				values = append(values, arg.integer())
			}
		default:
			values = append(values, arg.value())
		}
		b.WriteByte(goVerb)
		i = j
	}

	return b.String(), values
}

// mapVerb maps a C conversion specifier to its fmt equivalent.
func mapVerb(c byte) (byte, bool) {
	switch c {
	case 'd', 'i', 'u':
		return 'd', true
	case 'x', 'X', 'o', 'c', 'e', 'E', 'g', 'G', 's', 'q':
		return c, true
	case 'f', 'F':
		return 'f', true
	}
	return 0, false
}

// starValue consumes the next argument as a * width or precision. A missing
// or non-numeric argument counts as zero.
func starValue(args []Arg, next *int) int {
	if *next >= len(args) {
		return 0
	}
	a := args[*next]
	*next++
	switch a.kind {
	case KindInt:
		return int(a.i)
	case KindUint, KindByte, KindBool:
		return int(a.u)
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

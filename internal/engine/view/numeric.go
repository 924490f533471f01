package view

import (
	"errors"
	"strconv"
)

// Int parses the longest leading integer of the view the way C's atoi does:
// leading whitespace is skipped, an optional sign is accepted and parsing
// stops at the first non-digit. It returns 0 when no digits are found and
// saturates on overflow.
func (v View) Int() int {
	i := skipSpace(v.b, 0)
	start := i
	if i < len(v.b) && (v.b[i] == '+' || v.b[i] == '-') {
		i++
	}
	digits := i
	for i < len(v.b) && isDigit(v.b[i]) {
		i++
	}
	if i == digits {
		return 0
	}

	n, err := strconv.ParseInt(string(v.b[start:i]), 10, strconv.IntSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return int(n)
}

// Float parses the longest leading decimal number of the view the way C's
// atof does. It returns 0 when nothing parses.
func (v View) Float() float64 {
	i := skipSpace(v.b, 0)
	start := i
	if i < len(v.b) && (v.b[i] == '+' || v.b[i] == '-') {
		i++
	}

	mantissa := 0
	for i < len(v.b) && isDigit(v.b[i]) {
		i++
		mantissa++
	}
	if i < len(v.b) && v.b[i] == '.' {
		i++
		for i < len(v.b) && isDigit(v.b[i]) {
			i++
			mantissa++
		}
	}
	if mantissa == 0 {
		return 0
	}

	// The exponent only counts when digits follow it.
	if i < len(v.b) && (v.b[i] == 'e' || v.b[i] == 'E') {
		j := i + 1
		if j < len(v.b) && (v.b[j] == '+' || v.b[j] == '-') {
			j++
		}
		if j < len(v.b) && isDigit(v.b[j]) {
			for j < len(v.b) && isDigit(v.b[j]) {
				j++
			}
			i = j
		}
	}

	f, err := strconv.ParseFloat(string(v.b[start:i]), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return f
}

func skipSpace(s []byte, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

package view

// FindByte returns the index of the first c at or after start.
func (v View) FindByte(c byte, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(v.b); i++ {
		if v.b[i] == c {
			return i
		}
	}
	return InvalidIndex
}

// Find returns the index of the first occurrence of pattern at or after
// start. An empty pattern matches at start when start is within the view.
func (v View) Find(pattern string, start int) int {
	if start < 0 {
		start = 0
	}
	n, m := len(v.b), len(pattern)
	if m > n || start > n {
		return InvalidIndex
	}
	for i := start; i <= n-m; i++ {
		if string(v.b[i:i+m]) == pattern {
			return i
		}
	}
	return InvalidIndex
}

// RFindByte returns the index of the last c in the view.
func (v View) RFindByte(c byte) int {
	for i := len(v.b) - 1; i >= 0; i-- {
		if v.b[i] == c {
			return i
		}
	}
	return InvalidIndex
}

// RFind returns the rightmost index at which pattern fully matches.
// An empty pattern matches at the end of the view.
func (v View) RFind(pattern string) int {
	n, m := len(v.b), len(pattern)
	if m > n {
		return InvalidIndex
	}
	for i := n - m; i >= 0; i-- {
		if string(v.b[i:i+m]) == pattern {
			return i
		}
	}
	return InvalidIndex
}

// FindFirstOf returns the index of the first byte at or after start that is
// any byte of set.
func (v View) FindFirstOf(set string, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(v.b); i++ {
		if inSet(set, v.b[i]) {
			return i
		}
	}
	return InvalidIndex
}

// FindLastOf returns the index of the last byte that is any byte of set.
func (v View) FindLastOf(set string) int {
	for i := len(v.b) - 1; i >= 0; i-- {
		if inSet(set, v.b[i]) {
			return i
		}
	}
	return InvalidIndex
}

// FindFirstNotOf returns the index of the first byte at or after start that
// is not in set.
func (v View) FindFirstNotOf(set string, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(v.b); i++ {
		if !inSet(set, v.b[i]) {
			return i
		}
	}
	return InvalidIndex
}

// FindLastNotOf returns the index of the last byte that is not in set.
func (v View) FindLastNotOf(set string) int {
	for i := len(v.b) - 1; i >= 0; i-- {
		if !inSet(set, v.b[i]) {
			return i
		}
	}
	return InvalidIndex
}

// CountByte returns the number of occurrences of c.
func (v View) CountByte(c byte) int {
	count := 0
	for i := 0; i < len(v.b); i++ {
		if v.b[i] == c {
			count++
		}
	}
	return count
}

// Count returns the number of non-overlapping occurrences of pattern.
// An empty pattern counts zero.
func (v View) Count(pattern string) int {
	n, m := len(v.b), len(pattern)
	if m == 0 || m > n {
		return 0
	}
	count := 0
	for i := 0; i <= n-m; {
		if string(v.b[i:i+m]) == pattern {
			count++
			i += m
			continue
		}
		i++
	}
	return count
}

func inSet(set string, c byte) bool {
	for j := 0; j < len(set); j++ {
		if set[j] == c {
			return true
		}
	}
	return false
}

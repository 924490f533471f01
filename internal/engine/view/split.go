package view

// Split returns the segments separated by delim, in order, including empty
// leading, inner and trailing segments. When delim is empty or absent the
// whole view is the single segment.
func (v View) Split(delim string) []View {
	if delim == "" {
		return []View{v}
	}

	tokens := make([]View, 0, v.Count(delim)+1)
	prev := 0
	for {
		pos := v.Find(delim, prev)
		if pos == InvalidIndex {
			break
		}
		tokens = append(tokens, View{b: v.b[prev:pos]})
		prev = pos + len(delim)
	}
	return append(tokens, View{b: v.b[prev:]})
}

// Chunks splits the view into consecutive pieces of maxLen bytes; the last
// piece may be shorter. An empty view has no chunks. A non-positive maxLen
// yields the whole view as one chunk.
func (v View) Chunks(maxLen int) []View {
	if len(v.b) == 0 {
		return nil
	}
	if maxLen <= 0 {
		return []View{v}
	}

	tokens := make([]View, 0, (len(v.b)+maxLen-1)/maxLen)
	for i := 0; i < len(v.b); i += maxLen {
		tokens = append(tokens, v.Substr(i, maxLen))
	}
	return tokens
}

// Join concatenates views separated by delim.
func Join(views []View, delim string) string {
	switch len(views) {
	case 0:
		return ""
	case 1:
		return views[0].String()
	}

	size := len(delim) * (len(views) - 1)
	for _, v := range views {
		size += len(v.b)
	}
	buf := make([]byte, 0, size)
	for i, v := range views {
		if i > 0 {
			buf = append(buf, delim...)
		}
		buf = append(buf, v.b...)
	}
	return string(buf)
}

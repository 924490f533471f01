package view

import (
	"github.com/charlievieth/strcase"
	"github.com/rivo/uniseg"
)

// EqualFold reports whether the view and other are equal under simple
// Unicode case folding.
func (v View) EqualFold(other View) bool {
	return strcase.EqualFold(v.transient(), other.transient())
}

// FindFold returns the index of the first case-insensitive match of pattern.
func (v View) FindFold(pattern string) int {
	i := strcase.Index(v.transient(), pattern)
	if i < 0 {
		return InvalidIndex
	}
	return i
}

// Width returns the number of monospace terminal cells the view occupies.
func (v View) Width() int {
	return uniseg.StringWidth(v.transient())
}

// GraphemeCount returns the number of user-perceived characters.
func (v View) GraphemeCount() int {
	return uniseg.GraphemeClusterCount(v.transient())
}

// ClusterChunks splits the view into pieces of at most maxLen bytes without
// breaking a grapheme cluster. A cluster longer than maxLen becomes a chunk
// of its own. An empty view has no chunks; a non-positive maxLen yields the
// whole view.
func (v View) ClusterChunks(maxLen int) []View {
	if len(v.b) == 0 {
		return nil
	}
	if maxLen <= 0 {
		return []View{v}
	}

	var tokens []View
	start, end := 0, 0
	rest := v.b
	state := -1
	for len(rest) > 0 {
		var cluster []byte
		cluster, rest, _, state = uniseg.FirstGraphemeCluster(rest, state)
		if end > start && end-start+len(cluster) > maxLen {
			tokens = append(tokens, View{b: v.b[start:end]})
			start = end
		}
		end += len(cluster)
	}
	if end > start {
		tokens = append(tokens, View{b: v.b[start:end]})
	}
	return tokens
}

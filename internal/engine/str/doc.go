// Package str provides String, a growable byte string that exclusively owns
// its buffer.
//
// A String tracks its capacity explicitly and grows geometrically: when an
// operation needs more room than the buffer has, the capacity is raised by
// two thirds at a time until the request fits, plus some headroom. Capacity
// never shrinks except through Reset.
//
// The byte after the content is always zero once a buffer is allocated, so
// CString can hand the content to C-style consumers. The terminator is kept
// for that boundary only; none of the algorithms depend on it.
//
// Basic usage:
//
//	s := str.New("hello")
//	s.Append(" world")           // "hello world"
//	s.Insert(5, ",")             // "hello, world"
//	s.Replace("world", "there")  // 1 replacement: "hello, there"
//	s.Erase(0, 7)                // "there"
//	s.Uppercase()                // "THERE"
//
// Read-only queries (Find, Split, StartsWith and so on) run over a borrowed
// view.View of the content. A view returned by View is valid until the next
// mutation of the String.
//
// A String is not safe for concurrent use.
package str

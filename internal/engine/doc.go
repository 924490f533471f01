// Package engine provides the text engine for crtext.
//
// The engine package serves as the main facade, combining owned strings,
// borrowed views, the scratch pool and Unicode case mapping behind one
// caller-owned Engine value.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - view: non-owning byte windows and every read-only algorithm
//   - str: owned, growable strings with amortized buffer growth
//   - scratch: a ring of fixed-size buffers for transient formatting
//   - unicase: UTF-8 decoding/encoding and table driven upper casing
//   - format: printf-style templates with typed arguments
//
// # Ownership
//
// There is no process-wide instance. Each Engine owns its scratch pool, and
// neither an Engine nor the values it hands out are safe for concurrent use.
// Give every goroutine its own Engine.
//
// A scratch Lease returned by Format stays valid until the pool has handed
// out as many further slots as it holds. Lease.Value reports
// ErrLeaseExpired afterwards instead of returning another caller's text.
//
// # Basic Usage
//
//	e := engine.New(engine.WithSlots(8))
//
//	// Transient formatting
//	l := e.Format("%s:%d", format.Str("line"), format.Int(42))
//	text, err := l.Value() // "line:42", nil
//
//	// Owned strings
//	s := e.NewString("  banana  ")
//	e.Trim(s)                 // "banana"
//	s.Replace("ana", "X")     // "bXna"
//
//	// Unicode upper casing
//	e.Upper("grüße") // "GRÜßE"
//
// # Paths
//
// JoinPath joins its parts with the operating system path separator:
//
//	p := e.JoinPath("addons", "bot", "conf") // "addons/bot/conf" on Unix
package engine

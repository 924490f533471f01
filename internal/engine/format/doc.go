// Package format renders printf-style templates with explicitly typed
// arguments into caller-provided buffers.
//
// Arguments are wrapped in Arg values at the call site, so the set of
// formattable types is closed and resolved without reflection on the
// caller's behalf:
//
//	var buf [64]byte
//	n := format.Format(buf[:], "%s=%d", format.Str("width"), format.Int(80))
//	// buf holds "width=80\x00", n == 8
//
// Format follows the measure-then-fill protocol of C's snprintf: it writes at
// most len(dst)-1 bytes followed by a zero terminator and always returns the
// un-truncated length. Passing a nil destination measures without writing:
//
//	n := format.Format(nil, tmpl, args...)
//	buf := make([]byte, n+1)
//	format.Format(buf, tmpl, args...)
//
// Supported placeholders are %s %d %i %u %x %X %o %c %f %F %e %E %g %G %q and
// %%, with the usual flags, width and precision. A * width or precision
// consumes the next argument, which should be an integer; a negative * width
// left-aligns and a negative * precision is ignored. C length modifiers (h,
// l, ll, z, j, t, L) are accepted and ignored. An unknown verb is copied to the
// output literally and consumes no argument.
package format

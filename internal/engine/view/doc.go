// Package view provides View, a non-owning read-only window over text, and
// every read algorithm used by the owned string type.
//
// A View never copies or owns its bytes. Views created with New share the
// backing array of the Go string they were built from; views created with
// FromBytes or FromCString borrow the caller's slice without copying, so
// later writes to the slice show through the view. Text leaving a View
// through String or Bytes is always a copy and never changes afterwards.
//
// Search functions never fail. When nothing matches they return the
// InvalidIndex sentinel, the largest representable index:
//
//	v := view.New("a,b,,c")
//	v.Find(",", 0)     // 1
//	v.Find(";", 0)     // view.InvalidIndex
//	v.Split(",")       // ["a" "b" "" "c"]
//	v.Substr(2, 100)   // "b,,c" (count clamped)
//
// Indexes and counts are always clamped or bounds-checked; no operation reads
// outside the window.
package view

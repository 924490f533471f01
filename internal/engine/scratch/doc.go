// Package scratch provides Pool, a fixed ring of fixed-size buffers for
// short-lived formatted text.
//
// Each Acquire advances a cursor around the ring and hands out the next
// slot, so a result stays intact until the pool has been asked for as many
// more buffers as it has slots. A Lease records the generation of the slot
// it was issued for and reports when the slot has since been reclaimed,
// rather than silently showing another caller's text:
//
//	p := scratch.New()
//	l := p.Format("%s/%d", format.Str("slot"), format.Int(3))
//	text, err := l.Value() // "slot/3", nil
//
// Text longer than the slot size is truncated; Lease.Truncated reports it.
//
// A Pool is not safe for concurrent use. Give each goroutine its own pool.
package scratch

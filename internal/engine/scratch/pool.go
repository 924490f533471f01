package scratch

import (
	"os"

	"github.com/charlievieth/strcase"

	"github.com/dshills/crtext/internal/engine/format"
	"github.com/dshills/crtext/internal/engine/str"
)

// slot is one buffer of the ring. data holds slotSize bytes plus room for
// the terminator.
type slot struct {
	data       []byte
	generation uint64
}

// Pool rotates through a fixed set of scratch buffers.
type Pool struct {
	slots     []slot
	slotCount int
	slotSize  int
	cursor    int
}

// New creates a pool with DefaultSlots buffers of DefaultSlotSize bytes
// unless overridden by options. Buffers are allocated up front.
func New(opts ...Option) *Pool {
	p := &Pool{
		slotCount: DefaultSlots,
		slotSize:  DefaultSlotSize,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.slots = make([]slot, p.slotCount)
	for i := range p.slots {
		p.slots[i].data = make([]byte, p.slotSize+1)
	}
	return p
}

// Slots returns the number of buffers in the ring.
func (p *Pool) Slots() int {
	return p.slotCount
}

// SlotSize returns the usable size of each buffer.
func (p *Pool) SlotSize() int {
	return p.slotSize
}

// Acquire claims the next slot in the ring, clears it and returns an empty
// lease on it. Any earlier lease on the same slot expires.
func (p *Pool) Acquire() *Lease {
	p.cursor++
	if p.cursor >= p.slotCount {
		p.cursor = 0
	}

	s := &p.slots[p.cursor]
	s.generation++
	s.data[0] = 0

	return &Lease{
		pool:       p,
		index:      p.cursor,
		generation: s.generation,
	}
}

// Format renders template with args into a fresh slot. Output beyond the
// slot size is dropped.
func (p *Pool) Format(template string, args ...format.Arg) *Lease {
	l := p.Acquire()
	n := format.Format(p.slots[l.index].data, template, args...)
	l.setLength(n)
	return l
}

// Copy places text into a fresh slot, truncating it to the slot size.
func (p *Pool) Copy(text string) *Lease {
	l := p.Acquire()
	data := p.slots[l.index].data
	n := copy(data[:p.slotSize], text)
	data[n] = 0
	l.setLength(len(text))
	return l
}

// JoinPath joins parts with the operating system path separator.
func (p *Pool) JoinPath(parts ...string) *str.String {
	items := make([]*str.String, len(parts))
	for i, part := range parts {
		items[i] = str.New(part)
	}
	return str.Join(items, string(os.PathSeparator), 0)
}

// IsEmpty reports whether text has no content.
func (p *Pool) IsEmpty(text string) bool {
	return text == ""
}

// Matches reports whether a and b are equal ignoring case.
func (p *Pool) Matches(a, b string) bool {
	return strcase.EqualFold(a, b)
}

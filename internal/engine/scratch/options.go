package scratch

// Default pool dimensions.
const (
	DefaultSlots    = 16
	DefaultSlotSize = 1024
)

// Option configures a Pool during creation.
type Option func(*Pool)

// WithSlots sets the number of buffers in the ring.
func WithSlots(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.slotCount = n
		}
	}
}

// WithSlotSize sets the usable size of each buffer in bytes.
func WithSlotSize(size int) Option {
	return func(p *Pool) {
		if size > 0 {
			p.slotSize = size
		}
	}
}

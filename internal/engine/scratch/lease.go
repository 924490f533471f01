package scratch

// Lease is a handle to the contents of one scratch slot. It stays valid
// until the pool hands the slot out again.
type Lease struct {
	pool       *Pool
	index      int
	generation uint64
	length     int // bytes stored in the slot
	logical    int // bytes the producer wanted to store
}

func (l *Lease) setLength(n int) {
	l.logical = n
	l.length = min(n, l.pool.slotSize)
}

// Valid reports whether the slot still holds this lease's text.
func (l *Lease) Valid() bool {
	return l.pool.slots[l.index].generation == l.generation
}

// Len returns the number of bytes stored, zero once the lease expired.
func (l *Lease) Len() int {
	if !l.Valid() {
		return 0
	}
	return l.length
}

// Truncated reports whether the text did not fit into the slot.
func (l *Lease) Truncated() bool {
	return l.logical > l.length
}

// Bytes returns the stored bytes. The slice aliases the slot and must not be
// retained past the next acquisitions. It is nil once the lease expired.
func (l *Lease) Bytes() []byte {
	if !l.Valid() {
		return nil
	}
	return l.pool.slots[l.index].data[:l.length]
}

// String returns a copy of the stored text, or "" once the lease expired.
func (l *Lease) String() string {
	return string(l.Bytes())
}

// Value returns a copy of the stored text or ErrLeaseExpired.
func (l *Lease) Value() (string, error) {
	if !l.Valid() {
		return "", ErrLeaseExpired
	}
	return l.String(), nil
}

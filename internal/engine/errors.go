package engine

import "github.com/dshills/crtext/internal/engine/scratch"

// Errors returned by engine operations.
var (
	// ErrLeaseExpired indicates a scratch lease outlived its slot.
	ErrLeaseExpired = scratch.ErrLeaseExpired
)

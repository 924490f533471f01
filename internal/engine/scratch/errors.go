package scratch

import "errors"

// ErrLeaseExpired indicates the slot behind a lease was handed out again.
var ErrLeaseExpired = errors.New("scratch lease expired")

package watch

import "errors"

// Watcher errors.
var (
	// ErrWatcherClosed indicates the watcher has been closed.
	ErrWatcherClosed = errors.New("watcher closed")

	// ErrPathNotExist indicates the path to watch does not exist.
	ErrPathNotExist = errors.New("path does not exist")

	// ErrNotFile indicates the path is a directory.
	ErrNotFile = errors.New("path is a directory")

	// ErrNilHandler indicates New was called without a handler.
	ErrNilHandler = errors.New("nil handler")
)

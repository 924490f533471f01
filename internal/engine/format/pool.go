package format

import "sync"

// maxPooledBuffer caps the capacity of buffers returned to the pool.
const maxPooledBuffer = 64 * 1024

// bufferPool recycles render buffers between Format calls.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return new(renderBuffer)
	},
}

// renderBuffer wraps a byte slice for pooling.
type renderBuffer struct {
	buf []byte
}

// getBuffer retrieves an empty buffer with at least the given capacity.
func getBuffer(capacity int) *renderBuffer {
	w := bufferPool.Get().(*renderBuffer)
	if cap(w.buf) < capacity {
		w.buf = make([]byte, 0, capacity)
	} else {
		w.buf = w.buf[:0]
	}
	return w
}

// putBuffer returns a buffer to the pool.
func putBuffer(w *renderBuffer) {
	if w == nil {
		return
	}
	// Only keep reasonably sized buffers
	if cap(w.buf) <= maxPooledBuffer {
		w.buf = w.buf[:0]
		bufferPool.Put(w)
	}
}

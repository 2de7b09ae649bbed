// Package pool provides pooled byte buffers for export encoding scratch space.
package pool

import (
	"io"
	"sync"
)

const (
	// ExportBufferDefaultSize is the initial capacity of pooled export buffers.
	// Sized for a few thousand samples of encoded payload.
	ExportBufferDefaultSize = 1024 * 16 // 16KiB

	// ExportBufferMaxThreshold is the largest buffer the pool retains.
	// Buffers that grew past this are dropped instead of pooled.
	ExportBufferMaxThreshold = 1024 * 128 // 128KiB
)

// ByteBuffer is a growable byte slice with append-oriented helpers.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// WriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. Small buffers grow by ExportBufferDefaultSize, larger ones by
// 25% of current capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := ExportBufferDefaultSize
	if cap(bb.B) > 4*ExportBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends the contents of data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the contents of the buffer to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool is a sync.Pool of ByteBuffers with a retention threshold to
// avoid holding on to oversized buffers.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize and are
// discarded on Put once their capacity exceeds maxThreshold.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var exportDefaultPool = NewByteBufferPool(ExportBufferDefaultSize, ExportBufferMaxThreshold)

// GetExportBuffer retrieves a ByteBuffer from the default export pool.
func GetExportBuffer() *ByteBuffer {
	return exportDefaultPool.Get()
}

// PutExportBuffer returns a ByteBuffer to the default export pool.
func PutExportBuffer(bb *ByteBuffer) {
	exportDefaultPool.Put(bb)
}

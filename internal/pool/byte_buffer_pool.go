package pool

import (
	"io"
	"sync"
)

// Default sizes for the pooled ByteBuffers.
//
// Tag buffers hold the data block of a single tag; most curve and text tags
// fit in a few hundred bytes, so the default is deliberately small. Profile
// buffers hold a complete assembled profile; typical matrix/TRC profiles are
// well under 16KiB, while LUT-heavy printer profiles can reach several
// hundred KiB, which the threshold still allows to be recycled.
const (
	TagBufferDefaultSize      = 1024        // 1KiB
	TagBufferMaxThreshold     = 1024 * 64   // 64KiB
	ProfileBufferDefaultSize  = 1024 * 16   // 16KiB
	ProfileBufferMaxThreshold = 1024 * 1024 // 1MiB
)

type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
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

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without
// reallocating. If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For small buffers, grow by TagBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory
//     usage and reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return // Sufficient capacity
	}

	growBy := TagBufferDefaultSize
	if cap(bb.B) > 4*TagBufferDefaultSize {
		// For larger buffers, grow by 25% to balance memory and reallocation cost
		growBy = cap(bb.B) / 4
	}

	// Ensure we grow enough for at least the required bytes
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

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers.
// The pool can be configured with a maximum size threshold to avoid retaining
// overly large buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum size threshold for buffers
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
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

var (
	tagDefaultPool     = NewByteBufferPool(TagBufferDefaultSize, TagBufferMaxThreshold)
	profileDefaultPool = NewByteBufferPool(ProfileBufferDefaultSize, ProfileBufferMaxThreshold)
)

// GetTagBuffer retrieves a ByteBuffer from the default tag data pool.
func GetTagBuffer() *ByteBuffer {
	return tagDefaultPool.Get()
}

// PutTagBuffer returns a ByteBuffer to the default tag data pool.
func PutTagBuffer(bb *ByteBuffer) {
	tagDefaultPool.Put(bb)
}

// GetProfileBuffer retrieves a ByteBuffer from the default profile pool.
func GetProfileBuffer() *ByteBuffer {
	return profileDefaultPool.Get()
}

// PutProfileBuffer returns a ByteBuffer to the default profile pool.
func PutProfileBuffer(bb *ByteBuffer) {
	profileDefaultPool.Put(bb)
}

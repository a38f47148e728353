package encoding

import (
	"math"

	"github.com/arloliu/iccenc/endian"
	"github.com/arloliu/iccenc/internal/pool"
)

// Writer is the primitive write capability the curve encoders are built on.
//
// Each method appends one value in its ICC wire encoding to the underlying
// sink and returns the number of bytes written. Implementations never fail;
// out-of-range fixed-point inputs saturate to the representable range, which
// the format treats as expected precision loss rather than an error.
//
// A Writer is not safe for concurrent use. Byte order within the sink is the
// entire contract, so the caller must serialize all writes for one profile
// through a single goroutine.
type Writer interface {
	// WriteUInt16 writes a big-endian unsigned 16-bit integer (2 bytes).
	WriteUInt16(v uint16) int
	// WriteUInt32 writes a big-endian unsigned 32-bit integer (4 bytes).
	WriteUInt32(v uint32) int
	// WriteUInt64 writes a big-endian unsigned 64-bit integer (8 bytes).
	WriteUInt64(v uint64) int
	// WriteFix16 writes a signed s15Fixed16 fixed-point number (4 bytes).
	WriteFix16(v float64) int
	// WriteUFix16 writes an unsigned u16Fixed16 fixed-point number (4 bytes).
	WriteUFix16(v float64) int
	// WriteUFix8 writes an unsigned u8Fixed8 fixed-point number (2 bytes).
	WriteUFix8(v float64) int
	// WriteSingle writes v narrowed to an IEEE-754 single (4 bytes).
	WriteSingle(v float64) int
	// WriteEmpty writes n reserved zero bytes.
	WriteEmpty(n int) int
	// WriteBytes writes b verbatim.
	WriteBytes(b []byte) int
	// WriteASCII writes the bytes of s verbatim.
	WriteASCII(s string) int
	// WriteXYZ writes a tristimulus vector as three s15Fixed16 numbers (12 bytes).
	WriteXYZ(v XYZNumber) int
	// WriteResponseNumber writes a response number as a uint16 device code
	// followed by an s15Fixed16 measurement value (6 bytes).
	WriteResponseNumber(v ResponseNumber) int
}

// BufferWriter is a Writer backed by a pooled in-memory buffer.
type BufferWriter struct {
	buf     *pool.ByteBuffer
	engine  endian.EndianEngine
	release func(*pool.ByteBuffer)
}

var _ Writer = (*BufferWriter)(nil)

// NewBufferWriter creates a buffer-backed Writer using the specified endian
// engine. ICC data is big-endian, so this is almost always
// endian.GetBigEndianEngine().
//
// The writer borrows its buffer from the tag buffer pool; call Reset when
// done to return it.
func NewBufferWriter(engine endian.EndianEngine) *BufferWriter {
	return &BufferWriter{
		engine:  engine,
		buf:     pool.GetTagBuffer(),
		release: pool.PutTagBuffer,
	}
}

// NewProfileBufferWriter is NewBufferWriter backed by the larger profile
// buffer pool, for callers assembling a whole profile rather than a single
// tag data block.
func NewProfileBufferWriter(engine endian.EndianEngine) *BufferWriter {
	return &BufferWriter{
		engine:  engine,
		buf:     pool.GetProfileBuffer(),
		release: pool.PutProfileBuffer,
	}
}

// WriteUInt16 writes a big-endian unsigned 16-bit integer.
func (w *BufferWriter) WriteUInt16(v uint16) int {
	w.buf.B = w.engine.AppendUint16(w.buf.B, v)
	return 2
}

// WriteUInt32 writes a big-endian unsigned 32-bit integer.
func (w *BufferWriter) WriteUInt32(v uint32) int {
	w.buf.B = w.engine.AppendUint32(w.buf.B, v)
	return 4
}

// WriteUInt64 writes a big-endian unsigned 64-bit integer.
func (w *BufferWriter) WriteUInt64(v uint64) int {
	w.buf.B = w.engine.AppendUint64(w.buf.B, v)
	return 8
}

// WriteFix16 writes v as a signed s15Fixed16 fixed-point number.
// Values outside [-32768, 32767+65535/65536] saturate.
func (w *BufferWriter) WriteFix16(v float64) int {
	return w.WriteUInt32(fix16(v))
}

// WriteUFix16 writes v as an unsigned u16Fixed16 fixed-point number.
// Values outside [0, 65535+65535/65536] saturate.
func (w *BufferWriter) WriteUFix16(v float64) int {
	return w.WriteUInt32(ufix16(v))
}

// WriteUFix8 writes v as an unsigned u8Fixed8 fixed-point number.
// Values outside [0, 255+255/256] saturate.
func (w *BufferWriter) WriteUFix8(v float64) int {
	return w.WriteUInt16(ufix8(v))
}

// WriteSingle writes v narrowed to an IEEE-754 single-precision float.
func (w *BufferWriter) WriteSingle(v float64) int {
	return w.WriteUInt32(math.Float32bits(float32(v)))
}

// WriteEmpty writes n reserved zero bytes.
func (w *BufferWriter) WriteEmpty(n int) int {
	w.buf.Grow(n)
	for i := 0; i < n; i++ {
		w.buf.B = append(w.buf.B, 0)
	}

	return n
}

// WriteBytes writes b verbatim.
func (w *BufferWriter) WriteBytes(b []byte) int {
	w.buf.MustWrite(b)
	return len(b)
}

// WriteASCII writes the bytes of s verbatim.
func (w *BufferWriter) WriteASCII(s string) int {
	w.buf.B = append(w.buf.B, s...)
	return len(s)
}

// WriteXYZ writes a tristimulus vector as three s15Fixed16 numbers.
func (w *BufferWriter) WriteXYZ(v XYZNumber) int {
	return w.WriteFix16(v.X) + w.WriteFix16(v.Y) + w.WriteFix16(v.Z)
}

// WriteResponseNumber writes a response number as device code + measurement.
func (w *BufferWriter) WriteResponseNumber(v ResponseNumber) int {
	return w.WriteUInt16(v.DeviceCode) + w.WriteFix16(v.Measurement)
}

// Bytes returns the encoded bytes. The slice is only valid until the next
// write or Reset.
func (w *BufferWriter) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *BufferWriter) Len() int {
	return w.buf.Len()
}

// Truncate discards all but the first n encoded bytes.
func (w *BufferWriter) Truncate(n int) {
	w.buf.B = w.buf.B[:n]
}

// Reset returns the internal buffer to the pool. The writer must not be
// used afterwards.
func (w *BufferWriter) Reset() {
	if w.buf != nil {
		w.release(w.buf)
		w.buf = nil
	}
}

const (
	maxS15Fixed16 = 32767.0 + 65535.0/65536.0
	minS15Fixed16 = -32768.0
	maxU16Fixed16 = 65535.0 + 65535.0/65536.0
	maxU8Fixed8   = 255.0 + 255.0/256.0
)

func fix16(v float64) uint32 {
	if v >= maxS15Fixed16 {
		return 0x7FFFFFFF
	}
	if v <= minS15Fixed16 {
		return 0x80000000
	}

	return uint32(int32(math.Round(v * 65536.0)))
}

func ufix16(v float64) uint32 {
	if v >= maxU16Fixed16 {
		return 0xFFFFFFFF
	}
	if v <= 0 {
		return 0
	}

	return uint32(math.Round(v * 65536.0))
}

func ufix8(v float64) uint16 {
	if v >= maxU8Fixed8 {
		return 0xFFFF
	}
	if v <= 0 {
		return 0
	}

	return uint16(math.Round(v * 256.0))
}

package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, bb.Cap())

	n, err := bb.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, 3, bb.Len())
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())

	bb.MustWrite([]byte{4, 5})
	require.Equal(t, []byte{1, 2, 3, 4, 5}, bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte{1, 2, 3})
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 16)
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte{1, 2, 3, 4})

	bb.Grow(4)
	require.Equal(t, 4, bb.Len()) // Grow must not change the length

	// Force a reallocation and verify contents survive
	bb.Grow(1 << 16)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 1<<16)
	require.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("acsp"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.Equal(t, "acsp", out.String())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte{1, 2, 3})
	p.Put(bb)

	// Reused buffers come back empty.
	bb2 := p.Get()
	require.Equal(t, 0, bb2.Len())
	p.Put(bb2)

	// nil is a no-op
	p.Put(nil)
}

func TestByteBufferPool_Threshold(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	bb.Grow(1024) // exceeds the 64-byte retention threshold
	p.Put(bb)     // must be discarded, not pooled

	bb2 := p.Get()
	require.LessOrEqual(t, bb2.Cap(), 1024)
	p.Put(bb2)
}

func TestDefaultPools(t *testing.T) {
	tb := GetTagBuffer()
	require.NotNil(t, tb)
	require.Equal(t, 0, tb.Len())
	PutTagBuffer(tb)

	pb := GetProfileBuffer()
	require.NotNil(t, pb)
	require.Equal(t, 0, pb.Len())
	PutProfileBuffer(pb)
}

package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B))
	assert.Equal(t, capacity, cap(bb.B))
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(EncodedBufferDefaultSize)
	bb.MustWrite([]byte("hello"))

	assert.Equal(t, []byte("hello"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(EncodedBufferDefaultSize)
	bb.MustWrite([]byte("some data"))
	cap1 := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, cap1, bb.Cap(), "Reset retains the allocated capacity")
}

func TestByteBuffer_MustWrite_Grows(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte("0123456789"))

	assert.Equal(t, 10, bb.Len())
	assert.Equal(t, []byte("0123456789"), bb.Bytes())
	assert.GreaterOrEqual(t, bb.Cap(), 10)
}

func TestByteBuffer_Grow_NoopWhenSufficientCapacity(t *testing.T) {
	bb := NewByteBuffer(64)
	before := bb.Cap()

	bb.Grow(10)

	assert.Equal(t, before, bb.Cap())
}

func TestByteBuffer_Grow_LargeBuffer25Percent(t *testing.T) {
	bb := NewByteBuffer(5 * EncodedBufferDefaultSize)
	bb.B = bb.B[:bb.Cap()] // simulate a full buffer
	before := bb.Cap()

	bb.Grow(1)

	assert.Greater(t, bb.Cap(), before)
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(EncodedBufferDefaultSize)

	n, err := bb.Write([]byte("abc"))

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("abc"), bb.Bytes())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))

	p.Put(bb)

	bb2 := p.Get()
	require.NotNil(t, bb2)
	assert.Equal(t, 0, bb2.Len(), "buffer returned to the pool is reset before reuse")
}

func TestByteBufferPool_Put_DiscardsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(4, 8)

	bb := NewByteBuffer(4)
	bb.Grow(100) // exceeds maxThreshold

	p.Put(bb) // should be silently discarded, not pooled

	fresh := p.Get()
	assert.Less(t, fresh.Cap(), 100)
}

func TestByteBufferPool_Put_Nil(t *testing.T) {
	p := NewByteBufferPool(4, 8)

	assert.NotPanics(t, func() { p.Put(nil) })
}

func TestDefaultPool(t *testing.T) {
	bb := Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("x"))

	Put(bb)
}

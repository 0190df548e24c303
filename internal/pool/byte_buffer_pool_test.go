package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(4)
	require.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, "hello"...)
	require.Equal(t, 5, bb.Len())
	require.Equal(t, []byte("hello"), bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, cap(bb.B), 5)
}

func TestByteBuffer_Grow(t *testing.T) {
	tests := []struct {
		name     string
		initCap  int
		fill     int
		required int
		minCap   int
	}{
		{"sufficient capacity", 64, 10, 20, 64},
		{"small buffer grows by default size", 16, 16, 1, 16 + PayloadBufferDefaultSize},
		{"large buffer grows by a quarter", 8 * PayloadBufferDefaultSize, 8 * PayloadBufferDefaultSize, 1, 10 * PayloadBufferDefaultSize},
		{"required exceeds default growth", 0, 0, 3 * PayloadBufferDefaultSize, 3 * PayloadBufferDefaultSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := NewByteBuffer(tt.initCap)
			for i := range tt.fill {
				bb.B = append(bb.B, byte(i))
			}
			before := append([]byte(nil), bb.B...)

			bb.Grow(tt.required)
			require.GreaterOrEqual(t, cap(bb.B)-bb.Len(), tt.required)
			require.GreaterOrEqual(t, cap(bb.B), tt.minCap)
			require.Equal(t, before, bb.Bytes())
		})
	}
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	bb.B = append(bb.B, "abc"...)
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len())

	p.Put(nil)

	oversized := NewByteBuffer(128)
	p.Put(oversized)
}

func TestPayloadBuffer_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range 100 {
				bb := GetPayloadBuffer()
				require.Equal(t, 0, bb.Len())
				bb.B = append(bb.B, byte(id))
				PutPayloadBuffer(bb)
			}
		}(i)
	}
	wg.Wait()
}

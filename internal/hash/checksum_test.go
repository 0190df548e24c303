package hash

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Checksum([]byte(tt.data)))
		})
	}
}

func TestChecksum_DetectsBitFlip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(rng.IntN(256))
	}

	for _, pos := range []int{0, 500, 999} {
		flipped := append([]byte(nil), data...)
		flipped[pos] ^= 0x01
		require.NotEqual(t, Checksum(data), Checksum(flipped))
	}
}

func BenchmarkChecksum(b *testing.B) {
	data := make([]byte, 16*1024)
	b.SetBytes(int64(len(data)))
	for b.Loop() {
		Checksum(data)
	}
}

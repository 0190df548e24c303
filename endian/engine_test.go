package endian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngine_Float64Bits(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		first  byte
	}{
		{"little", GetLittleEndianEngine(), 0x18},
		{"big", GetBigEndianEngine(), 0x40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// math.Pi is 0x400921FB54442D18.
			buf := tt.engine.AppendUint64(nil, math.Float64bits(math.Pi))
			require.Len(t, buf, 8)
			require.Equal(t, tt.first, buf[0])
			require.Equal(t, math.Pi, math.Float64frombits(tt.engine.Uint64(buf)))
		})
	}
}

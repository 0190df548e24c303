package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorageType(t *testing.T) {
	require.Equal(t, "Array", StorageArray.String())
	require.Equal(t, "Linked", StorageLinked.String())
	require.Equal(t, "Unknown", StorageType(0).String())

	require.True(t, StorageArray.Valid())
	require.True(t, StorageLinked.Valid())
	require.False(t, StorageType(0).Valid())
	require.False(t, StorageType(3).Valid())
}

func TestParseStorageType(t *testing.T) {
	tests := []struct {
		name string
		want StorageType
		ok   bool
	}{
		{"array", StorageArray, true},
		{" Array ", StorageArray, true},
		{"linked", StorageLinked, true},
		{"LIST", StorageLinked, true},
		{"LinkedList", StorageLinked, true},
		{"tree", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseStorageType(tt.name)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCompressionType(t *testing.T) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		require.True(t, c.Valid(), c.String())

		parsed, ok := ParseCompressionType(c.String())
		require.True(t, ok)
		require.Equal(t, c, parsed)
	}

	require.False(t, CompressionType(0).Valid())
	require.False(t, CompressionType(5).Valid())
	require.Equal(t, "Unknown", CompressionType(0).String())

	_, ok := ParseCompressionType("brotli")
	require.False(t, ok)
}

func TestEncodingType(t *testing.T) {
	require.Equal(t, "Raw", EncodingRaw.String())
	require.Equal(t, "Gorilla", EncodingGorilla.String())
	require.Equal(t, "Unknown", EncodingType(0).String())
	require.True(t, EncodingRaw.Valid())
	require.True(t, EncodingGorilla.Valid())
	require.False(t, EncodingType(3).Valid())
}

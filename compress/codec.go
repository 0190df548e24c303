package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/tabula/errs"
	"github.com/arloliu/tabula/format"
)

// Compressor compresses a complete payload in one call.
type Compressor interface {
	// Compress returns the compressed form of data. The input is not modified;
	// the result may alias it only for the no-op codec.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	// Decompress returns the original payload, or an error if data is
	// corrupted or was produced by a different algorithm. Output beyond limit
	// bytes is never materialized; the call fails with errs.ErrPayloadTooLarge
	// instead.
	Decompress(data []byte, limit int) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes the outcome of compressing one payload.
type Stats struct {
	// Algorithm identifies the codec used.
	Algorithm format.CompressionType
	// OriginalSize is the payload size before compression.
	OriginalSize int
	// CompressedSize is the payload size after compression.
	CompressedSize int
}

// Ratio returns CompressedSize / OriginalSize, or 0 for an empty payload.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage of the original size.
func (s Stats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return (1 - s.Ratio()) * 100
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for compressionType.
//
// Returns an error wrapping errs.ErrUnsupportedCompression for unknown types.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrUnsupportedCompression, compressionType, uint8(compressionType))
}

// readLimited drains r, failing once more than limit bytes come out.
func readLimited(r io.Reader, limit int) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		return nil, sizeLimitError(limit)
	}

	return out, nil
}

func sizeLimitError(limit int) error {
	return fmt.Errorf("%w: decompressed size exceeds %d bytes", errs.ErrPayloadTooLarge, limit)
}

// Measure compresses data with the codec for compressionType and reports the
// resulting sizes alongside the compressed bytes.
func Measure(compressionType format.CompressionType, data []byte) ([]byte, Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, Stats{}, err
	}

	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, err
	}

	return compressed, Stats{
		Algorithm:      compressionType,
		OriginalSize:   len(data),
		CompressedSize: len(compressed),
	}, nil
}

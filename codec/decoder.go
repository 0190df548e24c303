package codec

import (
	"fmt"

	"github.com/arloliu/tabula"
	"github.com/arloliu/tabula/compress"
	"github.com/arloliu/tabula/errs"
	"github.com/arloliu/tabula/format"
	"github.com/arloliu/tabula/internal/encoding"
	"github.com/arloliu/tabula/internal/hash"
	"github.com/arloliu/tabula/internal/options"
	"github.com/arloliu/tabula/section"
	"github.com/arloliu/tabula/tabulated"
)

// Decode rebuilds a function from data produced by Encode.
//
// Parameters:
//   - data: Encoded function; bytes after the declared payload are rejected
//   - opts: WithStorage, WithChecksumVerification, WithCapacity
//
// Returns:
//   - tabulated.Function: The decoded function
//   - error: Header errors (ErrInvalidHeaderSize, ErrInvalidMagic,
//     ErrUnsupportedStorage, ErrUnsupportedCompression), ErrInvalidPayload
//     (also wrapping ErrPayloadTooLarge when the payload inflates past the
//     declared raw size), ErrChecksumMismatch, or ErrInvalidConstruction when
//     the decoded samples are not strictly increasing
func Decode(data []byte, opts ...DecoderOption) (tabulated.Function, error) {
	cfg := NewDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	raw, err := decodePayload(header, data[section.HeaderSize:])
	if err != nil {
		return nil, err
	}

	if cfg.verifyChecksum && header.Flag.HasChecksum() {
		if sum := hash.Checksum(raw); sum != header.Checksum {
			return nil, fmt.Errorf("%w: computed 0x%016x, header 0x%016x", errs.ErrChecksumMismatch, sum, header.Checksum)
		}
	}

	storage := header.Flag.StorageType()
	if cfg.storage != 0 {
		storage = cfg.storage
	}

	points, err := readPoints(raw, header)
	if err != nil {
		return nil, err
	}

	factoryOpts := append([]tabula.Option{tabula.WithStorage(storage)}, cfg.factoryOpts...)

	return tabula.NewFromPoints(points, factoryOpts...)
}

// decodePayload checks the declared sizes and decompresses the payload.
func decodePayload(header section.Header, payload []byte) ([]byte, error) {
	if uint64(len(payload)) != uint64(header.PayloadSize) {
		return nil, fmt.Errorf("%w: payload is %d bytes, header declares %d",
			errs.ErrInvalidPayload, len(payload), header.PayloadSize)
	}
	if header.PointCount < tabulated.MinPoints {
		return nil, fmt.Errorf("%w: point count %d, minimum is %d",
			errs.ErrInvalidPayload, header.PointCount, tabulated.MinPoints)
	}
	if err := checkRawSize(header); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(header.Flag.CompressionType())
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(payload, int(header.RawSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}
	if uint64(len(raw)) != uint64(header.RawSize) {
		return nil, fmt.Errorf("%w: decompressed %d bytes, header declares %d",
			errs.ErrInvalidPayload, len(raw), header.RawSize)
	}

	return raw, nil
}

// checkRawSize rejects headers whose point count cannot fit in RawSize, before
// anything is sized from the point count.
func checkRawSize(header section.Header) error {
	count, rawSize := uint64(header.PointCount), uint64(header.RawSize)

	if header.Flag.ColumnEncoding() == format.EncodingRaw {
		if count*section.PointSize != rawSize {
			return fmt.Errorf("%w: raw size %d does not hold %d points", errs.ErrInvalidPayload, rawSize, count)
		}

		return nil
	}

	// A Gorilla column takes 64 bits for its first value and at least one bit
	// for each following value.
	if minBits := 2 * (64 + count - 1); minBits > rawSize*8 {
		return fmt.Errorf("%w: raw size %d is too small for %d gorilla encoded points",
			errs.ErrInvalidPayload, rawSize, count)
	}

	return nil
}

// readPoints decodes the x and y columns. The columns must account for every
// byte of raw.
func readPoints(raw []byte, header section.Header) ([]tabulated.Point, error) {
	count := int(header.PointCount)

	decode := func(data []byte) ([]float64, int, error) {
		return encoding.DecodeGorilla(data, count)
	}
	if header.Flag.ColumnEncoding() == format.EncodingRaw {
		engine := header.Flag.GetEndianEngine()
		decode = func(data []byte) ([]float64, int, error) {
			return encoding.DecodeRaw(data, engine, count)
		}
	}

	xs, n, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("x column: %w", err)
	}
	ys, m, err := decode(raw[n:])
	if err != nil {
		return nil, fmt.Errorf("y column: %w", err)
	}
	if n+m != len(raw) {
		return nil, fmt.Errorf("%w: columns use %d of %d bytes", errs.ErrInvalidPayload, n+m, len(raw))
	}

	points := make([]tabulated.Point, count)
	for i := range points {
		points[i] = tabulated.Point{X: xs[i], Y: ys[i]}
	}

	return points, nil
}

package codec

import (
	"fmt"
	"iter"

	"github.com/arloliu/tabula/compress"
	"github.com/arloliu/tabula/errs"
	"github.com/arloliu/tabula/format"
	"github.com/arloliu/tabula/internal/encoding"
	"github.com/arloliu/tabula/internal/hash"
	"github.com/arloliu/tabula/internal/options"
	"github.com/arloliu/tabula/internal/pool"
	"github.com/arloliu/tabula/section"
	"github.com/arloliu/tabula/tabulated"
)

// Encode serializes fn into a new byte slice.
//
// Parameters:
//   - fn: Function to encode; its storage is recorded in the header
//   - opts: WithCompression, WithColumnEncoding, WithLittleEndian/WithBigEndian,
//     WithChecksum
//
// Returns:
//   - []byte: Header followed by the compressed payload
//   - error: Option errors, ErrUnsupportedStorage for a foreign storage, or
//     ErrInvalidPayload if the function is too large for the header
func Encode(fn tabulated.Function, opts ...EncoderOption) ([]byte, error) {
	cfg := NewEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	storage := fn.Storage()
	if !storage.Valid() {
		return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrUnsupportedStorage, storage, uint8(storage))
	}

	count := fn.PointCount()
	if uint64(count)*section.PointSize > section.MaxPayload {
		return nil, fmt.Errorf("%w: %d points exceed the maximum payload size", errs.ErrInvalidPayload, count)
	}

	header := section.Header{
		Flag:       section.NewFlag(storage, cfg.compression),
		PointCount: uint32(count), //nolint:gosec // G115: bounded by MaxPayload above
	}
	header.Flag.SetColumnEncoding(cfg.encoding)
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.Grow(count * section.PointSize)
	buf.B = appendColumns(buf.B, fn, header)
	if uint64(buf.Len()) > section.MaxPayload {
		return nil, fmt.Errorf("%w: encoded columns of %d bytes exceed the maximum", errs.ErrInvalidPayload, buf.Len())
	}
	raw := buf.Bytes()
	header.RawSize = uint32(buf.Len()) //nolint:gosec // G115: bounded by MaxPayload above

	if cfg.checksum {
		header.Flag.SetHasChecksum(true)
		header.Checksum = hash.Checksum(raw)
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(raw)
	if err != nil {
		return nil, err
	}
	if uint64(len(payload)) > section.MaxPayload {
		return nil, fmt.Errorf("%w: compressed payload of %d bytes exceeds the maximum", errs.ErrInvalidPayload, len(payload))
	}
	header.PayloadSize = uint32(len(payload))

	// payload may alias the pooled buffer, so it is copied before returning.
	out := make([]byte, 0, section.HeaderSize+len(payload))
	out = header.AppendTo(out)
	out = append(out, payload...)

	return out, nil
}

// appendColumns appends the x column and then the y column of fn in the
// column encoding selected by header.
func appendColumns(buf []byte, fn tabulated.Function, header section.Header) []byte {
	if header.Flag.ColumnEncoding() == format.EncodingGorilla {
		for _, col := range []iter.Seq[float64]{xs(fn), ys(fn)} {
			enc := encoding.NewGorillaEncoder(buf)
			for v := range col {
				enc.Write(v)
			}
			buf = enc.Finish()
		}

		return buf
	}

	engine := header.Flag.GetEndianEngine()
	buf = encoding.AppendRaw(buf, engine, xs(fn))
	buf = encoding.AppendRaw(buf, engine, ys(fn))

	return buf
}

func xs(fn tabulated.Function) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, p := range fn.All() {
			if !yield(p.X) {
				return
			}
		}
	}
}

func ys(fn tabulated.Function) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, p := range fn.All() {
			if !yield(p.Y) {
				return
			}
		}
	}
}

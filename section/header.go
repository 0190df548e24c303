package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/tabula/errs"
)

// Header is the fixed-size section at the start of an encoded function.
type Header struct {
	// Flag is the packed magic, options, storage and compression (bytes 0-3).
	Flag Flag
	// PointCount is the number of samples (bytes 4-7).
	PointCount uint32
	// PayloadSize is the stored payload size after compression (bytes 8-11).
	PayloadSize uint32
	// RawSize is the payload size before compression (bytes 12-15).
	RawSize uint32
	// Checksum is the xxHash64 of the uncompressed payload, or 0 when the
	// checksum bit is clear (bytes 16-23).
	Checksum uint64
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not HeaderSize bytes, or flag validation errors
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.Storage = data[2]
	h.Flag.Compression = data[3]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.PointCount = engine.Uint32(data[4:8])
	h.PayloadSize = engine.Uint32(data[8:12])
	h.RawSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])

	return nil
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to buf.
func (h *Header) AppendTo(buf []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	buf = binary.LittleEndian.AppendUint16(buf, h.Flag.Options)
	buf = append(buf, h.Flag.Storage, h.Flag.Compression)
	buf = engine.AppendUint32(buf, h.PointCount)
	buf = engine.AppendUint32(buf, h.PayloadSize)
	buf = engine.AppendUint32(buf, h.RawSize)
	buf = engine.AppendUint64(buf, h.Checksum)

	return buf
}

// ParseHeader parses a Header from the first HeaderSize bytes of data.
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, want at least %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}

package section

import (
	"fmt"

	"github.com/arloliu/tabula/endian"
	"github.com/arloliu/tabula/errs"
	"github.com/arloliu/tabula/format"
)

// Flag is the packed first four bytes of a header.
type Flag struct {
	// Options holds the magic number in bits 4-15 and option bits in 0-3.
	Options uint16
	// Storage is the format.StorageType the function was encoded from.
	Storage uint8
	// Compression is the format.CompressionType applied to the payload.
	Compression uint8
}

// NewFlag creates a little-endian flag without checksum for the given storage
// and compression.
func NewFlag(storage format.StorageType, compression format.CompressionType) Flag {
	return Flag{
		Options:     MagicFunctionV1Opt,
		Storage:     uint8(storage),
		Compression: uint8(compression),
	}
}

// HasChecksum returns whether the header carries a payload checksum.
func (f Flag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetHasChecksum enables or disables the checksum bit.
func (f *Flag) SetHasChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// IsLittleEndian returns whether the data is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the data is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// ColumnEncoding returns how the x and y columns are encoded.
func (f Flag) ColumnEncoding() format.EncodingType {
	if f.Options&GorillaMask != 0 {
		return format.EncodingGorilla
	}

	return format.EncodingRaw
}

// SetColumnEncoding selects the column encoding. Unknown encodings select raw.
func (f *Flag) SetColumnEncoding(enc format.EncodingType) {
	if enc == format.EncodingGorilla {
		f.Options |= GorillaMask
	} else {
		f.Options &^= GorillaMask
	}
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicFunctionV1Opt
}

// StorageType returns the storage recorded in the flag.
func (f Flag) StorageType() format.StorageType {
	return format.StorageType(f.Storage)
}

// CompressionType returns the payload compression recorded in the flag.
func (f Flag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks the magic number, reserved bits, storage and compression.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagic, f.GetMagicNumber())
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set in 0x%04x", errs.ErrInvalidHeaderFlags, f.Options)
	}
	if !f.StorageType().Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedStorage, f.Storage)
	}
	if !f.CompressionType().Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrUnsupportedCompression, f.Compression)
	}

	return nil
}

// GetEndianEngine returns the engine for the flag's byte order.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

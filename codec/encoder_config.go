package codec

import (
	"fmt"

	"github.com/arloliu/tabula/errs"
	"github.com/arloliu/tabula/format"
	"github.com/arloliu/tabula/internal/options"
)

// EncoderConfig holds the settings for Encode.
type EncoderConfig struct {
	compression format.CompressionType
	encoding    format.EncodingType
	bigEndian   bool
	checksum    bool
}

// NewEncoderConfig returns the defaults: raw columns with Zstd compression,
// little-endian byte order and a payload checksum.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		compression: format.CompressionZstd,
		encoding:    format.EncodingRaw,
		checksum:    true,
	}
}

// EncoderOption configures Encode.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression sets the payload compression.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if !comp.Valid() {
			return fmt.Errorf("%w: %w: %s (0x%02x)", errs.ErrInvalidOption, errs.ErrUnsupportedCompression, comp, uint8(comp))
		}
		c.compression = comp

		return nil
	})
}

// WithColumnEncoding sets how the x and y columns are laid out before
// compression. Gorilla suits smooth or regularly spaced samples.
func WithColumnEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if !enc.Valid() {
			return fmt.Errorf("%w: unsupported column encoding: %s (0x%02x)", errs.ErrInvalidOption, enc, uint8(enc))
		}
		c.encoding = enc

		return nil
	})
}

// WithLittleEndian sets little-endian byte order. It is the default option.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.bigEndian = false
	})
}

// WithBigEndian sets big-endian byte order.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.bigEndian = true
	})
}

// WithChecksum enables or disables the payload checksum. It is enabled by
// default.
func WithChecksum(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.checksum = enabled
	})
}

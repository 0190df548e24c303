package codec

import (
	"fmt"

	"github.com/arloliu/tabula"
	"github.com/arloliu/tabula/errs"
	"github.com/arloliu/tabula/format"
	"github.com/arloliu/tabula/internal/options"
)

// DecoderConfig holds the settings for Decode.
type DecoderConfig struct {
	storage        format.StorageType
	verifyChecksum bool
	factoryOpts    []tabula.Option
}

// NewDecoderConfig returns the defaults: use the header's storage and verify
// the checksum when one is present.
func NewDecoderConfig() *DecoderConfig {
	return &DecoderConfig{verifyChecksum: true}
}

// DecoderOption configures Decode.
type DecoderOption = options.Option[*DecoderConfig]

// WithStorage rebuilds the function with storage instead of the one recorded
// in the header.
func WithStorage(storage format.StorageType) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if !storage.Valid() {
			return fmt.Errorf("%w: %w: %s (0x%02x)", errs.ErrInvalidOption, errs.ErrUnsupportedStorage, storage, uint8(storage))
		}
		c.storage = storage

		return nil
	})
}

// WithChecksumVerification enables or disables checksum verification. It is
// enabled by default; headers without a checksum are never verified.
func WithChecksumVerification(enabled bool) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.verifyChecksum = enabled
	})
}

// WithCapacity reserves room for n samples in the decoded function.
func WithCapacity(n int) DecoderOption {
	return options.NoError(func(c *DecoderConfig) {
		c.factoryOpts = append(c.factoryOpts, tabula.WithCapacity(n))
	})
}

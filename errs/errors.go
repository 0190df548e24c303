// Package errs defines the sentinel errors returned by tabula packages.
//
// Call sites wrap these with context using fmt.Errorf("%w: ...") so callers
// can classify failures with errors.Is while still getting a readable message.
package errs

import "errors"

// Tabulated function errors.
var (
	// ErrInvalidConstruction is returned when a function cannot be built from the
	// given borders, sample count, values or point sequence.
	ErrInvalidConstruction = errors.New("invalid construction")
	// ErrIndexOutOfRange is returned when a point index is outside [0, count).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidPoint is returned when a point would break the strict x ordering,
	// duplicates an existing x, or carries a non-finite x.
	ErrInvalidPoint = errors.New("invalid point")
	// ErrInvariantViolation is returned when an operation would leave fewer than
	// two points in a function.
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrInvalidOption is returned when a functional option carries an invalid value.
	ErrInvalidOption = errors.New("invalid option")
)

// Codec errors.
var (
	ErrInvalidHeaderSize      = errors.New("invalid header size")
	ErrInvalidMagic           = errors.New("invalid magic number")
	ErrInvalidHeaderFlags     = errors.New("invalid header flags")
	ErrInvalidPayload         = errors.New("invalid payload")
	ErrPayloadTooLarge        = errors.New("payload too large")
	ErrChecksumMismatch       = errors.New("checksum mismatch")
	ErrUnsupportedStorage     = errors.New("unsupported storage type")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)

// ErrInvalidDefinition is returned when a YAML function definition is malformed,
// incomplete or ambiguous.
var ErrInvalidDefinition = errors.New("invalid definition")

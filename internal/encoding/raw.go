package encoding

import (
	"fmt"
	"iter"
	"math"

	"github.com/arloliu/tabula/endian"
	"github.com/arloliu/tabula/errs"
)

const rawValueSize = 8

// AppendRaw appends values to buf as fixed-width float64 bit patterns.
func AppendRaw(buf []byte, engine endian.EndianEngine, values iter.Seq[float64]) []byte {
	for v := range values {
		buf = engine.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

// DecodeRaw reads count raw float64 values from the start of data.
//
// Returns the values and the number of bytes consumed, or an error wrapping
// errs.ErrInvalidPayload when data is too short.
func DecodeRaw(data []byte, engine endian.EndianEngine, count int) ([]float64, int, error) {
	size := count * rawValueSize
	if len(data) < size {
		return nil, 0, fmt.Errorf("%w: raw column needs %d bytes, have %d", errs.ErrInvalidPayload, size, len(data))
	}

	values := make([]float64, count)
	for i := range values {
		values[i] = math.Float64frombits(engine.Uint64(data[i*rawValueSize:]))
	}

	return values, size, nil
}

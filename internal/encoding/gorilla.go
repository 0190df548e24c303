package encoding

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"

	"github.com/arloliu/tabula/errs"
)

// GorillaEncoder appends float64 values to a byte slice as a Gorilla bit
// stream. Bits are packed most significant first.
//
// Per value after the first:
//   - XOR is 0: a single 0 bit
//   - XOR fits the previous block: bits 10 + meaningful bits
//   - otherwise: bits 11 + 5 bits leading zeros + 6 bits block size - 1 +
//     meaningful bits
type GorillaEncoder struct {
	buf           []byte
	bitBuf        uint64
	bitCount      int
	prevValue     uint64
	prevLeading   int
	prevTrailing  int
	prevBlockSize int
	count         int
}

// NewGorillaEncoder creates an encoder that appends to buf.
func NewGorillaEncoder(buf []byte) *GorillaEncoder {
	return &GorillaEncoder{buf: buf}
}

// Write encodes one value.
func (e *GorillaEncoder) Write(val float64) {
	valBits := math.Float64bits(val)
	e.count++

	if e.count == 1 {
		e.prevValue = valBits
		e.writeBits(valBits, 64)

		return
	}

	xor := valBits ^ e.prevValue
	e.prevValue = valBits

	if xor == 0 {
		e.writeBits(0, 1)
		return
	}
	e.writeBits(1, 1)

	// Leading zeros are stored in 5 bits; extra zeros become meaningful bits.
	leading := min(bits.LeadingZeros64(xor), 31)
	trailing := bits.TrailingZeros64(xor)

	if e.prevBlockSize > 0 && leading >= e.prevLeading && trailing >= e.prevTrailing {
		e.writeBits(0, 1)
		e.writeBits(xor>>e.prevTrailing, e.prevBlockSize)

		return
	}

	blockSize := 64 - leading - trailing
	e.writeBits(1, 1)
	e.writeBits(uint64(leading), 5)     //nolint:gosec // G115: leading is 0-31
	e.writeBits(uint64(blockSize-1), 6) //nolint:gosec // G115: blockSize-1 is 0-63
	e.writeBits(xor>>trailing, blockSize)

	e.prevLeading = leading
	e.prevTrailing = trailing
	e.prevBlockSize = blockSize
}

// Finish pads the stream to a whole byte and returns the extended slice.
// The encoder must not be used afterwards.
func (e *GorillaEncoder) Finish() []byte {
	if e.bitCount > 0 {
		aligned := e.bitBuf << (64 - e.bitCount)
		numBytes := (e.bitCount + 7) / 8
		for i := range numBytes {
			e.buf = append(e.buf, byte(aligned>>(56-8*i)))
		}
		e.bitBuf, e.bitCount = 0, 0
	}

	return e.buf
}

// writeBits writes the low numBits (1-64) of value.
func (e *GorillaEncoder) writeBits(value uint64, numBits int) {
	if numBits < 64 {
		value &= (1 << numBits) - 1
	}

	available := 64 - e.bitCount
	if numBits <= available {
		e.bitBuf = (e.bitBuf << numBits) | value
		e.bitCount += numBits
		if e.bitCount == 64 {
			e.flushWord()
		}

		return
	}

	// Split across the word boundary.
	highBits := numBits - available
	e.bitBuf = (e.bitBuf << available) | (value >> highBits)
	e.bitCount = 64
	e.flushWord()

	e.bitBuf = value & ((1 << highBits) - 1)
	e.bitCount = highBits
}

func (e *GorillaEncoder) flushWord() {
	e.buf = binary.BigEndian.AppendUint64(e.buf, e.bitBuf)
	e.bitBuf, e.bitCount = 0, 0
}

// DecodeGorilla reads count values from the Gorilla stream at the start of
// data.
//
// Returns the values and the number of whole bytes consumed, or an error
// wrapping errs.ErrInvalidPayload when the stream is truncated or malformed.
func DecodeGorilla(data []byte, count int) ([]float64, int, error) {
	// Every value takes at least one bit, so data bounds the useful capacity.
	values := make([]float64, 0, min(count, len(data)*8))
	if count == 0 {
		return values, 0, nil
	}

	br := bitReader{data: data}
	truncated := func() ([]float64, int, error) {
		return nil, 0, fmt.Errorf("%w: gorilla column truncated after %d of %d values",
			errs.ErrInvalidPayload, len(values), count)
	}

	prev, ok := br.readBits(64)
	if !ok {
		return truncated()
	}
	values = append(values, math.Float64frombits(prev))

	var leading, blockSize int
	for len(values) < count {
		changed, ok := br.readBits(1)
		if !ok {
			return truncated()
		}
		if changed == 0 {
			values = append(values, math.Float64frombits(prev))
			continue
		}

		newBlock, ok := br.readBits(1)
		if !ok {
			return truncated()
		}
		if newBlock == 1 {
			l, okL := br.readBits(5)
			s, okS := br.readBits(6)
			if !okL || !okS {
				return truncated()
			}
			leading, blockSize = int(l), int(s)+1
			if leading+blockSize > 64 {
				return nil, 0, fmt.Errorf("%w: gorilla block of %d bits after %d leading zeros",
					errs.ErrInvalidPayload, blockSize, leading)
			}
		} else if blockSize == 0 {
			return nil, 0, fmt.Errorf("%w: gorilla block reused before one was defined", errs.ErrInvalidPayload)
		}

		meaningful, ok := br.readBits(blockSize)
		if !ok {
			return truncated()
		}
		prev ^= meaningful << (64 - leading - blockSize)
		values = append(values, math.Float64frombits(prev))
	}

	return values, br.bytesConsumed(), nil
}

// bitReader reads a big-endian bit stream.
type bitReader struct {
	data []byte
	pos  int
}

// readBits reads numBits (0-64) bits, or reports false if the data ends first.
func (br *bitReader) readBits(numBits int) (uint64, bool) {
	if br.pos+numBits > len(br.data)*8 {
		return 0, false
	}

	var v uint64
	for numBits > 0 {
		offset := br.pos & 7
		available := 8 - offset
		take := min(available, numBits)

		chunk := uint64(br.data[br.pos>>3]>>(available-take)) & ((1 << take) - 1)
		v = (v << take) | chunk

		br.pos += take
		numBits -= take
	}

	return v, true
}

func (br *bitReader) bytesConsumed() int {
	return (br.pos + 7) / 8
}

// Package endian selects the byte order used for encoded function payloads.
//
// An EndianEngine is both a binary.ByteOrder and a binary.AppendByteOrder, so
// fixed-offset header fields can be written with Put* and payload columns can
// be streamed with Append* through the same value.
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, math.Float64bits(x))
//
// The returned engines are the stateless values from encoding/binary and are
// safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

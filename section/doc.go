// Package section defines the fixed-size binary header of an encoded function.
//
// # Layout
//
// An encoded function is a 24-byte header followed by one payload:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (24 bytes, fixed)                     │
//	├──────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes)                  │
//	│  - x column: PointCount float64 values       │
//	│  - y column: PointCount float64 values       │
//	│  - raw or Gorilla encoded, then compressed   │
//	└──────────────────────────────────────────────┘
//
// Header fields:
//
//	Bytes  | Field       | Type   | Description
//	-------|-------------|--------|------------------------------------------
//	0-1    | Options     | uint16 | Magic number and option bits
//	2      | Storage     | uint8  | format.StorageType to rebuild with
//	3      | Compression | uint8  | format.CompressionType of the payload
//	4-7    | PointCount  | uint32 | Number of samples
//	8-11   | PayloadSize | uint32 | Stored (compressed) payload size
//	12-15  | RawSize     | uint32 | Encoded payload size before compression
//	16-23  | Checksum    | uint64 | xxHash64 of the uncompressed payload
//
// Options (always little-endian so it can be read before the byte order is
// known):
//
//	Bit 0: Checksum present (0=absent, 1=present)
//	Bit 1: Endianness (0=little-endian, 1=big-endian)
//	Bit 2: Column encoding (0=raw, 1=Gorilla)
//	Bit 3: Reserved (must be 0)
//	Bits 4-15: Magic number (0xEC10 for format v1)
//
// Every other multi-byte field uses the byte order selected by bit 1.
package section

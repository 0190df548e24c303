package format

import "strings"

type (
	StorageType     uint8
	EncodingType    uint8
	CompressionType uint8
)

const (
	StorageArray  StorageType = 0x1 // StorageArray is the contiguous, index-addressed storage.
	StorageLinked StorageType = 0x2 // StorageLinked is the doubly-linked node storage.

	EncodingRaw     EncodingType = 0x1 // EncodingRaw stores each float64 as its fixed-width bit pattern.
	EncodingGorilla EncodingType = 0x2 // EncodingGorilla stores XOR deltas between consecutive float64 values.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (s StorageType) String() string {
	switch s {
	case StorageArray:
		return "Array"
	case StorageLinked:
		return "Linked"
	default:
		return "Unknown"
	}
}

// Valid reports whether s names a known storage.
func (s StorageType) Valid() bool {
	return s == StorageArray || s == StorageLinked
}

// ParseStorageType maps a case-insensitive name to a StorageType.
// The second return value is false for unknown names.
func ParseStorageType(name string) (StorageType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "array":
		return StorageArray, true
	case "linked", "list", "linkedlist":
		return StorageLinked, true
	default:
		return 0, false
	}
}

func (e EncodingType) String() string {
	switch e {
	case EncodingRaw:
		return "Raw"
	case EncodingGorilla:
		return "Gorilla"
	default:
		return "Unknown"
	}
}

// Valid reports whether e names a known column encoding.
func (e EncodingType) Valid() bool {
	return e == EncodingRaw || e == EncodingGorilla
}

// Valid reports whether c names a known compression.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompressionType maps a case-insensitive name to a CompressionType.
// The second return value is false for unknown names.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

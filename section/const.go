package section

const (
	ChecksumMask     = 0x0001 // Mask for checksum bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	GorillaMask      = 0x0004 // Mask for column encoding bit (bit 2)
	ReservedBitsMask = 0x0008 // Mask for reserved bit (bit 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	MagicFunctionV1Opt = 0xEC10 // MagicFunctionV1Opt identifies format v1 of an encoded function.
)

const (
	HeaderSize = 24            // fixed header size in bytes
	ValueSize  = 8             // bytes per encoded float64
	PointSize  = 2 * ValueSize // bytes per sample across both columns
	MaxPayload = 1<<32 - 1     // largest payload size a header can describe
)

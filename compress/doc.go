// Package compress provides the block codecs applied to encoded function
// payloads.
//
// A payload is the x column followed by the y column of a tabulated function,
// each value stored as its IEEE-754 bits. Smooth functions sampled on a uniform
// grid produce long runs of shared exponent and mantissa prefixes, which every
// codec below exploits to a different degree:
//   - None: the payload is stored as is
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed, len(payload))
//
// # Zstd Backends
//
// By default Zstd uses the pure Go implementation from klauspost/compress with
// pooled encoders and decoders. Building with cgo enabled and the gozstd tag
// switches to the libzstd binding from valyala/gozstd. Both produce standard
// zstd frames, so either backend decodes the other's output.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use.
package compress

// Package codec converts tabulated functions to and from a compact binary form.
//
// An encoded function is a fixed header (see package section) followed by the
// x column and the y column of its samples. By default each value is the
// IEEE-754 bit pattern of a float64 in the byte order chosen at encode time.
// WithColumnEncoding(format.EncodingGorilla) stores XOR deltas between
// neighbouring values instead, which is much smaller for smooth or regularly
// spaced samples. The columns are compressed together with one of the codecs
// from package compress, and an xxHash64 checksum of the uncompressed columns
// guards against corruption.
//
// # Encoding
//
//	data, err := codec.Encode(fn,
//	    codec.WithCompression(format.CompressionZstd),
//	    codec.WithColumnEncoding(format.EncodingGorilla),
//	    codec.WithBigEndian(),
//	)
//
// # Decoding
//
//	fn, err := codec.Decode(data)
//
// Decode rebuilds the function through the point-sequence constructor, so an
// encoded blob that breaks the ordering invariant is rejected just like bad
// caller input. The storage recorded in the header is used unless
// WithStorage overrides it.
//
// # Thread Safety
//
// Encode and Decode keep no shared state beyond internal buffer pools and may
// be called concurrently. The function passed to Encode must not be mutated
// while it is being encoded.
package codec

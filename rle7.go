// Package rle7 provides an in-place run-length codec for 7-bit byte buffers.
//
// Runs of two or more equal bytes become a two-byte token (count, value|0x80);
// every other byte is kept as a one-byte literal. Encoding never grows the
// data, and both directions can run inside the caller's buffer.
//
// # Basic Usage
//
//	buf := make([]byte, len(data))
//	copy(buf, data)
//
//	n := rle7.Compress(buf)             // buf[:n] now holds the token stream
//	m, err := rle7.Decompress(buf, n)   // buf[:m] holds the original bytes again
//	if err != nil {
//	    return err
//	}
//
//	if !rle7.IsEqual(data, buf, len(data)) {
//	    return errors.New("round trip failed")
//	}
//
// # Package Structure
//
// This package wraps the most common calls. Use package rle for the two-buffer
// and append forms, configurable Encoder/Decoder and token inspection; package
// compress for allocating codecs and RLE followed by Zstd, S2 or LZ4; package
// integrity for verification reports; and package dataset to load or generate
// fixed-size inputs.
package rle7

import (
	"github.com/arloliu/rle7/compress"
	"github.com/arloliu/rle7/format"
	"github.com/arloliu/rle7/integrity"
	"github.com/arloliu/rle7/rle"
)

// Compress encodes buf in place and returns the encoded length.
//
// Bytes with the top bit set cannot be represented and are stored with the bit
// cleared; call Validate first when the input is not known to be 7-bit.
func Compress(buf []byte) int {
	return rle.Encode(buf)
}

// Decompress expands the n compressed bytes at the start of buf in place and
// returns the decoded length. buf must have capacity for the decoded data.
//
// Errors wrap rle.ErrScratchUnavailable, rle.ErrShortBuffer or
// rle.ErrInvalidLength.
func Decompress(buf []byte, n int) (int, error) {
	return rle.Decode(buf, n)
}

// IsEqual reports whether the first n bytes of a and b match.
func IsEqual(a, b []byte, n int) bool {
	return integrity.Equal(a, b, n)
}

// Validate reports an error wrapping rle.ErrHighBitSet if data is not 7-bit.
func Validate(data []byte) error {
	return rle.Validate(data)
}

// NewCodec returns an allocating codec for the given compression type.
//
// Example:
//
//	codec, err := rle7.NewCodec(format.CompressionRLE)
//	tokens, err := codec.Compress(data)
func NewCodec(compressionType format.CompressionType) (compress.Codec, error) {
	return compress.CreateCodec(compressionType, "buffer")
}

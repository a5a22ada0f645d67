// Package rle implements a byte-oriented run-length codec for 7-bit data.
//
// # Token Stream
//
// The encoded form is a sequence of variable-width tokens:
//
//	Literal: 1 byte   0vvvvvvv            value with the top bit clear
//	Run:     2 bytes  cccccccc 1vvvvvvv   count in [2,255], then value|0x80
//
// The top bit of every source byte is repurposed as the run flag, so only
// 7-bit input (every byte < 0x80) survives a round trip. Encode masks the top
// bit of literals and is therefore lossy for 8-bit input; Validate and an
// Encoder created with WithStrict7Bit(true) reject such input with
// ErrHighBitSet instead.
//
// Runs longer than 255 bytes are split into several run tokens, so 300 copies
// of 0x41 encode to:
//
//	[255 0xC1 45 0xC1]
//
// # Decoding
//
// The decoder recognises a run by peeking one byte ahead: if the byte after the
// read cursor carries the run flag, the pair is a run token and both bytes are
// consumed together; otherwise the byte is a literal. A run count of 128 or more
// has its own top bit set, so the encoder never places such a run directly after
// a literal; runs following a literal saturate at 127 instead.
//
// # Buffers
//
// Encode works in place: the write cursor never overtakes the read cursor, and
// the encoded length is never larger than the input length.
//
// Decode also works in place, but expansion can overwrite compressed bytes that
// have not been read yet. It snapshots the compressed prefix into a pooled
// scratch buffer before writing and releases the buffer before returning. The
// decoded bytes are written into buf[:cap(buf)], so the caller must provide
// capacity for the original size:
//
//	buf := make([]byte, len(data))
//	copy(buf, data)
//	n := rle.Encode(buf)
//	m, err := rle.Decode(buf, n)
//	if err != nil {
//	    return err
//	}
//	restored := buf[:m]
//
// DecodeTo, EncodeTo, AppendEncode and AppendDecode work on distinct source and
// destination slices and need no scratch copy.
//
// # Errors
//
// Decoding never signals failure through a zero length. Failures are returned as
// errors wrapping ErrScratchUnavailable, ErrShortBuffer, ErrInvalidLength,
// ErrInvalidRunLength or ErrInvalidLiteral.
//
// # Thread Safety
//
// All functions are safe for concurrent use on distinct buffers. Encoder and
// Decoder values are immutable after construction and may be shared.
package rle

package rle

import (
	"fmt"
	"slices"

	"github.com/arloliu/rle7/format"
)

// Encode rewrites buf in place with its run-length encoding and returns the
// encoded length. The encoded stream occupies buf[:n]; bytes past n are left
// as they were.
//
// Bytes with the top bit set are stored with the bit cleared, so they do not
// survive a round trip. Use Validate or a strict Encoder to reject them.
func Encode(buf []byte) int {
	return encode(buf, buf)
}

// EncodeTo encodes src into dst and returns the number of bytes written.
//
// dst must be at least len(src) bytes long, the worst-case encoded size.
// dst may be src itself, but must not otherwise overlap it.
func EncodeTo(dst, src []byte) (int, error) {
	if len(dst) < MaxEncodedLen(len(src)) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, MaxEncodedLen(len(src)), len(dst))
	}

	return encode(dst, src), nil
}

// AppendEncode appends the encoding of src to dst and returns the extended slice.
func AppendEncode(dst, src []byte) []byte {
	start := len(dst)
	dst = slices.Grow(dst, MaxEncodedLen(len(src)))
	n := encode(dst[start:start+len(src)], src)

	return dst[:start+n]
}

// MaxEncodedLen returns the largest encoded size of n input bytes.
// Literals map 1:1 and runs never take more bytes than they cover.
func MaxEncodedLen(n int) int {
	return n
}

// Validate reports whether every byte of src is representable by the codec.
// The returned error wraps ErrHighBitSet and names the first offending offset.
func Validate(src []byte) error {
	for i, b := range src {
		if format.IsRunFlagged(b) {
			return fmt.Errorf("%w: 0x%02x at offset %d", ErrHighBitSet, b, i)
		}
	}

	return nil
}

// encode is shared by the in-place and two-buffer forms. The write cursor never
// passes the read cursor, and the current value is read before its slot can be
// overwritten, so dst may alias src from the same start.
func encode(dst, src []byte) int {
	r, w := 0, 0
	afterLiteral := false

	for r < len(src) {
		value := src[r]

		limit := format.MaxRunLength
		if afterLiteral {
			limit = format.MaxLiteralLedRun
		}

		count := 1
		for r+count < len(src) && count < limit && src[r+count] == value {
			count++
		}

		if count >= format.MinRunLength {
			dst[w] = byte(count)
			dst[w+1] = value | format.RunFlag
			w += 2
			afterLiteral = false
		} else {
			dst[w] = value & format.LiteralMask
			w++
			afterLiteral = true
		}

		r += count
	}

	return w
}

package rle

import (
	"fmt"
	"slices"

	"github.com/arloliu/rle7/format"
	"github.com/arloliu/rle7/internal/pool"
)

var defaultDecoder = &Decoder{}

// Decode rewrites buf in place, expanding the n compressed bytes in buf[:n],
// and returns the decoded length.
//
// The decoded bytes are written into buf[:cap(buf)]; reslice buf to the
// returned length to read them. ErrShortBuffer is returned when the capacity
// cannot hold the expansion, in which case the content of buf is unspecified.
func Decode(buf []byte, n int) (int, error) {
	return defaultDecoder.Decode(buf, n)
}

// DecodeTo decodes src into dst and returns the number of bytes written.
// dst and src must not overlap.
func DecodeTo(dst, src []byte) (int, error) {
	return defaultDecoder.DecodeTo(dst, src)
}

// AppendDecode appends the decoding of src to dst and returns the extended slice.
func AppendDecode(dst, src []byte) ([]byte, error) {
	return defaultDecoder.AppendDecode(dst, src)
}

// DecodedLen returns the number of bytes src expands to.
func DecodedLen(src []byte) int {
	total := 0
	for tok := range Tokens(src) {
		total += tok.Count
	}

	return total
}

// Decode is the configurable form of the package-level Decode.
func (d *Decoder) Decode(buf []byte, n int) (int, error) {
	if n < 0 || n > len(buf) {
		return 0, fmt.Errorf("%w: %d for buffer of %d bytes", ErrInvalidLength, n, len(buf))
	}

	if n == 0 {
		return 0, nil
	}

	if d.scratchLimit > 0 && n > d.scratchLimit {
		return 0, fmt.Errorf("%w: %d bytes requested, limit is %d", ErrScratchUnavailable, n, d.scratchLimit)
	}

	scratch := pool.GetScratch(buf[:n])
	defer pool.PutScratch(scratch)

	return d.decode(buf[:cap(buf)], scratch.Bytes())
}

// DecodeTo is the configurable form of the package-level DecodeTo.
func (d *Decoder) DecodeTo(dst, src []byte) (int, error) {
	return d.decode(dst, src)
}

// AppendDecode is the configurable form of the package-level AppendDecode.
func (d *Decoder) AppendDecode(dst, src []byte) ([]byte, error) {
	start := len(dst)
	size := DecodedLen(src)
	dst = slices.Grow(dst, size)

	n, err := d.decode(dst[start:start+size], src)
	if err != nil {
		return dst[:start], err
	}

	return dst[:start+n], nil
}

func (d *Decoder) decode(dst, src []byte) (int, error) {
	r, w := 0, 0

	for r < len(src) {
		b := src[r]

		// Run tokens are recognised by the flag on the following byte only.
		if r+1 < len(src) && format.IsRunFlagged(src[r+1]) {
			count := int(b)
			if d.strict && count < format.MinRunLength {
				return w, fmt.Errorf("%w: count %d at offset %d", ErrInvalidRunLength, count, r)
			}

			if w+count > len(dst) {
				return w, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, w+count, len(dst))
			}

			fill(dst[w:w+count], src[r+1]&format.LiteralMask)
			w += count
			r += 2

			continue
		}

		if d.strict && format.IsRunFlagged(b) {
			return w, fmt.Errorf("%w: 0x%02x at offset %d", ErrInvalidLiteral, b, r)
		}

		if w >= len(dst) {
			return w, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, w+1, len(dst))
		}

		dst[w] = b
		w++
		r++
	}

	return w, nil
}

// fill sets every byte of dst to value, doubling the filled prefix with copy.
func fill(dst []byte, value byte) {
	if len(dst) == 0 {
		return
	}

	dst[0] = value
	for n := 1; n < len(dst); n *= 2 {
		copy(dst[n:], dst[:n])
	}
}

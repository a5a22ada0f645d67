package rle

import "errors"

var (
	// ErrScratchUnavailable is returned when the snapshot of the compressed input
	// cannot be obtained for an in-place decode.
	ErrScratchUnavailable = errors.New("rle: scratch buffer unavailable")

	// ErrShortBuffer is returned when the destination cannot hold the output.
	ErrShortBuffer = errors.New("rle: destination buffer too short")

	// ErrInvalidLength is returned when the compressed length does not describe a
	// prefix of the buffer.
	ErrInvalidLength = errors.New("rle: invalid compressed length")

	// ErrHighBitSet is returned when input carries a byte with the top bit set.
	ErrHighBitSet = errors.New("rle: input byte has top bit set")

	// ErrInvalidRunLength is returned by strict decoders for run counts below 2.
	ErrInvalidRunLength = errors.New("rle: invalid run length")

	// ErrInvalidLiteral is returned by strict decoders for a literal carrying the
	// run flag.
	ErrInvalidLiteral = errors.New("rle: literal has run flag set")
)

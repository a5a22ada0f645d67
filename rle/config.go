package rle

import (
	"fmt"

	"github.com/arloliu/rle7/internal/options"
)

// Encoder encodes with optional input validation.
type Encoder struct {
	strict bool
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithStrict7Bit makes the encoder reject input bytes with the top bit set
// instead of silently clearing the bit.
func WithStrict7Bit(strict bool) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.strict = strict
	})
}

// NewEncoder creates an Encoder. The default encoder behaves like Encode.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Strict reports whether the encoder validates its input.
func (e *Encoder) Strict() bool {
	return e.strict
}

// Encode rewrites buf in place and returns the encoded length.
// A strict encoder leaves buf untouched when validation fails.
func (e *Encoder) Encode(buf []byte) (int, error) {
	if e.strict {
		if err := Validate(buf); err != nil {
			return 0, err
		}
	}

	return Encode(buf), nil
}

// EncodeTo encodes src into dst, see the package-level EncodeTo.
func (e *Encoder) EncodeTo(dst, src []byte) (int, error) {
	if e.strict {
		if err := Validate(src); err != nil {
			return 0, err
		}
	}

	return EncodeTo(dst, src)
}

// AppendEncode appends the encoding of src to dst.
func (e *Encoder) AppendEncode(dst, src []byte) ([]byte, error) {
	if e.strict {
		if err := Validate(src); err != nil {
			return dst, err
		}
	}

	return AppendEncode(dst, src), nil
}

// Decoder decodes with an optional scratch limit and token validation.
type Decoder struct {
	scratchLimit int
	strict       bool
}

// DecoderOption configures a Decoder.
type DecoderOption = options.Option[*Decoder]

// WithScratchLimit caps the scratch snapshot taken by in-place decoding.
// Decode fails with ErrScratchUnavailable when the compressed length exceeds
// the limit. Zero means no limit.
func WithScratchLimit(limit int) DecoderOption {
	return options.New(func(d *Decoder) error {
		if limit < 0 {
			return fmt.Errorf("scratch limit must not be negative: %d", limit)
		}
		d.scratchLimit = limit

		return nil
	})
}

// WithStrictTokens makes the decoder reject run counts below 2 and literals
// carrying the run flag. Neither is produced by the encoder.
func WithStrictTokens(strict bool) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.strict = strict
	})
}

// NewDecoder creates a Decoder. The default decoder behaves like Decode.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// ScratchLimit returns the configured scratch limit, zero when unlimited.
func (d *Decoder) ScratchLimit() int {
	return d.scratchLimit
}

package compress

import (
	"github.com/arloliu/rle7/rle"
)

var (
	rleEncoder = mustEncoder(rle.NewEncoder(rle.WithStrict7Bit(true)))
	rleDecoder = mustDecoder(rle.NewDecoder(rle.WithStrictTokens(true)))
)

// RLECompressor adapts the 7-bit run-length codec to the Codec interface.
//
// Unlike rle.Encode, Compress rejects input bytes with the top bit set
// (rle.ErrHighBitSet) instead of corrupting them, and Decompress rejects
// token streams the encoder cannot produce.
type RLECompressor struct{}

var _ Codec = (*RLECompressor)(nil)

// NewRLECompressor creates a new RLE compressor.
func NewRLECompressor() RLECompressor {
	return RLECompressor{}
}

// Compress encodes data into a newly allocated token stream.
//
// Returns:
//   - []byte: Encoded data (nil if input is empty)
//   - error: rle.ErrHighBitSet for 8-bit input
func (c RLECompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return rleEncoder.AppendEncode(make([]byte, 0, rle.MaxEncodedLen(len(data))), data)
}

// Decompress expands a token stream into a newly allocated buffer.
func (c RLECompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return rleDecoder.AppendDecode(nil, data)
}

func mustEncoder(e *rle.Encoder, err error) *rle.Encoder {
	if err != nil {
		panic(err)
	}

	return e
}

func mustDecoder(d *rle.Decoder, err error) *rle.Decoder {
	if err != nil {
		panic(err)
	}

	return d
}

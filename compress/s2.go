package compress

import "github.com/klauspost/compress/s2"

// S2Compressor wraps klauspost S2 block compression. The block format records
// the decoded length, so no buffer sizing is needed on decompression.
//
// As the second stage of a ChainCodec it is the fastest backend: RLE output
// still repeats whole token pairs (for example [255 0xC1] in long runs), which
// S2's short-match encoder removes at near memcpy speed.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data, typically an RLE token stream, into an S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress expands an S2 block. The result of a chained stage is still
// run-length encoded and is expanded further by ChainCodec.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

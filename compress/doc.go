// Package compress exposes the run-length codec and general-purpose backends
// behind one Codec interface.
//
// # Overview
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Built-in codecs, selected by format.CompressionType:
//   - None: pass-through (NoOpCompressor)
//   - RLE: the 7-bit run-length token stream (RLECompressor)
//   - Zstd: klauspost/compress zstd, or valyala/gozstd with the gozstd build tag
//   - S2: klauspost/compress s2
//   - LZ4: pierrec/lz4 block mode
//
// # RLE Codec
//
//	codec := compress.NewRLECompressor()
//	tokens, err := codec.Compress(data)   // rle.ErrHighBitSet for 8-bit input
//	original, err := codec.Decompress(tokens)
//
// Unlike the in-place functions of package rle, RLECompressor allocates its
// output, validates that the input is 7-bit and decodes strictly.
//
// # Chaining
//
// ChainCodec runs RLE first and a backend second:
//
//	codec, err := compress.NewChainCodec(compress.WithBackend(format.CompressionS2))
//	packed, err := codec.Compress(data)
//
// # Measuring
//
// Measure runs one verified round trip and returns CompressionStats with sizes
// and timings, which is what examples/compress_demo prints for each codec.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use.
package compress

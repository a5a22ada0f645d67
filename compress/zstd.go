package compress

// ZstdCompressor provides Zstandard compression.
//
// The pure-Go klauspost implementation is used by default. Building with the
// gozstd tag (and cgo enabled) switches to the libzstd binding from
// valyala/gozstd. Both produce standard Zstandard frames and can read each
// other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(tokens)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/rle7/format"
	"github.com/arloliu/rle7/integrity"
)

// Measure compresses and decompresses data once with the built-in codec for
// compressionType, verifies the round trip and reports sizes and timings.
func Measure(compressionType format.CompressionType, data []byte) (CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return CompressionStats{}, err
	}

	return MeasureCodec(codec, compressionType, data)
}

// MeasureCodec is Measure for an arbitrary codec; algorithm labels the result.
func MeasureCodec(codec Codec, algorithm format.CompressionType, data []byte) (CompressionStats, error) {
	stats := CompressionStats{
		Algorithm:    algorithm,
		OriginalSize: int64(len(data)),
	}

	start := time.Now()
	compressed, err := codec.Compress(data)
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, fmt.Errorf("%s compress: %w", algorithm, err)
	}
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	restored, err := codec.Decompress(compressed)
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, fmt.Errorf("%s decompress: %w", algorithm, err)
	}

	if err := integrity.Verify(data, restored); err != nil {
		return stats, fmt.Errorf("%s round trip: %w", algorithm, err)
	}

	return stats, nil
}

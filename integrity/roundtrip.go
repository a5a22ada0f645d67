package integrity

import (
	"fmt"

	"github.com/arloliu/rle7/rle"
)

// Report summarises one round trip.
type Report struct {
	OriginalSize     int
	CompressedSize   int
	DecompressedSize int
	// Encoded is a copy of the compressed stream.
	Encoded []byte
	// OriginalSum and RestoredSum are xxHash64 checksums of the input and of the
	// reconstruction.
	OriginalSum uint64
	RestoredSum uint64
}

// Ratio returns compressed size over decompressed size, 0 for empty input.
func (r Report) Ratio() float64 {
	if r.DecompressedSize == 0 {
		return 0
	}

	return float64(r.CompressedSize) / float64(r.DecompressedSize)
}

// Passed reports whether the reconstruction matched the input.
func (r Report) Passed() bool {
	return r.OriginalSize == r.DecompressedSize && r.OriginalSum == r.RestoredSum
}

// RoundTrip encodes a copy of data in place, decodes it in place again and
// verifies the result. data itself is not modified.
//
// Input bytes with the top bit set are rejected up front with rle.ErrHighBitSet
// since the codec cannot represent them. A failed comparison returns the
// partially filled report together with a *MismatchError.
func RoundTrip(data []byte) (Report, error) {
	report := Report{
		OriginalSize: len(data),
		OriginalSum:  Checksum(data),
	}

	if err := rle.Validate(data); err != nil {
		return report, err
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	report.CompressedSize = rle.Encode(buf)
	report.Encoded = append([]byte(nil), buf[:report.CompressedSize]...)

	n, err := rle.Decode(buf, report.CompressedSize)
	if err != nil {
		return report, fmt.Errorf("decode %d compressed bytes: %w", report.CompressedSize, err)
	}

	report.DecompressedSize = n
	report.RestoredSum = Checksum(buf[:n])

	if err := Verify(data, buf[:n]); err != nil {
		return report, err
	}

	return report, nil
}

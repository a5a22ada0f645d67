// Package integrity checks that a run-length round trip reproduces its input.
//
// Equal is the plain byte-wise comparison. Verify reports where two buffers
// first differ, Checksum gives an xxHash64 fingerprint for logging or storage,
// and RoundTrip drives a complete in-place encode and decode over a copy of the
// input.
package integrity

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/arloliu/rle7/internal/hash"
)

// ErrMismatch is wrapped by every *MismatchError.
var ErrMismatch = errors.New("integrity: data mismatch")

// MismatchError describes the first difference between two buffers.
type MismatchError struct {
	Offset int // first differing position
	Want   int // expected byte at Offset, -1 past the end of the original
	Got    int // actual byte at Offset, -1 past the end of the reconstruction
	// WantLen and GotLen are the lengths of both buffers.
	WantLen int
	GotLen  int
}

func (e *MismatchError) Error() string {
	if e.WantLen != e.GotLen && (e.Want < 0 || e.Got < 0) {
		return fmt.Sprintf("integrity: length mismatch: got %d bytes, want %d", e.GotLen, e.WantLen)
	}

	return fmt.Sprintf("integrity: mismatch at offset %d: got 0x%02x, want 0x%02x", e.Offset, e.Got, e.Want)
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}

// Equal reports whether the first n bytes of a and b match.
// It is false when either slice is shorter than n.
func Equal(a, b []byte, n int) bool {
	if n < 0 || len(a) < n || len(b) < n {
		return false
	}

	return bytes.Equal(a[:n], b[:n])
}

// Verify compares a reconstruction against the original it was produced from.
// It returns nil on a match and a *MismatchError otherwise.
func Verify(original, reconstructed []byte) error {
	limit := min(len(original), len(reconstructed))
	for i := 0; i < limit; i++ {
		if original[i] != reconstructed[i] {
			return &MismatchError{
				Offset:  i,
				Want:    int(original[i]),
				Got:     int(reconstructed[i]),
				WantLen: len(original),
				GotLen:  len(reconstructed),
			}
		}
	}

	if len(original) == len(reconstructed) {
		return nil
	}

	mismatch := &MismatchError{Offset: limit, Want: -1, Got: -1, WantLen: len(original), GotLen: len(reconstructed)}
	if limit < len(original) {
		mismatch.Want = int(original[limit])
	} else {
		mismatch.Got = int(reconstructed[limit])
	}

	return mismatch
}

// Checksum returns the xxHash64 of data.
func Checksum(data []byte) uint64 {
	return hash.Sum(data)
}

// Package dataset supplies fixed-size 7-bit input buffers for the codec: it
// loads dataset_<N>.bin files of a power-of-two size and synthesises
// equivalent data for tests and demos.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Size is a supported dataset size in bytes.
type Size int

const (
	Size128 Size = 128
	Size256 Size = 256
	Size512 Size = 512
	Size1K  Size = 1024
	Size2K  Size = 2048
	Size4K  Size = 4096
	Size8K  Size = 8192
	Size16K Size = 16384
	Size32K Size = 32768
	Size64K Size = 65536

	MinSize     = Size128
	MaxSize     = Size64K
	DefaultSize = Size64K
)

var (
	// ErrInvalidSize is returned for sizes outside the supported set.
	ErrInvalidSize = errors.New("dataset: unsupported size")
	// ErrShortRead is returned when the source holds fewer bytes than requested.
	ErrShortRead = errors.New("dataset: short read")
)

// Sizes returns every supported size in ascending order.
func Sizes() []Size {
	sizes := make([]Size, 0, 10)
	for s := MinSize; s <= MaxSize; s *= 2 {
		sizes = append(sizes, s)
	}

	return sizes
}

// Valid reports whether s is a power of two between MinSize and MaxSize.
func (s Size) Valid() bool {
	return s >= MinSize && s <= MaxSize && s&(s-1) == 0
}

func (s Size) String() string {
	return strconv.Itoa(int(s))
}

// ParseSize parses a decimal byte count into a Size.
func ParseSize(text string) (Size, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSize, text)
	}

	s := Size(n)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}

	return s, nil
}

// FileName returns the conventional file name for a dataset of size s.
func FileName(s Size) string {
	return "dataset_" + s.String() + ".bin"
}

// Path joins dir with the conventional file name for size s.
func Path(dir string, s Size) string {
	return filepath.Join(dir, FileName(s))
}

// Read reads exactly s bytes from r.
func Read(r io.Reader, s Size) ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, int(s))
	}

	buf := make([]byte, int(s))
	n, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: got %d of %d bytes", ErrShortRead, n, int(s))
		}

		return nil, err
	}

	return buf, nil
}

// Load reads the first s bytes of the file at path.
func Load(path string, s Size) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	data, err := Read(f, s)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}

// Save writes data to path, creating or truncating the file.
func Save(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint: gosec
		return fmt.Errorf("write dataset: %w", err)
	}

	return nil
}

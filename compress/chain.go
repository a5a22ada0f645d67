package compress

import (
	"fmt"

	"github.com/arloliu/rle7/format"
	"github.com/arloliu/rle7/internal/options"
)

// ChainCodec runs the RLE codec first and a general-purpose backend second.
//
// RLE collapses long runs cheaply, the backend then removes the repetition
// left between runs. Decompress applies the stages in reverse order.
type ChainCodec struct {
	first   RLECompressor
	backend Codec
	kind    format.CompressionType
}

var _ Codec = (*ChainCodec)(nil)

// ChainOption configures a ChainCodec.
type ChainOption = options.Option[*ChainCodec]

// WithBackend selects the second stage. Zstd is the default; RLE is rejected
// since it cannot shrink its own output further.
func WithBackend(backend format.CompressionType) ChainOption {
	return options.New(func(c *ChainCodec) error {
		if backend == format.CompressionRLE {
			return fmt.Errorf("chain backend cannot be %s", backend)
		}

		codec, err := GetCodec(backend)
		if err != nil {
			return err
		}
		c.backend = codec
		c.kind = backend

		return nil
	})
}

// NewChainCodec creates an RLE-then-backend codec.
func NewChainCodec(opts ...ChainOption) (*ChainCodec, error) {
	c := &ChainCodec{
		first:   NewRLECompressor(),
		backend: NewZstdCompressor(),
		kind:    format.CompressionZstd,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// Backend returns the compression type of the second stage.
func (c *ChainCodec) Backend() format.CompressionType {
	return c.kind
}

// Compress encodes data with RLE and compresses the token stream with the backend.
func (c *ChainCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	tokens, err := c.first.Compress(data)
	if err != nil {
		return nil, err
	}

	out, err := c.backend.Compress(tokens)
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", c.kind, err)
	}

	return out, nil
}

// Decompress reverses Compress.
func (c *ChainCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	tokens, err := c.backend.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%s stage: %w", c.kind, err)
	}

	return c.first.Decompress(tokens)
}

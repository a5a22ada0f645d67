// Package options implements generic functional options shared by the codec
// configuration types (rle.Encoder, rle.Decoder, compress.ChainCodec).
package options

import (
	"errors"
	"fmt"
)

// ErrInvalidOption is wrapped by every error returned from Apply.
var ErrInvalidOption = errors.New("invalid option")

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func is a functional option backed by a plain function.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order and stops at the first failure.
//
// The returned error wraps both ErrInvalidOption and the option's own error,
// and names the position of the failing option.
func Apply[T any](target T, opts ...Option[T]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt.apply(target); err != nil {
			return fmt.Errorf("%w #%d: %w", ErrInvalidOption, i, err)
		}
	}

	return nil
}

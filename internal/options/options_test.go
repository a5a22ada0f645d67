package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errNegative = errors.New("limit cannot be negative")

type limitConfig struct {
	limit    int
	strict   bool
	lastCall string
}

func (c *limitConfig) setLimit(v int) error {
	if v < 0 {
		return errNegative
	}
	c.limit = v
	c.lastCall = "setLimit"

	return nil
}

func (c *limitConfig) setStrict(strict bool) {
	c.strict = strict
	c.lastCall = "setStrict"
}

func withLimit(v int) Option[*limitConfig] {
	return New(func(c *limitConfig) error { return c.setLimit(v) })
}

func withStrict(strict bool) Option[*limitConfig] {
	return NoError(func(c *limitConfig) { c.setStrict(strict) })
}

func TestOption_New(t *testing.T) {
	t.Run("applies value", func(t *testing.T) {
		cfg := &limitConfig{}

		require.NoError(t, withLimit(42).apply(cfg))
		require.Equal(t, 42, cfg.limit)
		require.Equal(t, "setLimit", cfg.lastCall)
	})

	t.Run("propagates errors", func(t *testing.T) {
		cfg := &limitConfig{}

		err := withLimit(-1).apply(cfg)
		require.ErrorIs(t, err, errNegative)
	})
}

func TestOption_NoError(t *testing.T) {
	cfg := &limitConfig{}

	require.NoError(t, withStrict(true).apply(cfg))
	require.True(t, cfg.strict)
	require.Equal(t, "setStrict", cfg.lastCall)
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &limitConfig{}

		err := Apply(cfg, withLimit(10), withStrict(true))
		require.NoError(t, err)
		require.Equal(t, 10, cfg.limit)
		require.True(t, cfg.strict)
		require.Equal(t, "setStrict", cfg.lastCall)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &limitConfig{}

		err := Apply(cfg, withLimit(5), withLimit(-1), withStrict(true))
		require.ErrorIs(t, err, ErrInvalidOption)
		require.ErrorIs(t, err, errNegative)
		require.Contains(t, err.Error(), "#1")
		require.Equal(t, 5, cfg.limit)
		require.False(t, cfg.strict)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &limitConfig{}

		err := Apply(cfg, nil, withLimit(3))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.limit)
	})

	t.Run("empty options", func(t *testing.T) {
		cfg := &limitConfig{}

		require.NoError(t, Apply(cfg))
		require.Equal(t, limitConfig{}, *cfg)
	})
}

func TestOption_GenericsWithPrimitive(t *testing.T) {
	var num int
	opt := NoError(func(n *int) { *n = 42 })

	require.NoError(t, Apply(&num, Option[*int](opt)))
	require.Equal(t, 42, num)
}

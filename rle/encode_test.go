package rle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{
			name:     "empty",
			input:    []byte{},
			expected: []byte{},
		},
		{
			name:     "single byte",
			input:    []byte{0x2A},
			expected: []byte{0x2A},
		},
		{
			name:     "distinct bytes stay literal",
			input:    []byte{1, 2, 3},
			expected: []byte{0x01, 0x02, 0x03},
		},
		{
			name:     "run then literal",
			input:    []byte{5, 5, 5, 9},
			expected: []byte{3, 0x85, 0x09},
		},
		{
			name:     "run of two",
			input:    []byte{0x10, 0x10},
			expected: []byte{2, 0x90},
		},
		{
			name:     "literal then short run",
			input:    []byte{1, 2, 2, 2},
			expected: []byte{1, 3, 0x82},
		},
		{
			name:     "zero bytes",
			input:    []byte{0, 0, 0, 0},
			expected: []byte{4, 0x80},
		},
		{
			name:     "saturated run",
			input:    bytes.Repeat([]byte{0x41}, 300),
			expected: []byte{255, 0xC1, 45, 0xC1},
		},
		{
			name:     "exact max run",
			input:    bytes.Repeat([]byte{0x7F}, 255),
			expected: []byte{255, 0xFF},
		},
		{
			name:     "max run plus one",
			input:    bytes.Repeat([]byte{0x7F}, 256),
			expected: []byte{255, 0xFF, 0x7F},
		},
		{
			name:     "long run after literal is split below the flag bit",
			input:    append([]byte{7}, bytes.Repeat([]byte{0x41}, 200)...),
			expected: []byte{7, 127, 0xC1, 73, 0xC1},
		},
		{
			name:     "run of 128 after literal",
			input:    append([]byte{7}, bytes.Repeat([]byte{0x41}, 128)...),
			expected: []byte{7, 127, 0xC1, 0x41},
		},
		{
			name:     "run of 127 after literal",
			input:    append([]byte{7}, bytes.Repeat([]byte{0x41}, 127)...),
			expected: []byte{7, 127, 0xC1},
		},
		{
			name:     "long run after run keeps full count",
			input:    append([]byte{3, 3}, bytes.Repeat([]byte{0x41}, 200)...),
			expected: []byte{2, 0x83, 200, 0xC1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.Clone(tt.input)

			n := Encode(buf)

			require.Equal(t, len(tt.expected), n)
			require.Equal(t, tt.expected, buf[:n])
		})
	}
}

func TestEncode_Nil(t *testing.T) {
	require.Equal(t, 0, Encode(nil))
}

func TestEncode_LeavesTailUntouched(t *testing.T) {
	buf := []byte{5, 5, 5, 9}

	n := Encode(buf)

	require.Equal(t, 3, n)
	require.Equal(t, byte(9), buf[3], "bytes past the encoded length are not cleared")
}

func TestEncode_MasksHighBitLiterals(t *testing.T) {
	buf := []byte{0x81, 0x02}

	n := Encode(buf)

	require.Equal(t, []byte{0x01, 0x02}, buf[:n])
}

func TestEncode_NeverExpands(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		data := randomRuns(seed, 2048)
		buf := bytes.Clone(data)

		n := Encode(buf)

		require.LessOrEqual(t, n, len(data), "seed %d", seed)
	}
}

func TestEncodeTo(t *testing.T) {
	src := []byte{5, 5, 5, 9}
	dst := make([]byte, len(src))

	n, err := EncodeTo(dst, src)
	require.NoError(t, err)
	require.Equal(t, []byte{3, 0x85, 0x09}, dst[:n])
	require.Equal(t, []byte{5, 5, 5, 9}, src, "source must not change")
}

func TestEncodeTo_ShortBuffer(t *testing.T) {
	src := []byte{1, 2, 3}
	dst := make([]byte, 2)

	_, err := EncodeTo(dst, src)
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestEncodeTo_SameBuffer(t *testing.T) {
	buf := bytes.Repeat([]byte{0x41}, 300)

	n, err := EncodeTo(buf, buf)
	require.NoError(t, err)
	require.Equal(t, []byte{255, 0xC1, 45, 0xC1}, buf[:n])
}

func TestAppendEncode(t *testing.T) {
	prefix := []byte("hdr")
	out := AppendEncode(prefix, []byte{5, 5, 5, 9})

	require.Equal(t, []byte{'h', 'd', 'r', 3, 0x85, 0x09}, out)
}

func TestAppendEncode_Empty(t *testing.T) {
	out := AppendEncode(nil, nil)
	require.Empty(t, out)
}

func TestMaxEncodedLen(t *testing.T) {
	require.Equal(t, 0, MaxEncodedLen(0))
	require.Equal(t, 65536, MaxEncodedLen(65536))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(nil))
	require.NoError(t, Validate([]byte{0, 0x7F, 0x41}))

	err := Validate([]byte{0x01, 0x02, 0x90})
	require.ErrorIs(t, err, ErrHighBitSet)
	require.Contains(t, err.Error(), "offset 2")
	require.Contains(t, err.Error(), "0x90")
}

package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		cType    CompressionType
		expected string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionRLE, "RLE"},
		{CompressionType(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cType.String())
		})
	}
}

func TestTokenKind_String(t *testing.T) {
	require.Equal(t, "Literal", TokenLiteral.String())
	require.Equal(t, "Run", TokenRun.String())
	require.Equal(t, "Unknown", TokenKind(0).String())
}

func TestIsRunFlagged(t *testing.T) {
	require.False(t, IsRunFlagged(0x00))
	require.False(t, IsRunFlagged(0x7F))
	require.True(t, IsRunFlagged(0x80))
	require.True(t, IsRunFlagged(0xC1))
	require.True(t, IsRunFlagged(byte(MaxRunLength)))
	require.False(t, IsRunFlagged(byte(MaxLiteralLedRun)))
}

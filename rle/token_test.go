package rle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rle7/format"
)

func TestTokens(t *testing.T) {
	var got []Token
	for tok := range Tokens([]byte{3, 0x85, 0x09, 255, 0xC1}) {
		got = append(got, tok)
	}

	require.Equal(t, []Token{
		{Kind: format.TokenRun, Offset: 0, Count: 3, Value: 5},
		{Kind: format.TokenLiteral, Offset: 2, Count: 1, Value: 9},
		{Kind: format.TokenRun, Offset: 3, Count: 255, Value: 0x41},
	}, got)
}

func TestTokens_Empty(t *testing.T) {
	for range Tokens(nil) {
		t.Fatal("no tokens expected")
	}
}

func TestTokens_EarlyStop(t *testing.T) {
	count := 0
	for range Tokens([]byte{1, 2, 3, 4}) {
		count++
		if count == 2 {
			break
		}
	}

	require.Equal(t, 2, count)
}

func TestToken_SizeAndString(t *testing.T) {
	run := Token{Kind: format.TokenRun, Offset: 4, Count: 3, Value: 5}
	lit := Token{Kind: format.TokenLiteral, Offset: 6, Count: 1, Value: 9}

	require.Equal(t, 2, run.Size())
	require.Equal(t, 1, lit.Size())
	require.Equal(t, "Run(3 x 0x05)@4", run.String())
	require.Equal(t, "Literal(0x09)@6", lit.String())
}

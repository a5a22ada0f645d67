package rle

import (
	"fmt"
	"iter"

	"github.com/arloliu/rle7/format"
)

// Token describes one token of an encoded stream.
type Token struct {
	Kind   format.TokenKind
	Offset int  // position of the token's first byte in the stream
	Count  int  // decoded bytes produced by the token
	Value  byte // decoded byte value
}

// Size returns the number of stream bytes the token occupies.
func (t Token) Size() int {
	if t.Kind == format.TokenRun {
		return 2
	}

	return 1
}

func (t Token) String() string {
	if t.Kind == format.TokenRun {
		return fmt.Sprintf("%s(%d x 0x%02x)@%d", t.Kind, t.Count, t.Value, t.Offset)
	}

	return fmt.Sprintf("%s(0x%02x)@%d", t.Kind, t.Value, t.Offset)
}

// Tokens iterates over the tokens of an encoded stream using the same pairing
// rule as the decoder.
func Tokens(src []byte) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for r := 0; r < len(src); {
			var tok Token
			if r+1 < len(src) && format.IsRunFlagged(src[r+1]) {
				tok = Token{Kind: format.TokenRun, Offset: r, Count: int(src[r]), Value: src[r+1] & format.LiteralMask}
			} else {
				tok = Token{Kind: format.TokenLiteral, Offset: r, Count: 1, Value: src[r]}
			}

			if !yield(tok) {
				return
			}
			r += tok.Size()
		}
	}
}

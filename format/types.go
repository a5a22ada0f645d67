package format

type (
	CompressionType uint8
	TokenKind       uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionRLE  CompressionType = 0x5 // CompressionRLE represents the 7-bit run-length token stream.

	TokenLiteral TokenKind = 0x1 // TokenLiteral is a single byte with the run flag clear.
	TokenRun     TokenKind = 0x2 // TokenRun is a count byte followed by a flagged value byte.
)

// Token stream layout.
const (
	// RunFlag marks the value byte of a run token.
	RunFlag byte = 0x80
	// LiteralMask keeps the 7 payload bits of a byte.
	LiteralMask byte = 0x7F

	// MinRunLength is the shortest sequence emitted as a run token.
	MinRunLength = 2
	// MaxRunLength is the largest count a single run token can carry.
	MaxRunLength = 255
	// MaxLiteralLedRun is the largest count allowed for a run token that directly
	// follows a literal. Larger counts set the top bit of the count byte, which the
	// decoder would take for a run flag belonging to the literal.
	MaxLiteralLedRun = 127
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionRLE:
		return "RLE"
	default:
		return "Unknown"
	}
}

func (k TokenKind) String() string {
	switch k {
	case TokenLiteral:
		return "Literal"
	case TokenRun:
		return "Run"
	default:
		return "Unknown"
	}
}

// IsRunFlagged reports whether b has the run flag set.
func IsRunFlagged(b byte) bool {
	return b&RunFlag != 0
}

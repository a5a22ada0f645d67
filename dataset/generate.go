package dataset

import (
	"fmt"
	"math/rand"
)

// Pattern selects the shape of generated data.
type Pattern uint8

const (
	PatternZeros   Pattern = iota + 1 // all zero bytes
	PatternRuns                       // runs of random length and value
	PatternText                       // repeated ASCII text
	PatternNoise                      // uniformly random 7-bit bytes
)

func (p Pattern) String() string {
	switch p {
	case PatternZeros:
		return "zeros"
	case PatternRuns:
		return "runs"
	case PatternText:
		return "text"
	case PatternNoise:
		return "noise"
	default:
		return "unknown"
	}
}

// ParsePattern parses the name returned by Pattern.String.
func ParsePattern(name string) (Pattern, error) {
	for _, p := range []Pattern{PatternZeros, PatternRuns, PatternText, PatternNoise} {
		if p.String() == name {
			return p, nil
		}
	}

	return 0, fmt.Errorf("unknown pattern %q", name)
}

const sampleText = "Sensor frame 0042: temp=21.5C  hum=40%      status=OK\n"

// Generate returns s bytes of 7-bit data following pattern p. The same seed
// always yields the same data.
func Generate(s Size, p Pattern, seed int64) ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, int(s))
	}

	data := make([]byte, int(s))
	rng := rand.New(rand.NewSource(seed)) //nolint: gosec

	switch p {
	case PatternZeros:
	case PatternRuns:
		for i := 0; i < len(data); {
			value := byte(rng.Intn(128))
			runLen := 1 + rng.Intn(300)
			for j := 0; j < runLen && i < len(data); j++ {
				data[i] = value
				i++
			}
		}
	case PatternText:
		for i := range data {
			data[i] = sampleText[i%len(sampleText)]
		}
	case PatternNoise:
		for i := range data {
			data[i] = byte(rng.Intn(128))
		}
	default:
		return nil, fmt.Errorf("unknown pattern %d", p)
	}

	return data, nil
}

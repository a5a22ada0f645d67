package rle

import "math/rand"

// randomRuns builds 7-bit data mixing literals with runs of every length class:
// short, just under and over the 127/255 boundaries.
func randomRuns(seed int64, size int) []byte {
	rng := rand.New(rand.NewSource(seed))
	data := make([]byte, 0, size)

	lengths := []int{1, 1, 1, 2, 3, 126, 127, 128, 129, 254, 255, 256, 300, 511}
	for len(data) < size {
		value := byte(rng.Intn(128))
		runLen := lengths[rng.Intn(len(lengths))]
		if rng.Intn(4) == 0 {
			runLen = 1 + rng.Intn(16)
		}

		for i := 0; i < runLen && len(data) < size; i++ {
			data = append(data, value)
		}
	}

	return data
}

package rle_test

import (
	"bytes"
	"fmt"

	"github.com/arloliu/rle7/rle"
)

func Example() {
	data := []byte{5, 5, 5, 9}

	buf := bytes.Clone(data)
	n := rle.Encode(buf)
	fmt.Printf("encoded: % x\n", buf[:n])

	m, err := rle.Decode(buf, n)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("decoded: %v\n", buf[:m])

	// Output:
	// encoded: 03 85 09
	// decoded: [5 5 5 9]
}

func ExampleTokens() {
	encoded := rle.AppendEncode(nil, bytes.Repeat([]byte{0x41}, 300))

	for tok := range rle.Tokens(encoded) {
		fmt.Println(tok)
	}

	// Output:
	// Run(255 x 0x41)@0
	// Run(45 x 0x41)@2
}

func ExampleNewDecoder() {
	dec, err := rle.NewDecoder(rle.WithScratchLimit(2))
	if err != nil {
		fmt.Println(err)
		return
	}

	buf := make([]byte, 300)
	copy(buf, []byte{255, 0xC1, 45, 0xC1})

	_, err = dec.Decode(buf, 4)
	fmt.Println(err)

	// Output:
	// rle: scratch buffer unavailable: 4 bytes requested, limit is 2
}

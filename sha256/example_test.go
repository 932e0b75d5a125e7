//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"fmt"
)

// Example hashes a message split across text and word updates.
func Example() {
	s := NewStream(nil)
	s.Update("ab")
	s.Update("cd")
	s.UpdateWords([]uint32{0x65666768})

	fmt.Printf("len=%d\n", s.Len())
	fmt.Printf("hex=%s\n", s.Digest().Hex())
	fmt.Printf("one-shot=%s\n", Hash("abcdefgh"))

	// Output:
	// len=8
	// hex=9c56cc51b374c3ba189210d5b6d4bf57790d351c96c47c02190ecf1e430635ab
	// one-shot=9c56cc51b374c3ba189210d5b6d4bf57790d351c96c47c02190ecf1e430635ab
}

func ExampleHashAs() {
	h, err := HashAs("abc", "hex")
	if err != nil {
		panic(err)
	}
	fmt.Println(h)
	// Output: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}

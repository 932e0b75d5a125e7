//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"bytes"
	stdsha256 "crypto/sha256"
	"fmt"
	"log"
	"time"

	"github.com/markkurossi/text/superscript"
	"golang.org/x/crypto/chacha20"

	"github.com/markkurossi/shastream/conv"
	"github.com/markkurossi/shastream/ctr"
	"github.com/markkurossi/shastream/sha256"
)

// messageBits lists the benchmarked message sizes as powers of two.
var messageBits = []int{6, 10, 16}

// input returns n pseudo-random bytes from the generator prg.
func input(prg string, n int) ([]byte, error) {
	var seed [32]byte
	copy(seed[:], "sha256sum benchmark")

	switch prg {
	case "chacha20":
		var nonce [chacha20.NonceSize]byte
		c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
		if err != nil {
			return nil, err
		}
		out := make([]byte, n)
		c.XORKeyStream(out, out)
		return out, nil

	case "aes-ctr":
		var counter [ctr.BlockSize]byte
		s, err := ctr.New(seed[:], counter[:])
		if err != nil {
			return nil, err
		}
		words := s.Encrypt(nil, make([]uint32, (n+3)/4))
		out := make([]byte, len(words)*4)
		conv.PutWords(out, words)
		return out[:n], nil

	default:
		return nil, fmt.Errorf("unknown generator: %s", prg)
	}
}

func benchmark(params *Params, mb int, prg string) error {
	timing := NewTiming()

	data, err := input(prg, mb*1024*1024)
	if err != nil {
		return err
	}
	total := uint64(len(data))
	timing.Sample(fmt.Sprintf("Input (%s)", prg), total)

	for _, b := range messageBits {
		size := 1 << b
		count := len(data) / size
		msgBytes := uint64(count * size)

		for i := 0; i < count; i++ {
			sha256.HashBytes(data[i*size : (i+1)*size])
		}
		mid := time.Now()
		for i := 0; i < count; i++ {
			stdsha256.Sum256(data[i*size : (i+1)*size])
		}
		sample := timing.Sample(fmt.Sprintf("2%s B messages",
			superscript.Itoa(b)), msgBytes*2)
		sample.SubSample("shastream", mid, msgBytes)
		sample.SubSample("crypto/sha256", sample.End, msgBytes)
	}

	s := sha256.NewStream(nil)
	for i := 0; i < len(data); i += params.Chunk {
		end := min(i+params.Chunk, len(data))
		if _, err := s.Write(data[i:end]); err != nil {
			return err
		}
	}
	digest := s.Digest().Bytes()
	timing.Sample(fmt.Sprintf("Stream (%s updates)",
		FileSize(params.Chunk)), total)

	expected := stdsha256.Sum256(data)
	if !bytes.Equal(digest[:], expected[:]) {
		return fmt.Errorf("digest mismatch: %x != %x", digest, expected)
	}
	if params.Verbose {
		log.Printf(" - stream digest %x\n", digest)
	}

	timing.Print(params.Out)
	return nil
}

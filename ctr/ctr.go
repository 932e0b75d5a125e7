//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package ctr implements a block cipher counter mode keystream over
// 32-bit words. The block cipher is used only to encrypt the 16-byte
// counter block; keystream blocks are consumed as four big-endian
// words.
package ctr

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/markkurossi/shastream/conv"
)

// BlockSize is the counter block size in bytes.
const BlockSize = 16

const blockWords = BlockSize / 4

var (
	// ErrCounterLength is returned if the initial counter is not
	// BlockSize bytes long.
	ErrCounterLength = errors.New("ctr: counter must be 16 bytes")

	// ErrBlockSize is returned if the block cipher block size is not
	// BlockSize.
	ErrBlockSize = errors.New("ctr: cipher block size must be 16 bytes")
)

// Stream generates the counter mode keystream and XORs it with
// words. The keystream position carries over between calls.
type Stream struct {
	block   cipher.Block
	counter [blockWords]uint32
	ks      [blockWords]uint32
	offset  int
}

// New creates an AES counter mode stream with the key and the
// initial counter block.
func New(key, counter []byte) (*Stream, error) {
	if len(counter) != BlockSize {
		return nil, fmt.Errorf("%w: got %d", ErrCounterLength, len(counter))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("ctr: %w", err)
	}
	return NewWithBlock(block, counter)
}

// NewWithBlock creates a counter mode stream for the block cipher.
func NewWithBlock(block cipher.Block, counter []byte) (*Stream, error) {
	if block.BlockSize() != BlockSize {
		return nil, fmt.Errorf("%w: got %d", ErrBlockSize, block.BlockSize())
	}
	if len(counter) != BlockSize {
		return nil, fmt.Errorf("%w: got %d", ErrCounterLength, len(counter))
	}
	s := &Stream{
		block:  block,
		offset: blockWords,
	}
	for i := range s.counter {
		s.counter[i] = conv.WordFromBytes(counter, i*4)
	}
	return s, nil
}

// Encrypt XORs src with the keystream and stores the result in dst.
// If dst is nil, Encrypt allocates it. The dst and src may overlap
// entirely. Encrypt returns dst[:len(src)].
func (s *Stream) Encrypt(dst, src []uint32) []uint32 {
	if dst == nil {
		dst = make([]uint32, len(src))
	}
	if len(dst) < len(src) {
		panic("ctr: output smaller than input")
	}
	for i, w := range src {
		if s.offset >= blockWords {
			s.refill()
		}
		dst[i] = w ^ s.ks[s.offset]
		s.offset++
	}
	return dst[:len(src)]
}

// Decrypt is Encrypt; counter mode is its own inverse.
func (s *Stream) Decrypt(dst, src []uint32) []uint32 {
	return s.Encrypt(dst, src)
}

// Counter returns the next counter block to be encrypted.
func (s *Stream) Counter() [BlockSize]byte {
	var result [BlockSize]byte
	conv.PutWords(result[:], s.counter[:])
	return result
}

func (s *Stream) refill() {
	var in, out [BlockSize]byte
	conv.PutWords(in[:], s.counter[:])
	s.block.Encrypt(out[:], in[:])
	for i := range s.ks {
		s.ks[i] = conv.WordFromBytes(out[:], i*4)
	}
	s.offset = 0
	s.increment()
}

// increment adds one to the counter as a 128-bit big-endian integer.
func (s *Stream) increment() {
	for i := blockWords - 1; i >= 0; i-- {
		s.counter[i]++
		if s.counter[i] != 0 {
			return
		}
	}
}

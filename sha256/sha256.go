//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha256 implements an incremental SHA-256 hash engine as
// defined in FIPS 180-4. The engine accepts input as byte strings
// and as pre-packed big-endian 32-bit words, interleaved across
// multiple updates of the same Stream, and renders the digest as raw
// words, lowercase hex, or big-endian binary.
package sha256

import (
	"errors"
	"fmt"
)

const (
	// BlockLength is the SHA-256 block size in bytes.
	BlockLength = 64

	// DigestLength is the SHA-256 digest size in bytes.
	DigestLength = 32
)

const (
	init0 = 0x6A09E667
	init1 = 0xBB67AE85
	init2 = 0x3C6EF372
	init3 = 0xA54FF53A
	init4 = 0x510E527F
	init5 = 0x9B05688C
	init6 = 0x1F83D9AB
	init7 = 0x5BE0CD19
)

var (
	// ErrInvalidStreamUsage is returned when a stream is updated in
	// a way its pending input does not allow: words after a partial
	// text word, or any update after the digest was taken.
	ErrInvalidStreamUsage = errors.New("sha256: invalid stream usage")

	// ErrInvalidOutputFormat is returned for unknown output formats.
	ErrInvalidOutputFormat = errors.New("sha256: invalid output format")
)

// State holds the eight 32-bit words of the hash state.
type State [8]uint32

// Reset sets the state to the SHA-256 initialization vector.
func (s *State) Reset() {
	s[0] = init0
	s[1] = init1
	s[2] = init2
	s[3] = init3
	s[4] = init4
	s[5] = init5
	s[6] = init6
	s[7] = init7
}

// Hash returns the SHA-256 digest of the byte string text.
func Hash(text string) Digest {
	var s Stream
	s.init(nil)
	absorb(&s, text)
	return s.Digest()
}

// HashBytes returns the SHA-256 digest of data.
func HashBytes(data []byte) Digest {
	var s Stream
	s.init(nil)
	absorb(&s, data)
	return s.Digest()
}

// HashWords returns the SHA-256 digest of the message formed by the
// big-endian bytes of words.
func HashWords(words []uint32) Digest {
	var s Stream
	s.init(nil)
	s.absorbWords(words)
	return s.Digest()
}

// HashAs returns the SHA-256 digest of text encoded in the output
// format named by token. See ParseFormat for the accepted tokens.
func HashAs(text, token string) (string, error) {
	format, err := ParseFormat(token)
	if err != nil {
		return "", err
	}
	return Hash(text).Encode(format)
}

func invalidUsage(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidStreamUsage, fmt.Sprintf(format, a...))
}

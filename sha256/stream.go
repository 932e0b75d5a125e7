//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"fmt"

	"github.com/markkurossi/shastream/conv"
)

// pending tags what kind of input a stream holds between updates.
type pending int

const (
	// pendingWords: no partial text word; text and word updates are
	// both accepted.
	pendingWords pending = iota
	// pendingText: 1-3 bytes of a text word are buffered; only text
	// updates are accepted.
	pendingText
	// finalized: the digest has been taken; only Clear is accepted.
	finalized
)

var pendingNames = map[pending]string{
	pendingWords: "words",
	pendingText:  "text",
	finalized:    "finalized",
}

func (p pending) String() string {
	name, ok := pendingNames[p]
	if ok {
		return name
	}
	return fmt.Sprintf("{pending %d}", int(p))
}

// Stream computes a SHA-256 digest incrementally. Text and word
// updates may be interleaved as long as no partial text word is
// pending when words are added. A Stream is not safe for concurrent
// use; independent Streams share no state.
type Stream struct {
	state  *State
	own    State
	buf    [16]uint32
	offset int
	tail   [4]byte
	ntail  int
	length uint64
	kind   pending
	digest Digest
	w      [64]uint32
}

// NewStream creates a new hash stream. If state is not nil, the
// stream keeps its hash state in it; otherwise the stream allocates
// its own.
func NewStream(state *State) *Stream {
	s := new(Stream)
	s.init(state)
	return s
}

func (s *Stream) init(state *State) {
	if state == nil {
		state = &s.own
	}
	s.state = state
	s.Clear()
}

// Clear resets the stream to its initial state. The state buffer
// given to NewStream, if any, is reset in place.
func (s *Stream) Clear() {
	s.state.Reset()
	s.buf = [16]uint32{}
	s.offset = 0
	s.ntail = 0
	s.length = 0
	s.kind = pendingWords
	s.digest = Digest{}
}

// Len returns the number of bytes consumed so far.
func (s *Stream) Len() uint64 {
	return s.length
}

// Update adds the byte string text to the stream.
func (s *Stream) Update(text string) error {
	if s.kind == finalized {
		return invalidUsage("update after digest")
	}
	absorb(s, text)
	return nil
}

// UpdateWords adds the big-endian bytes of words to the stream. It
// fails with ErrInvalidStreamUsage if a partial text word is pending.
func (s *Stream) UpdateWords(words []uint32) error {
	switch s.kind {
	case pendingText:
		return invalidUsage("word update with %d pending text bytes",
			s.ntail)
	case finalized:
		return invalidUsage("update after digest")
	}
	s.absorbWords(words)
	return nil
}

// Write implements io.Writer. It adds p to the stream in the same way
// as Update.
func (s *Stream) Write(p []byte) (int, error) {
	if s.kind == finalized {
		return 0, invalidUsage("write after digest")
	}
	absorb(s, p)
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (s *Stream) WriteString(text string) (int, error) {
	if err := s.Update(text); err != nil {
		return 0, err
	}
	return len(text), nil
}

// absorb adds the bytes of data to the stream. Complete big-endian
// words go to the pending block; 1-3 trailing bytes stay in the tail.
func absorb[T string | []byte](s *Stream, data T) {
	s.length += uint64(len(data))

	var i int
	if s.ntail > 0 {
		for ; s.ntail < 4 && i < len(data); i++ {
			s.tail[s.ntail] = data[i]
			s.ntail++
		}
		if s.ntail < 4 {
			return
		}
		s.push(uint32(s.tail[0])<<24 | uint32(s.tail[1])<<16 |
			uint32(s.tail[2])<<8 | uint32(s.tail[3]))
		s.ntail = 0
	}
	for ; i+4 <= len(data); i += 4 {
		s.push(uint32(data[i])<<24 | uint32(data[i+1])<<16 |
			uint32(data[i+2])<<8 | uint32(data[i+3]))
	}
	for ; i < len(data); i++ {
		s.tail[s.ntail] = data[i]
		s.ntail++
	}
	if s.ntail > 0 {
		s.kind = pendingText
	} else {
		s.kind = pendingWords
	}
}

func (s *Stream) absorbWords(words []uint32) {
	s.length += uint64(len(words)) * 4

	for len(words) >= 16-s.offset {
		n := copy(s.buf[s.offset:], words)
		words = words[n:]
		s.offset = 0
		compress(s.state, &s.w, &s.buf)
	}
	s.offset += copy(s.buf[s.offset:], words)
}

// push adds one word to the pending block and compresses the block
// when it fills.
func (s *Stream) push(w uint32) {
	s.buf[s.offset] = w
	s.offset++
	if s.offset == 16 {
		compress(s.state, &s.w, &s.buf)
		s.offset = 0
	}
}

// Digest pads the input, runs the final compression rounds, and
// returns the digest. After Digest the stream accepts no more
// updates until Clear; repeated Digest calls return the same value.
func (s *Stream) Digest() Digest {
	if s.kind != finalized {
		s.finish()
		s.digest = Digest(*s.state)
		s.kind = finalized
	}
	return s.digest
}

// DigestAs returns the digest encoded in the output format named by
// token. An invalid token leaves the stream unfinished.
func (s *Stream) DigestAs(token string) (string, error) {
	format, err := ParseFormat(token)
	if err != nil {
		return "", err
	}
	return s.Digest().Encode(format)
}

// Sum implements hash.Hash. It appends the digest of the data written
// so far to b without finalizing the stream.
func (s *Stream) Sum(b []byte) []byte {
	c := *s
	if s.state == &s.own {
		c.state = &c.own
	} else {
		state := *s.state
		c.state = &state
	}
	digest := c.Digest()
	for _, w := range digest {
		b = conv.AppendBytes(b, w)
	}
	return b
}

// Reset implements hash.Hash. It is equivalent to Clear.
func (s *Stream) Reset() {
	s.Clear()
}

// Size implements hash.Hash.
func (s *Stream) Size() int {
	return DigestLength
}

// BlockSize implements hash.Hash.
func (s *Stream) BlockSize() int {
	return BlockLength
}

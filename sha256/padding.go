//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

// finish appends the 0x80 terminator and the 64-bit message bit
// length, and compresses the final block(s).
func (s *Stream) finish() {
	var w uint32
	for i := 0; i < s.ntail; i++ {
		w |= uint32(s.tail[i]) << (24 - 8*i)
	}
	w |= 0x80 << (24 - 8*s.ntail)
	s.ntail = 0

	s.buf[s.offset] = w
	for i := s.offset + 1; i < 16; i++ {
		s.buf[i] = 0
	}

	// The length needs the last two words of the block.
	if s.offset >= 14 {
		compress(s.state, &s.w, &s.buf)
		s.buf = [16]uint32{}
	}
	s.buf[14], s.buf[15] = lengthWords(s.length)
	compress(s.state, &s.w, &s.buf)
	s.offset = 0
}

// lengthWords returns the high and low words of the message length
// in bits for a message of n bytes.
func lengthWords(n uint64) (hi, lo uint32) {
	return uint32(n >> 29), uint32(n << 3)
}

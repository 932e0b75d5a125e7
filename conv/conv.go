//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package conv implements conversions between byte strings, 32-bit
// words, and their hex representations. All words are big-endian.
package conv

const hexDigits = "0123456789abcdef"

// WordFromText returns the big-endian word formed by the four bytes
// of text starting at offset. Bytes beyond the end of text read as
// zero.
func WordFromText(text string, offset int) uint32 {
	var w uint32
	for i := 0; i < 4; i++ {
		w <<= 8
		if offset+i < len(text) {
			w |= uint32(text[offset+i])
		}
	}
	return w
}

// WordFromBytes returns the big-endian word formed by the four bytes
// of data starting at offset. Bytes beyond the end of data read as
// zero.
func WordFromBytes(data []byte, offset int) uint32 {
	var w uint32
	for i := 0; i < 4; i++ {
		w <<= 8
		if offset+i < len(data) {
			w |= uint32(data[offset+i])
		}
	}
	return w
}

// WordsFromText packs text into big-endian words. The last word is
// zero-padded if len(text) is not a multiple of four.
func WordsFromText(text string) []uint32 {
	result := make([]uint32, (len(text)+3)/4)
	for i := range result {
		result[i] = WordFromText(text, i*4)
	}
	return result
}

// WordsFromBytes packs data into big-endian words. The last word is
// zero-padded if len(data) is not a multiple of four.
func WordsFromBytes(data []byte) []uint32 {
	result := make([]uint32, (len(data)+3)/4)
	for i := range result {
		result[i] = WordFromBytes(data, i*4)
	}
	return result
}

// AppendHex appends the 8-character lowercase hex encoding of w to
// dst.
func AppendHex(dst []byte, w uint32) []byte {
	for shift := 28; shift >= 0; shift -= 4 {
		dst = append(dst, hexDigits[(w>>uint(shift))&0xf])
	}
	return dst
}

// HexFromWord returns the 8-character lowercase hex encoding of w.
func HexFromWord(w uint32) string {
	var buf [8]byte
	return string(AppendHex(buf[:0], w))
}

// AppendBytes appends the big-endian bytes of w to dst.
func AppendBytes(dst []byte, w uint32) []byte {
	return append(dst, byte(w>>24), byte(w>>16), byte(w>>8), byte(w))
}

// BytesFromWord returns the big-endian bytes of w as a 4-byte string.
func BytesFromWord(w uint32) string {
	var buf [4]byte
	return string(AppendBytes(buf[:0], w))
}

// PutWords stores words into dst in big-endian order. The dst slice
// must hold at least 4*len(words) bytes.
func PutWords(dst []byte, words []uint32) {
	for i, w := range words {
		dst[i*4] = byte(w >> 24)
		dst[i*4+1] = byte(w >> 16)
		dst[i*4+2] = byte(w >> 8)
		dst[i*4+3] = byte(w)
	}
}

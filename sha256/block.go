//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha256

import (
	"math/bits"
)

var _K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Block runs the SHA-256 compression function for one 16-word block
// and returns the updated state.
func Block(block [16]uint32, state State) State {
	var w [64]uint32
	compress(&state, &w, &block)
	return state
}

// schedule expands block into the 64 round words w.
func schedule(w *[64]uint32, block *[16]uint32) {
	copy(w[:16], block[:])

	for i := 16; i < 64; i++ {
		v1 := w[i-2]
		t1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^
			(v1 >> 10)

		v2 := w[i-15]
		t2 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^
			(v2 >> 3)

		w[i] = t1 + w[i-7] + t2 + w[i-16]
	}
}

// compress updates state in place with block. The w array is the
// caller's scratch space for the message schedule.
func compress(state *State, w *[64]uint32, block *[16]uint32) {
	schedule(w, block)

	a := state[0]
	b := state[1]
	c := state[2]
	d := state[3]
	e := state[4]
	f := state[5]
	g := state[6]
	h := state[7]

	for i := 0; i < 64; i++ {
		s1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^
			bits.RotateLeft32(e, -25)
		ch := g ^ (e & (f ^ g))

		s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^
			bits.RotateLeft32(a, -22)
		maj := (a & b) | (c & (a ^ b))

		t1 := h + s1 + ch + _K[i] + w[i]
		t2 := s0 + maj

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

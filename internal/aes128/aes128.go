// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package aes128 implements the AES-128 key schedule and the forward
// block transform in software (FIPS-197).
//
// Only encryption is provided. Counter mode never runs the inverse cipher.
package aes128

const (
	// KeySize is the AES-128 key size in bytes.
	KeySize = 16
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	rounds = 10
)

// Schedule holds the expanded round keys for one AES-128 key.
// A Schedule is never modified after Expand returns it, so it can be
// shared between goroutines.
type Schedule struct {
	rk [rounds + 1][BlockSize]byte
}

// Expand derives the round keys for key.
func Expand(key *[KeySize]byte) *Schedule {
	var w [4 * (rounds + 1)][4]byte
	for i := 0; i < 4; i++ {
		copy(w[i][:], key[4*i:4*i+4])
	}

	for i := 4; i < len(w); i++ {
		t := w[i-1]
		if i%4 == 0 {
			// RotWord, SubWord, Rcon.
			t[0], t[1], t[2], t[3] = sbox[t[1]], sbox[t[2]], sbox[t[3]], sbox[t[0]]
			t[0] ^= rcon[i/4]
		}
		for j := 0; j < 4; j++ {
			w[i][j] = w[i-4][j] ^ t[j]
		}
	}

	s := &Schedule{}
	for r := range s.rk {
		for c := 0; c < 4; c++ {
			copy(s.rk[r][4*c:], w[4*r+c][:])
		}
	}
	return s
}

// Encrypt encrypts the first block in src into dst.
// Dst and src must overlap entirely or not at all.
func (s *Schedule) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes128: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes128: output not full block")
	}

	var state [BlockSize]byte
	copy(state[:], src[:BlockSize])

	addRoundKey(&state, &s.rk[0])
	for r := 1; r < rounds; r++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, &s.rk[r])
	}

	// Final round has no MixColumns.
	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, &s.rk[rounds])

	copy(dst, state[:])
}

// The state is kept in input byte order: row r, column c lives at r+4c.

func addRoundKey(state, rk *[BlockSize]byte) {
	for i := range state {
		state[i] ^= rk[i]
	}
}

func subBytes(state *[BlockSize]byte) {
	for i := range state {
		state[i] = sbox[state[i]]
	}
}

func shiftRows(state *[BlockSize]byte) {
	// Row 1 rotates left by one, row 2 by two, row 3 by three.
	state[1], state[5], state[9], state[13] = state[5], state[9], state[13], state[1]
	state[2], state[6], state[10], state[14] = state[10], state[14], state[2], state[6]
	state[3], state[7], state[11], state[15] = state[15], state[3], state[7], state[11]
}

func mixColumns(state *[BlockSize]byte) {
	for c := 0; c < BlockSize; c += 4 {
		a0, a1, a2, a3 := state[c], state[c+1], state[c+2], state[c+3]
		t := a0 ^ a1 ^ a2 ^ a3
		state[c] = a0 ^ t ^ xtime(a0^a1)
		state[c+1] = a1 ^ t ^ xtime(a1^a2)
		state[c+2] = a2 ^ t ^ xtime(a2^a3)
		state[c+3] = a3 ^ t ^ xtime(a3^a0)
	}
}

// xtime multiplies b by x in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
func xtime(b byte) byte {
	if b&0x80 != 0 {
		return b<<1 ^ 0x1b
	}
	return b << 1
}

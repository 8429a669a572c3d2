// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aes128

import (
	"crypto/aes"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecodeHex(t testing.TB, s string) []byte {
	t.Helper()

	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func keyFromHex(t testing.TB, s string) *[KeySize]byte {
	t.Helper()

	var key [KeySize]byte
	require.Equal(t, KeySize, copy(key[:], mustDecodeHex(t, s)))
	return &key
}

// FIPS-197 Appendix A.1.
func TestExpandRoundKeys(t *testing.T) {
	s := Expand(keyFromHex(t, "2b7e151628aed2a6abf7158809cf4f3c"))

	assert.Equal(t, mustDecodeHex(t, "2b7e151628aed2a6abf7158809cf4f3c"), s.rk[0][:])
	assert.Equal(t, mustDecodeHex(t, "a0fafe1788542cb123a339392a6c7605"), s.rk[1][:])
	assert.Equal(t, mustDecodeHex(t, "d014f9a8c9ee2589e13f0cc8b6630ca6"), s.rk[rounds][:])
}

func TestEncryptKnownAnswer(t *testing.T) {
	for _, tc := range []struct {
		name       string
		key        string
		plaintext  string
		ciphertext string
	}{
		{
			name:       "FIPS-197 C.1",
			key:        "000102030405060708090a0b0c0d0e0f",
			plaintext:  "00112233445566778899aabbccddeeff",
			ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
		},
		{
			name:       "FIPS-197 B",
			key:        "2b7e151628aed2a6abf7158809cf4f3c",
			plaintext:  "3243f6a8885a308d313198a2e0370734",
			ciphertext: "3925841d02dc09fbdc118597196a0b32",
		},
		{
			name:       "SP 800-38A F.5.1 block 1",
			key:        "2b7e151628aed2a6abf7158809cf4f3c",
			plaintext:  "f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff",
			ciphertext: "ec8cdf7398607cb0f2d21675ea9ea1e4",
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			s := Expand(keyFromHex(t, tc.key))

			dst := make([]byte, BlockSize)
			s.Encrypt(dst, mustDecodeHex(t, tc.plaintext))
			assert.Equal(t, mustDecodeHex(t, tc.ciphertext), dst)
		})
	}
}

func TestEncryptMatchesStdlib(t *testing.T) {
	var key [KeySize]byte
	src := make([]byte, BlockSize)
	dst := make([]byte, BlockSize)
	reference := make([]byte, BlockSize)

	for i := 0; i < 256; i++ {
		_, err := rand.Read(key[:]) //nolint: gosec,staticcheck
		require.NoError(t, err)
		_, err = rand.Read(src) //nolint: gosec,staticcheck
		require.NoError(t, err)

		block, err := aes.NewCipher(key[:])
		require.NoError(t, err)

		Expand(&key).Encrypt(dst, src)
		block.Encrypt(reference, src)
		require.Equal(t, reference, dst)
	}
}

func TestEncryptInPlace(t *testing.T) {
	s := Expand(keyFromHex(t, "000102030405060708090a0b0c0d0e0f"))

	buf := mustDecodeHex(t, "00112233445566778899aabbccddeeff")
	s.Encrypt(buf, buf)
	assert.Equal(t, mustDecodeHex(t, "69c4e0d86a7b0430d8cdb78070b4c55a"), buf)
}

func TestEncryptShortBlock(t *testing.T) {
	s := Expand(&[KeySize]byte{})

	assert.Panics(t, func() { s.Encrypt(make([]byte, BlockSize), make([]byte, BlockSize-1)) })
	assert.Panics(t, func() { s.Encrypt(make([]byte, BlockSize-1), make([]byte, BlockSize)) })
}

func BenchmarkEncrypt(b *testing.B) {
	s := Expand(&[KeySize]byte{})
	buf := make([]byte, BlockSize)

	b.SetBytes(BlockSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Encrypt(buf, buf)
	}
}

func BenchmarkExpand(b *testing.B) {
	var key [KeySize]byte
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Expand(&key)
	}
}

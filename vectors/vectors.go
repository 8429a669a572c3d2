// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package vectors holds known-answer vectors for AES-128 counter mode and
// checks an Engine against them through both its blocking and its
// completion-callback API.
package vectors

import (
	"encoding/hex"
)

// Vector is one counter mode known-answer test.
type Vector struct {
	Name       string
	Key        []byte
	Counter    []byte
	Plaintext  []byte
	Ciphertext []byte
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// SP80038A returns the CTR-AES128 vectors of NIST SP 800-38A, F.5.1 and
// F.5.2. Decryption uses the same data in the other direction.
func SP80038A() []Vector {
	return []Vector{
		{
			Name:    "SP 800-38a",
			Key:     mustHex("2b7e151628aed2a6abf7158809cf4f3c"),
			Counter: mustHex("f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff"),
			Plaintext: mustHex("6bc1bee22e409f96e93d7e117393172a" +
				"ae2d8a571e03ac9c9eb76fac45af8e51" +
				"30c81c46a35ce411e5fbc1191a0a52ef" +
				"f69f2445df4f9b17ad2b417be66c3710"),
			Ciphertext: mustHex("874d6191b620e3261bef6864990db6ce" +
				"9806f66b7970fdff8617187bb9fffdff" +
				"5ae4df3edbd5d35e5b4f09020db03eab" +
				"1e031dda2fbe03d1792170a0f3009cee"),
		},
	}
}

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ctr implements counter (CTR) mode over a 128-bit block encrypter.
//
// CTR converts a block cipher into a stream cipher by
// repeatedly encrypting an incrementing counter and
// xoring the resulting stream of data with the input.
//
// See NIST SP 800-38A, pp 13-15
package ctr

import (
	"github.com/pion/transport/v3/utils/xor"
)

// BlockSize is the counter block size in bytes.
const BlockSize = 16

// Must be multiple of BlockSize
const streamBufferSize = 32 * BlockSize

// Block encrypts a single BlockSize block. It is satisfied by
// cipher.Block as well as the software AES-128 schedule.
type Block interface {
	Encrypt(dst, src []byte)
}

// XORKeyStream transforms buf in place by xoring it with the keystream
// produced from counter. The counter is advanced once for every block
// of keystream consumed, the trailing partial block included, so after
// the call it holds the next unused counter value.
//
// Encryption and decryption are the same operation.
func XORKeyStream(b Block, counter *[BlockSize]byte, buf []byte) {
	var out [streamBufferSize]byte

	for len(buf) > 0 {
		n := len(buf)
		if n > len(out) {
			n = len(out)
		}

		for i := 0; i < n; i += BlockSize {
			b.Encrypt(out[i:], counter[:])
			Increment(counter)
		}

		xor.XorBytes(buf[:n], buf[:n], out[:n])
		buf = buf[n:]
	}
}

// Increment adds one to counter as a big-endian integer, wrapping
// modulo 2^128.
func Increment(counter *[BlockSize]byte) {
	for i := len(counter) - 1; i >= 0; i-- {
		counter[i]++
		if counter[i] != 0 {
			break
		}
	}
}

/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// detBlockLen is the number of keystream bytes produced per refill.
const detBlockLen = 512

// UniformDet is a deterministic Source. Its values are read from the
// salsa20 keystream determined by key, so the same key always yields
// the same sequence of values in [0, 1).
type UniformDet struct {
	key   *[32]byte
	block uint64
	buf   []byte
	pos   int
}

// NewUniformDet returns an instance of the UniformDet source.
func NewUniformDet(key *[32]byte) *UniformDet {
	return &UniformDet{
		key: key,
		buf: make([]byte, detBlockLen),
		pos: detBlockLen,
	}
}

// Float64 returns the next value from [0, 1), using the top 53 bits
// of the next 8 keystream bytes.
func (u *UniformDet) Float64() float64 {
	if u.pos+8 > len(u.buf) {
		u.refill()
	}
	v := binary.LittleEndian.Uint64(u.buf[u.pos : u.pos+8])
	u.pos += 8

	return float64(v>>11) / (1 << 53)
}

// refill encrypts a zero block under a fresh nonce, one nonce per
// block counter value.
func (u *UniformDet) refill() {
	in := make([]byte, detBlockLen) // input is initialized to zeros
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, u.block)

	salsa20.XORKeyStream(u.buf, in, nonce, u.key)
	u.block++
	u.pos = 0
}

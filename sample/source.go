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
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/salsa20"
	"gonum.org/v1/gonum/mathext/prng"
)

// Source provides uniformly distributed random values in [0, 1).
type Source interface {
	Float64() float64
}

// globalSource is shared by every sampler created without an
// explicit Source.
var globalSource = newLockedSource(uint64(time.Now().UnixNano()))

// lockedSource is a Mersenne Twister that may be used from
// multiple goroutines.
type lockedSource struct {
	lock sync.Mutex
	mt   *prng.MT19937
}

func newLockedSource(seed uint64) *lockedSource {
	mt := prng.NewMT19937()
	mt.Seed(seed)
	return &lockedSource{mt: mt}
}

func (s *lockedSource) Float64() float64 {
	s.lock.Lock()
	u := s.mt.Uint64()
	s.lock.Unlock()
	return toUnit(u)
}

// seededSource is a Mersenne Twister with a caller-chosen seed.
type seededSource struct {
	mt *prng.MT19937
}

// NewSeededSource returns a Source whose sequence of values is fully
// determined by seed. The returned Source is not safe for concurrent
// use.
func NewSeededSource(seed uint64) Source {
	mt := prng.NewMT19937()
	mt.Seed(seed)
	return &seededSource{mt: mt}
}

func (s *seededSource) Float64() float64 {
	return toUnit(s.mt.Uint64())
}

// keyedBlock is the number of keystream bytes generated at once.
const keyedBlock = 512

// keyedSource derives random values from the salsa20 keystream
// of a 32 byte key, so that two sources with the same key produce
// the same values.
type keyedSource struct {
	key    *[32]byte
	nonce  []byte
	buf    []byte
	off    int
	blocks uint64
}

// NewKeyedSource returns a Source whose sequence of values is fully
// determined by key. An error is returned if key is nil. The returned
// Source is not safe for concurrent use.
func NewKeyedSource(key *[32]byte) (Source, error) {
	if key == nil {
		return nil, errors.New("keyed source requires a non-nil key")
	}
	return &keyedSource{
		key:   key,
		nonce: make([]byte, 8),
	}, nil
}

// Float64 returns the next value of the keystream mapped to [0, 1).
func (k *keyedSource) Float64() float64 {
	if k.off+8 > len(k.buf) {
		k.refill()
	}
	u := binary.LittleEndian.Uint64(k.buf[k.off : k.off+8])
	k.off += 8
	return toUnit(u)
}

// refill encrypts a fresh zero block under a nonce that counts the
// blocks consumed so far.
func (k *keyedSource) refill() {
	binary.LittleEndian.PutUint64(k.nonce, k.blocks)
	k.blocks++

	in := make([]byte, keyedBlock) // input is initialized to zeros
	out := make([]byte, keyedBlock)
	salsa20.XORKeyStream(out, in, k.nonce, k.key)

	k.buf = out
	k.off = 0
}

// toUnit maps the top 53 bits of u to a float in [0, 1).
func toUnit(u uint64) float64 {
	return float64(u>>11) / (1 << 53)
}

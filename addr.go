// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package idxset

import (
	"math/bits"
)

// WordBits is the number of indexes covered by a single chunk. It is 64
// on every platform so that chunk patterns and fingerprints do not depend
// on the size of uint.
const WordBits = 64

const allOnes = ^uint64(0)

// addr locates an index within a chunk sequence.
type addr struct {
	pos int  // chunk position, not index
	bit uint // invariant: bit < WordBits
}

func toAddr(i uint) addr {
	return addr{
		pos: int(i / WordBits),
		bit: i % WordBits,
	}
}

func (a addr) mask() uint64 {
	return 1 << a.bit
}

// index is the inverse of toAddr.
func (a addr) index() uint {
	hi, lo := bits.Mul(uint(a.pos), WordBits)
	if a.pos < 0 || hi != 0 {
		panic("idxset: capacity overflow: chunk position not addressable")
	}
	return lo + a.bit
}

// Address splits an index into its chunk position and the bit offset
// within that chunk.
func Address(i uint) (pos int, bit uint) {
	a := toAddr(i)
	return a.pos, a.bit
}

// IndexAt is the inverse of Address. It panics if pos*WordBits+bit is
// not representable as a uint.
func IndexAt(pos int, bit uint) uint {
	if bit >= WordBits {
		panic("idxset: bit offset out of range")
	}
	return addr{pos: pos, bit: bit}.index()
}

// capacityFor returns the smallest power of two strictly greater than
// pos, the chunk count used when growing to reach pos.
func capacityFor(pos int) int {
	n := bits.Len(uint(pos))
	if pos < 0 || n >= bits.UintSize-1 {
		panic("idxset: capacity overflow: chunk count not addressable")
	}
	return 1 << n
}

// rangeMask returns a chunk with bits lo through hi (inclusive) set.
func rangeMask(lo, hi uint) uint64 {
	return (allOnes << lo) & (allOnes >> (WordBits - 1 - hi))
}

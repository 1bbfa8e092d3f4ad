// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package idxset

import (
	"math/bits"
)

// ChunkSource is anything that can be read as a sequence of chunks, and
// therefore as a set of indexes.
//
// Chunk reports the chunk at position pos. When ok is false the chunk is
// absent: pos and every later position are zero, and chunk must be 0. A
// present chunk may itself be zero, meaning only that this chunk holds no
// members.
//
// ZeroBound returns a position at or past which every chunk is absent or
// zero. It may be loose; ExactZeroBound computes the tight bound.
//
// Sources are read without synchronization: a source must not be mutated
// while anything (an iterator, a Combined view) is reading it.
type ChunkSource interface {
	Chunk(pos int) (chunk uint64, ok bool)
	ZeroBound() int
}

// ChunkSlice is a plain chunk slice read as a set. Positions past its end
// are absent.
type ChunkSlice []uint64

func (c ChunkSlice) Chunk(pos int) (uint64, bool) {
	if uint(pos) >= uint(len(c)) {
		return 0, false
	}
	return c[pos], true
}

func (c ChunkSlice) ZeroBound() int {
	return len(c)
}

// Word is a single chunk read as a set of indexes below WordBits.
type Word uint64

func (w Word) Chunk(pos int) (uint64, bool) {
	if pos != 0 {
		return 0, false
	}
	return uint64(w), true
}

func (w Word) ZeroBound() int {
	return 1
}

// ExactZeroBound returns the smallest position p such that every chunk at
// or after p is zero, scanning backwards from src.ZeroBound().
func ExactZeroBound(src ChunkSource) int {
	n := src.ZeroBound()
	for n > 0 {
		if c, _ := src.Chunk(n - 1); c != 0 {
			break
		}
		n--
	}
	return n
}

// Contains reports whether index i is a member of src.
func Contains(src ChunkSource, i uint) bool {
	a := toAddr(i)
	c, ok := src.Chunk(a.pos)
	return ok && c&a.mask() != 0
}

// Count returns the number of members of src.
func Count(src ChunkSource) int {
	n := 0
	for pos := 0; ; pos++ {
		c, ok := src.Chunk(pos)
		if !ok {
			return n
		}
		n += bits.OnesCount64(c)
	}
}

// IsEmpty reports whether src has no members.
func IsEmpty(src ChunkSource) bool {
	for pos := 0; ; pos++ {
		c, ok := src.Chunk(pos)
		if !ok {
			return true
		}
		if c != 0 {
			return false
		}
	}
}

// Min returns the smallest member of src. ok is false if src is empty.
func Min(src ChunkSource) (i uint, ok bool) {
	for pos := 0; ; pos++ {
		c, present := src.Chunk(pos)
		if !present {
			return 0, false
		}
		if c != 0 {
			return addr{pos: pos, bit: uint(bits.TrailingZeros64(c))}.index(), true
		}
	}
}

// Max returns the largest member of src. ok is false if src is empty.
func Max(src ChunkSource) (i uint, ok bool) {
	n := ExactZeroBound(src)
	if n == 0 {
		return 0, false
	}
	c, _ := src.Chunk(n - 1)
	return addr{pos: n - 1, bit: uint(WordBits - 1 - bits.LeadingZeros64(c))}.index(), true
}

// AppendChunks appends the chunks of src, up to the first absent one, to
// dst and returns the extended slice.
func AppendChunks(dst []uint64, src ChunkSource) []uint64 {
	for pos := 0; ; pos++ {
		c, ok := src.Chunk(pos)
		if !ok {
			return dst
		}
		dst = append(dst, c)
	}
}

// Equal reports whether a and b have the same members, regardless of how
// many trailing zero chunks either carries.
func Equal(a, b ChunkSource) bool {
	for pos := 0; ; pos++ {
		ca, aok := a.Chunk(pos)
		cb, bok := b.Chunk(pos)
		if !aok && !bok {
			return true
		}
		if ca != cb {
			return false
		}
	}
}

// IsSubset reports whether every member of a is a member of b.
func IsSubset(a, b ChunkSource) bool {
	ord, ok := Compare(a, b)
	return ok && ord <= 0
}

// IsSuperset reports whether every member of b is a member of a.
func IsSuperset(a, b ChunkSource) bool {
	ord, ok := Compare(a, b)
	return ok && ord >= 0
}

// IsDisjoint reports whether a and b have no members in common.
func IsDisjoint(a, b ChunkSource) bool {
	return IsEmpty(Intersection(a, b))
}

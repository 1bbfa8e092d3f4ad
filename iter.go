// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package idxset

import (
	"iter"
	"math/bits"
)

// ChunkIter yields the chunks of a source in position order, stopping at
// the first absent chunk.
type ChunkIter struct {
	src  ChunkSource
	next int
}

// NewChunkIter returns an iterator over the chunks of src.
func NewChunkIter(src ChunkSource) *ChunkIter {
	return &ChunkIter{src: src}
}

// Next returns the next chunk. ok is false once the source is exhausted.
func (it *ChunkIter) Next() (chunk uint64, ok bool) {
	c, ok := it.src.Chunk(it.next)
	if !ok {
		return 0, false
	}
	it.next++
	return c, true
}

// IndexIter yields the members of a source in strictly ascending order.
// It is single-pass.
type IndexIter struct {
	chunks ChunkIter
	// rest holds the not yet yielded bits of chunk chunks.next-1.
	rest uint64
}

// NewIndexIter returns an iterator over the members of src.
func NewIndexIter(src ChunkSource) *IndexIter {
	return &IndexIter{chunks: ChunkIter{src: src}}
}

// Next returns the next member. ok is false once every member has been
// returned.
func (it *IndexIter) Next() (i uint, ok bool) {
	for it.rest == 0 {
		c, ok := it.chunks.Next()
		if !ok {
			return 0, false
		}
		it.rest = c
	}
	bit := uint(bits.TrailingZeros64(it.rest))
	it.rest &= it.rest - 1
	return addr{pos: it.chunks.next - 1, bit: bit}.index(), true
}

// Chunks returns an iterator over the chunks of src.
func Chunks(src ChunkSource) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		it := ChunkIter{src: src}
		for c, ok := it.Next(); ok; c, ok = it.Next() {
			if !yield(c) {
				return
			}
		}
	}
}

// Indexes returns an iterator over the members of src in ascending order.
func Indexes(src ChunkSource) iter.Seq[uint] {
	return func(yield func(uint) bool) {
		it := IndexIter{chunks: ChunkIter{src: src}}
		for i, ok := it.Next(); ok; i, ok = it.Next() {
			if !yield(i) {
				return
			}
		}
	}
}

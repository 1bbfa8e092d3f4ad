// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package idxset

import (
	"iter"
	"runtime"
	"unsafe"

	"github.com/bpowers/idxset/internal/chunkalloc"
	"github.com/bpowers/idxset/internal/zero"
)

// Inline lists the array types a Set can hold inline. The array length N
// is the number of chunks (N*WordBits indexes) stored without any heap
// allocation.
type Inline interface {
	~[1]uint64 | ~[2]uint64 | ~[3]uint64 | ~[4]uint64 |
		~[6]uint64 | ~[8]uint64 | ~[16]uint64 | ~[32]uint64
}

// Set is a packed bitmap of indexes that stores its first len(A) chunks
// inline and switches to an exclusively owned buffer once it needs more.
//
// The zero value is an empty set using inline storage. A Set owns its
// buffer: copy sets with Clone, not assignment (go vet reports copies).
//
// A Set is not safe for concurrent mutation. Concurrent reads of a set
// nobody is mutating are fine.
type Set[A Inline] struct {
	_      noCopy
	inline A
	// heap is nil in inline mode; otherwise it holds more than len(inline)
	// chunks. The mode is derived from it, never stored separately.
	heap []uint64
	// mapping owns heap when heap is an anonymous memory mapping.
	mapping *chunkalloc.Mapping
}

// noCopy may be embedded into structs which must not be copied after
// first use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// New returns an empty set using inline storage.
func New[A Inline]() *Set[A] {
	return new(Set[A])
}

// WithChunkCapacity returns an empty set with room for c chunks, or the
// inline capacity if that is larger.
func WithChunkCapacity[A Inline](c int) *Set[A] {
	s := new(Set[A])
	s.Grow(c)
	return s
}

// WithMappedCapacity returns an empty set with room for c chunks held in
// an anonymous memory mapping outside the Go heap. The set stays mapped
// as it grows, until ShrinkToFit or Release; the mapping is also
// unmapped once the set becomes unreachable. If c fits inline, or the
// platform has no anonymous mappings, it is WithChunkCapacity.
func WithMappedCapacity[A Inline](c int) *Set[A] {
	s := new(Set[A])
	if c <= len(s.inline) || !chunkalloc.CanMap {
		s.Grow(c)
		return s
	}
	s.mapping = chunkalloc.Map(c)
	s.heap = s.mapping.Chunks()
	return s
}

// FromIndexes returns a set containing the given indexes. Duplicates
// collapse.
func FromIndexes[A Inline](indexes ...uint) *Set[A] {
	s := new(Set[A])
	for _, i := range indexes {
		s.Insert(i)
	}
	return s
}

// FromSeq returns a set containing every index seq yields.
func FromSeq[A Inline](seq iter.Seq[uint]) *Set[A] {
	s := new(Set[A])
	for i := range seq {
		s.Insert(i)
	}
	return s
}

// FromChunks returns a set whose chunk at position p is the p-th chunk
// seq yields.
func FromChunks[A Inline](seq iter.Seq[uint64]) *Set[A] {
	s := new(Set[A])
	pos := 0
	for c := range seq {
		if c != 0 {
			s.GrowToAccommodate(pos)
			s.chunks()[pos] = c
		}
		pos++
	}
	return s
}

// Collect materializes src into a new set. Storage is sized once, from
// src.ZeroBound().
func Collect[A Inline](src ChunkSource) *Set[A] {
	s := WithChunkCapacity[A](src.ZeroBound())
	dst := s.chunks()
	for pos := range dst {
		c, ok := src.Chunk(pos)
		if !ok {
			break
		}
		dst[pos] = c
	}
	return s
}

func (s *Set[A]) inlineChunks() []uint64 {
	return unsafe.Slice((*uint64)(unsafe.Pointer(&s.inline)), len(s.inline))
}

func (s *Set[A]) chunks() []uint64 {
	if s.heap != nil {
		return s.heap
	}
	return s.inlineChunks()
}

// ChunkCount returns the number of chunks the set currently owns. It is
// never less than the inline capacity.
func (s *Set[A]) ChunkCount() int {
	if s.heap != nil {
		return len(s.heap)
	}
	return len(s.inline)
}

// IsInline reports whether the set's chunks live in its inline block.
func (s *Set[A]) IsInline() bool {
	return s.heap == nil
}

// IsMapped reports whether the set's chunks live in an anonymous memory
// mapping.
func (s *Set[A]) IsMapped() bool {
	return s.mapping != nil
}

func (s *Set[A]) Chunk(pos int) (uint64, bool) {
	c := s.chunks()
	if uint(pos) >= uint(len(c)) {
		return 0, false
	}
	chunk := c[pos]
	runtime.KeepAlive(s)
	return chunk, true
}

func (s *Set[A]) ZeroBound() int {
	return s.ChunkCount()
}

// Insert adds index i, growing storage if needed, and reports whether i
// was absent before.
func (s *Set[A]) Insert(i uint) bool {
	a := toAddr(i)
	s.GrowToAccommodate(a.pos)
	c := &s.chunks()[a.pos]
	was := *c&a.mask() != 0
	*c |= a.mask()
	runtime.KeepAlive(s)
	return !was
}

// Remove removes index i and reports whether it was present. Storage
// never shrinks.
func (s *Set[A]) Remove(i uint) bool {
	a := toAddr(i)
	chunks := s.chunks()
	if a.pos >= len(chunks) {
		// can't remove: absent chunks already encode a zero bit
		return false
	}
	c := &chunks[a.pos]
	was := *c&a.mask() != 0
	*c &^= a.mask()
	runtime.KeepAlive(s)
	return was
}

// Toggle flips the membership of index i and reports whether i is a
// member afterwards.
func (s *Set[A]) Toggle(i uint) bool {
	a := toAddr(i)
	s.GrowToAccommodate(a.pos)
	c := &s.chunks()[a.pos]
	*c ^= a.mask()
	present := *c&a.mask() != 0
	runtime.KeepAlive(s)
	return present
}

// InsertRange adds every index in [lo, hi). An empty or inverted range
// does nothing.
func (s *Set[A]) InsertRange(lo, hi uint) {
	if lo >= hi {
		return
	}
	first, last := toAddr(lo), toAddr(hi-1)
	s.GrowToAccommodate(last.pos)
	c := s.chunks()

	defer runtime.KeepAlive(s)

	if first.pos == last.pos {
		c[first.pos] |= rangeMask(first.bit, last.bit)
		return
	}
	c[first.pos] |= rangeMask(first.bit, WordBits-1)
	for pos := first.pos + 1; pos < last.pos; pos++ {
		c[pos] = allOnes
	}
	c[last.pos] |= rangeMask(0, last.bit)
}

// RemoveRange removes every index in [lo, hi). An empty or inverted range
// does nothing, and storage never grows or shrinks.
func (s *Set[A]) RemoveRange(lo, hi uint) {
	if lo >= hi {
		return
	}
	c := s.chunks()
	first, last := toAddr(lo), toAddr(hi-1)
	if first.pos >= len(c) {
		return
	}
	if last.pos >= len(c) {
		last = addr{pos: len(c) - 1, bit: WordBits - 1}
	}
	defer runtime.KeepAlive(s)

	if first.pos == last.pos {
		c[first.pos] &^= rangeMask(first.bit, last.bit)
		return
	}
	c[first.pos] &^= rangeMask(first.bit, WordBits-1)
	zero.U64(c[first.pos+1 : last.pos])
	c[last.pos] &^= rangeMask(0, last.bit)
}

// InsertAll adds every member of src.
func (s *Set[A]) InsertAll(src ChunkSource) {
	for pos := 0; ; pos++ {
		c, ok := src.Chunk(pos)
		if !ok {
			return
		}
		if c == 0 {
			continue
		}
		s.GrowToAccommodate(pos)
		s.chunks()[pos] |= c
	}
}

// RemoveAll removes every member of src. Storage never grows.
func (s *Set[A]) RemoveAll(src ChunkSource) {
	defer runtime.KeepAlive(s)
	dst := s.chunks()
	for pos := range dst {
		c, ok := src.Chunk(pos)
		if !ok {
			return
		}
		dst[pos] &^= c
	}
}

// Grow makes the set own at least n chunks, moving from inline storage to
// a buffer (or from a smaller buffer to a larger one) as needed. Buffers
// come from the Go heap unless the set is mapped, in which case the new
// buffer is a mapping too.
func (s *Set[A]) Grow(n int) {
	old := s.chunks()
	if n <= len(old) {
		return
	}
	if s.mapping != nil {
		m := chunkalloc.Map(n)
		copy(m.Chunks(), old)
		s.freeHeap()
		s.mapping, s.heap = m, m.Chunks()
		return
	}
	buf := chunkalloc.Alloc(n)
	copy(buf, old)
	s.heap = buf
}

// GrowToAccommodate makes chunk position pos addressable. When it has to
// grow, the new chunk count is the smallest power of two greater than
// pos, so repeated growth is amortized.
func (s *Set[A]) GrowToAccommodate(pos int) {
	if pos < s.ChunkCount() {
		return
	}
	s.Grow(capacityFor(pos))
}

// ShrinkToFit reduces storage to the exact zero bound, returning to inline
// storage when that fits. Members are unchanged. A mapped set moves to the
// Go heap.
func (s *Set[A]) ShrinkToFit() {
	n := max(ExactZeroBound(s), len(s.inline))
	old := s.chunks()
	if n >= len(old) && s.mapping == nil {
		return
	}
	if n == len(s.inline) {
		copy(s.inlineChunks(), old[:n])
		s.freeHeap()
		return
	}
	buf := chunkalloc.Alloc(n)
	copy(buf, old[:n])
	s.freeHeap()
	s.heap = buf
}

// Clear removes every member. Storage is kept.
func (s *Set[A]) Clear() {
	zero.U64(s.chunks())
	runtime.KeepAlive(s)
}

// Release empties the set and drops its buffer, unmapping it if the set
// is mapped. The set is usable afterwards, in inline mode.
func (s *Set[A]) Release() {
	s.freeHeap()
	zero.U64(s.inlineChunks())
}

func (s *Set[A]) freeHeap() {
	s.heap = nil
	if s.mapping != nil {
		s.mapping.Free()
		s.mapping = nil
	}
}

// Clone returns an independent copy of s with the same chunk count. The
// copy's buffer always comes from the Go heap.
func (s *Set[A]) Clone() *Set[A] {
	c := &Set[A]{inline: s.inline}
	if s.heap != nil {
		c.heap = chunkalloc.Alloc(len(s.heap))
		copy(c.heap, s.heap)
	}
	runtime.KeepAlive(s)
	return c
}

// CopyFrom replaces the members of s with the members of src.
func (s *Set[A]) CopyFrom(src ChunkSource) {
	s.Clear()
	s.InsertAll(src)
}

// OverwriteCombined replaces s with op applied to s and other, in place.
// Storage grows once, to the exact bound of the result; chunks past the
// point where the result becomes absent are zeroed.
func (s *Set[A]) OverwriteCombined(op Op, other ChunkSource) {
	defer runtime.KeepAlive(s)
	combined := Combined[Op]{a: s, b: other, op: op}
	s.Grow(ExactZeroBound(combined))
	dst := s.chunks()
	for pos := range dst {
		// reads position pos of s before writing it
		c, ok := combined.Chunk(pos)
		if !ok {
			zero.U64(dst[pos:])
			return
		}
		dst[pos] = c
	}
}

// DecrementPowerset steps s to the set immediately before it in powerset
// order ({}, {0}, {1}, {0,1}, {2}, ...), treating the chunks as one
// little-endian binary number and subtracting one. It reports false, and
// leaves s unchanged, if s is already empty.
func (s *Set[A]) DecrementPowerset() bool {
	defer runtime.KeepAlive(s)
	c := s.chunks()
	for pos, w := range c {
		if w == 0 {
			continue
		}
		c[pos] = w - 1
		// the borrow turned every lower chunk from all zeros to all ones
		for lower := 0; lower < pos; lower++ {
			c[lower] = allOnes
		}
		return true
	}
	return false
}

// IncrementPowerset steps s to the set immediately after it in powerset
// order, growing if the carry runs past the current storage.
func (s *Set[A]) IncrementPowerset() {
	c := s.chunks()
	pos := 0
	for pos < len(c) && c[pos] == allOnes {
		pos++
	}
	s.GrowToAccommodate(pos)
	c = s.chunks()
	c[pos]++
	zero.U64(c[:pos])
	runtime.KeepAlive(s)
}

// Drain returns an iterator over the members of s, in ascending order,
// that empties s once iteration stops.
func (s *Set[A]) Drain() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		defer s.Clear()
		it := NewIndexIter(s)
		for i, ok := it.Next(); ok; i, ok = it.Next() {
			if !yield(i) {
				return
			}
		}
	}
}

// Contains reports whether index i is a member of s.
func (s *Set[A]) Contains(i uint) bool {
	a := toAddr(i)
	c := s.chunks()
	present := a.pos < len(c) && c[a.pos]&a.mask() != 0
	runtime.KeepAlive(s)
	return present
}

// Count returns the number of members of s.
func (s *Set[A]) Count() int { return Count(s) }

// IsEmpty reports whether s has no members.
func (s *Set[A]) IsEmpty() bool { return IsEmpty(s) }

// Min returns the smallest member of s.
func (s *Set[A]) Min() (uint, bool) { return Min(s) }

// Max returns the largest member of s.
func (s *Set[A]) Max() (uint, bool) { return Max(s) }

// All returns an iterator over the members of s in ascending order.
func (s *Set[A]) All() iter.Seq[uint] { return Indexes(s) }

// Equal reports whether s and other have the same members.
func (s *Set[A]) Equal(other ChunkSource) bool { return Equal(s, other) }

// Hash returns Fingerprint(s).
func (s *Set[A]) Hash() uint64 { return Fingerprint(s) }

func (s *Set[A]) String() string { return Format(s) }

func (s *Set[A]) chunkView() []uint64 { return s.chunks() }

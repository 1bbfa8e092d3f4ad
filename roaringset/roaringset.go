// Copyright 2023 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package roaringset connects roaring bitmaps to idxset: a roaring bitmap
// can be read lazily as a chunk source (and so combined with packed sets
// without conversion), and sets convert to and from roaring bitmaps.
package roaringset

import (
	"errors"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/bpowers/idxset"
)

var ErrIndexTooLarge = errors.New("index does not fit in a 32-bit roaring bitmap")

// Source reads a roaring bitmap as a chunk sequence. Reading chunks in
// ascending position order reuses one bitmap iterator; reading an earlier
// position starts a new one. The bitmap must not be modified while the
// Source is in use, and a Source is not safe for concurrent use.
type Source struct {
	rb    *roaring.Bitmap
	bound int
	it    roaring.IntPeekable
	// last is the position of the previous Chunk call, -1 before any.
	last int
}

// NewSource returns a chunk source view of rb.
func NewSource(rb *roaring.Bitmap) *Source {
	bound := 0
	if !rb.IsEmpty() {
		bound = int(rb.Maximum()/idxset.WordBits) + 1
	}
	return &Source{rb: rb, bound: bound, last: -1}
}

func (s *Source) Chunk(pos int) (uint64, bool) {
	if pos < 0 || pos >= s.bound {
		return 0, false
	}
	if s.it == nil || pos <= s.last {
		s.it = s.rb.Iterator()
	}
	s.last = pos

	base := uint64(pos) * idxset.WordBits
	s.it.AdvanceIfNeeded(uint32(base))
	var c uint64
	for s.it.HasNext() {
		v := uint64(s.it.PeekNext())
		if v >= base+idxset.WordBits {
			break
		}
		c |= 1 << (v - base)
		s.it.Next()
	}
	return c, true
}

// ZeroBound is exact: one past the chunk holding the bitmap's maximum.
func (s *Source) ZeroBound() int {
	return s.bound
}

// FromRoaring returns a packed set with the members of rb.
func FromRoaring[A idxset.Inline](rb *roaring.Bitmap) *idxset.Set[A] {
	s := idxset.WithChunkCapacity[A](NewSource(rb).ZeroBound())
	it := rb.Iterator()
	for it.HasNext() {
		s.Insert(uint(it.Next()))
	}
	return s
}

// ToRoaring returns a roaring bitmap with the members of src. It fails
// with ErrIndexTooLarge if a member does not fit in 32 bits.
func ToRoaring(src idxset.ChunkSource) (*roaring.Bitmap, error) {
	if hi, ok := idxset.Max(src); ok && hi > math.MaxUint32 {
		return nil, fmt.Errorf("ToRoaring: %w: %d", ErrIndexTooLarge, hi)
	}
	rb := roaring.New()
	it := idxset.NewIndexIter(src)
	for i, ok := it.Next(); ok; i, ok = it.Next() {
		rb.Add(uint32(i))
	}
	return rb, nil
}

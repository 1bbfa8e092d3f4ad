// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package idxset

import (
	"math/rand"
	"sort"
	"sync"
)

var (
	_ ChunkSource = (*Set[[1]uint64])(nil)
	_ ChunkSource = Combined[Or]{}
	_ ChunkSource = Combined[Op]{}
	_ ChunkSource = ChunkSlice(nil)
	_ ChunkSource = Word(0)

	// go vet's copylocks check reports value copies of anything holding a
	// Locker, Set included.
	_ sync.Locker = (*noCopy)(nil)
)

type set2 = Set[[2]uint64]

// stream returns n pseudo-random indexes in [0, bound), duplicates and all.
func stream(seed int64, n int, bound uint) []uint {
	rng := rand.New(rand.NewSource(seed))
	out := make([]uint, n)
	for i := range out {
		out[i] = uint(rng.Int63n(int64(bound)))
	}
	return out
}

func seededStream(seed int64) []uint {
	return stream(seed, 60, 120)
}

// hset is the reference set the packed representation is checked against.
type hset map[uint]struct{}

func newHset(indexes []uint) hset {
	h := make(hset)
	for _, i := range indexes {
		h[i] = struct{}{}
	}
	return h
}

func (h hset) sorted() []uint {
	out := make([]uint, 0, len(h))
	for i := range h {
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a] < out[b] })
	return out
}

func collectIndexes(src ChunkSource) []uint {
	out := []uint{}
	for i := range Indexes(src) {
		out = append(out, i)
	}
	return out
}

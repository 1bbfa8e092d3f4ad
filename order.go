// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package idxset

// Compare orders a and b by inclusion. It returns -1 if a is a proper
// subset of b, 0 if they are equal, and +1 if a is a proper superset of
// b. ok is false when neither contains the other.
func Compare(a, b ChunkSource) (ord int, ok bool) {
	for pos := 0; ; pos++ {
		ca, aok := a.Chunk(pos)
		cb, bok := b.Chunk(pos)
		if !aok && !bok {
			return ord, true
		}
		if ca&^cb != 0 {
			// a has a member b lacks
			if ord < 0 {
				return 0, false
			}
			ord = 1
		}
		if cb&^ca != 0 {
			// b has a member a lacks
			if ord > 0 {
				return 0, false
			}
			ord = -1
		}
	}
}

// CompareChunks is a total order over sets by their encoding: chunk
// sequences are compared position by position from 0 as unsigned
// integers, absent chunks reading as zero, and the first difference
// decides. It returns -1, 0 or +1. It is unrelated to inclusion order.
func CompareChunks(a, b ChunkSource) int {
	for pos := 0; ; pos++ {
		ca, aok := a.Chunk(pos)
		cb, bok := b.Chunk(pos)
		switch {
		case !aok && !bok:
			return 0
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}
	}
}

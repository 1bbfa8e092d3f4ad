// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package idxset

// Combined is a lazy view of op applied to two sources. Nothing is
// computed until a chunk is read, and no result is ever materialized.
//
// A Combined borrows its sources: build it, consume it (iterate, count,
// compare, Collect), and drop it, without mutating either source in
// between.
type Combined[O Op] struct {
	a, b ChunkSource
	op   O
}

// Combine returns the lazy combination of a and b under op.
func Combine[O Op](op O, a, b ChunkSource) Combined[O] {
	return Combined[O]{a: a, b: b, op: op}
}

// Union returns a view of the members of a or b.
func Union(a, b ChunkSource) Combined[Or] {
	return Combine(Or{}, a, b)
}

// Intersection returns a view of the members of both a and b.
func Intersection(a, b ChunkSource) Combined[And] {
	return Combine(And{}, a, b)
}

// SymmetricDifference returns a view of the members of exactly one of a
// and b.
func SymmetricDifference(a, b ChunkSource) Combined[Xor] {
	return Combine(Xor{}, a, b)
}

// Difference returns a view of the members of a that are not in b.
func Difference(a, b ChunkSource) Combined[AndNot] {
	return Combine(AndNot{}, a, b)
}

func (c Combined[O]) Chunk(pos int) (uint64, bool) {
	ca, aok := c.a.Chunk(pos)
	if !aok {
		ca = 0
	}
	cb, bok := c.b.Chunk(pos)
	if !bok {
		cb = 0
	}
	r, ok := c.op.CombineChunks(ca, aok, cb, bok)
	if !ok {
		return 0, false
	}
	return r, true
}

func (c Combined[O]) ZeroBound() int {
	return c.op.CombineBounds(c.a.ZeroBound(), c.b.ZeroBound())
}

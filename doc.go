// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package idxset implements sets of small non-negative integers
// (indexes) as packed bitmaps.
//
// Index i lives at bit i%64 of chunk i/64. A Set keeps its first N chunks
// inline, so small sets never allocate, and moves to a buffer when an
// insert needs more. Anything that can report its chunks implements
// ChunkSource, and every read-only operation (Contains, Count, Min, Max,
// iteration, Compare, Fingerprint) works on any ChunkSource. Union,
// Intersection, SymmetricDifference and Difference return lazy views that
// are themselves sources, so combinations nest without materializing
// intermediate sets:
//
//	a := idxset.FromIndexes[[2]uint64](1, 2, 3)
//	b := idxset.FromIndexes[[2]uint64](3, 4)
//	for i := range idxset.Indexes(idxset.Union(a, b)) {
//		fmt.Println(i)
//	}
//
// Buffers come from the Go heap. WithMappedCapacity opts a set into an
// anonymous memory mapping instead, for very large sets that should stay
// out of the garbage-collected heap; Release unmaps it early, and an
// unreachable mapped set is unmapped by the garbage collector.
package idxset

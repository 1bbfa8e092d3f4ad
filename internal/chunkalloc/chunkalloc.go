// Copyright 2023 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package chunkalloc hands out zeroed chunk buffers for sets that have
// outgrown their inline storage.
//
// Alloc returns ordinary Go heap buffers. Map returns a buffer backed by
// an anonymous memory mapping (on platforms that support them), owned by
// a *Mapping: the mapping is unmapped by Free, or by the garbage
// collector once the Mapping is unreachable.
package chunkalloc

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"
)

// MaxChunks is the largest buffer whose byte size is representable.
const MaxChunks = math.MaxInt / 8

var (
	ErrMapFailed   = errors.New("anonymous mapping failed")
	ErrUnmapFailed = errors.New("releasing anonymous mapping failed")
)

// live counts mappings that have not been unmapped yet.
var live atomic.Int64

func checkSize(n int) {
	if n < 0 || n > MaxChunks {
		panic(fmt.Sprintf("chunkalloc: capacity overflow allocating %d chunks", n))
	}
}

// Alloc returns a zeroed heap buffer of n chunks. It panics if n is
// negative or the byte size overflows.
func Alloc(n int) []uint64 {
	checkSize(n)
	if n == 0 {
		return nil
	}
	return make([]uint64, n)
}

// Mapping owns an anonymous memory mapping of chunks.
type Mapping struct {
	chunks  []uint64
	cleanup runtime.Cleanup
}

// Map returns a zeroed mapping of n chunks. It panics if n is not
// positive, the byte size overflows, or the mapping cannot be created;
// callers check CanMap first.
func Map(n int) *Mapping {
	checkSize(n)
	if n == 0 {
		panic("chunkalloc: empty mapping")
	}
	buf, err := mapChunks(n)
	if err != nil {
		panic(fmt.Errorf("chunkalloc.Map(%d): %w", n, err))
	}
	live.Add(1)
	m := &Mapping{chunks: buf}
	m.cleanup = runtime.AddCleanup(m, unmap, buf)
	return m
}

// Chunks returns the mapped buffer, or nil once m has been freed. The
// buffer is only valid while m is reachable.
func (m *Mapping) Chunks() []uint64 {
	return m.chunks
}

// Free unmaps m immediately. Freeing a nil or already freed Mapping does
// nothing.
func (m *Mapping) Free() {
	if m == nil || m.chunks == nil {
		return
	}
	m.cleanup.Stop()
	buf := m.chunks
	m.chunks = nil
	unmap(buf)
}

func unmap(buf []uint64) {
	if err := unmapChunks(buf); err != nil {
		panic(fmt.Errorf("chunkalloc: unmapping %d chunks: %w", len(buf), err))
	}
	live.Add(-1)
}

// Live returns the number of mappings that have not been unmapped.
func Live() int64 {
	return live.Load()
}

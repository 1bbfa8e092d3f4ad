// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package idxset

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/dgryski/go-farm"

	"github.com/bpowers/idxset/internal/unsafeslice"
)

// chunkViewer is implemented by sources backed by a contiguous chunk
// buffer, letting Fingerprint hash them without copying.
type chunkViewer interface {
	chunkView() []uint64
}

func (c ChunkSlice) chunkView() []uint64 { return c }

// Fingerprint returns a 64-bit farmhash of the members of src. Sets with
// the same members have the same fingerprint however much zero padding
// they carry. Fingerprints use host byte order and are not meant to be
// persisted.
func Fingerprint(src ChunkSource) uint64 {
	n := ExactZeroBound(src)
	var words []uint64
	if v, ok := src.(chunkViewer); ok {
		words = v.chunkView()[:n]
	} else {
		words = make([]uint64, n)
		for pos := range words {
			words[pos], _ = src.Chunk(pos)
		}
	}
	h := farm.Hash64(unsafeslice.Uint64sAsBytes(words))
	// words may be a mapping owned by src
	runtime.KeepAlive(src)
	return h
}

// Format renders the members of src as "{1, 2, 3}".
func Format(src ChunkSource) string {
	var sb strings.Builder
	var buf [20]byte
	sb.WriteByte('{')
	it := IndexIter{chunks: ChunkIter{src: src}}
	for i, ok := it.Next(); ok; i, ok = it.Next() {
		if sb.Len() > 1 {
			sb.WriteString(", ")
		}
		sb.Write(strconv.AppendUint(buf[:0], uint64(i), 10))
	}
	sb.WriteByte('}')
	return sb.String()
}

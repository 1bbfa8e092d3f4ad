// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package idxset

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bpowers/idxset/internal/chunkalloc"
)

func TestPoolGetIsEmpty(t *testing.T) {
	p := NewPool[[2]uint64]()
	for range 8 {
		s := p.Get()
		require.True(t, s.IsEmpty())
		s.InsertRange(0, 500)
		p.Put(s)
	}
	p.Put(nil)
}

func TestPoolReleasesOversized(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := NewPool[[1]uint64](WithMaxChunks(4), WithPoolLogger(logger))

	small := p.Get()
	small.Insert(200)
	p.Put(small)
	require.Zero(t, buf.Len())
	require.Equal(t, 4, small.ChunkCount())
	require.True(t, small.IsEmpty())

	big := p.Get()
	big.Insert(1000)
	p.Put(big)
	require.Contains(t, buf.String(), "releasing oversized set")
	require.Contains(t, buf.String(), "chunks=16")
	require.True(t, big.IsInline())
	require.True(t, big.IsEmpty())
}

func TestPoolReleasesMapped(t *testing.T) {
	if !chunkalloc.CanMap {
		t.Skip("anonymous mappings not supported")
	}
	before := chunkalloc.Live()
	p := NewPool[[1]uint64](WithMaxChunks(1 << 30))
	s := WithMappedCapacity[[1]uint64](64)
	s.Insert(100)
	p.Put(s)
	require.False(t, s.IsMapped())
	require.True(t, s.IsEmpty())
	require.Equal(t, before, chunkalloc.Live())
}

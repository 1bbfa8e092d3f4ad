// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package idxset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	padded := WithChunkCapacity[[1]uint64](8)
	padded.Insert(3)

	for _, tc := range []struct {
		name string
		a, b ChunkSource
		ord  int
		ok   bool
	}{
		{"equal", FromIndexes[[1]uint64](1, 2), ChunkSlice{0b110}, 0, true},
		{"empty", ChunkSlice{}, New[[4]uint64](), 0, true},
		{"subset", FromIndexes[[1]uint64](1, 2), FromIndexes[[1]uint64](1, 2, 3), -1, true},
		{"superset", FromIndexes[[1]uint64](1, 2, 3), FromIndexes[[1]uint64](1, 2), 1, true},
		{"disjoint", FromIndexes[[1]uint64](1), FromIndexes[[1]uint64](2), 0, false},
		{"superset across chunks", FromIndexes[[1]uint64](1, 100), FromIndexes[[1]uint64](1), 1, true},
		{"incomparable across chunks", FromIndexes[[1]uint64](1, 100), FromIndexes[[1]uint64](1, 200), 0, false},
		{"padding", padded, FromIndexes[[1]uint64](3), 0, true},
		{"empty subset", ChunkSlice{}, FromIndexes[[1]uint64](300), -1, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ord, ok := Compare(tc.a, tc.b)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.ord, ord)
		})
	}
}

func TestSubsetPredicates(t *testing.T) {
	small := FromIndexes[[1]uint64](1, 2)
	big := FromIndexes[[1]uint64](1, 2, 500)
	other := FromIndexes[[1]uint64](3, 500)

	require.True(t, IsSubset(small, big))
	require.True(t, IsSubset(small, small))
	require.False(t, IsSubset(big, small))
	require.True(t, IsSuperset(big, small))
	require.False(t, IsSuperset(small, big))

	// neither contains the other
	require.False(t, IsSubset(small, other))
	require.False(t, IsSuperset(small, other))

	require.True(t, IsDisjoint(small, other))
	require.False(t, IsDisjoint(big, other))
	require.True(t, IsDisjoint(New[[1]uint64](), big))

	require.True(t, Equal(small, ChunkSlice{0b110, 0, 0}))
	require.False(t, Equal(small, big))
}

func TestCompareChunks(t *testing.T) {
	ordered := []ChunkSource{
		ChunkSlice{},
		FromIndexes[[1]uint64](0),
		FromIndexes[[1]uint64](1),
		FromIndexes[[1]uint64](0, 1),
		FromIndexes[[1]uint64](2),
	}
	for i := range ordered {
		for j := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			require.Equal(t, want, CompareChunks(ordered[i], ordered[j]), "%d vs %d", i, j)
		}
	}

	require.Equal(t, 0, CompareChunks(ChunkSlice{1}, ChunkSlice{1, 0, 0}))
	require.Equal(t, 1, CompareChunks(ChunkSlice{1, 0}, ChunkSlice{0, 1}))
	require.Equal(t, -1, CompareChunks(ChunkSlice{1}, ChunkSlice{1, 0, 1}))
}

func TestDecrementPowerset(t *testing.T) {
	for k := uint64(0); k <= 20; k++ {
		s := Collect[[1]uint64](Word(k))
		steps := uint64(0)
		for s.DecrementPowerset() {
			steps++
		}
		require.Equal(t, k, steps)
		require.True(t, s.IsEmpty())
	}
}

func TestPowersetOrder(t *testing.T) {
	s := FromIndexes[[1]uint64](0, 1, 2)
	want := []string{"{1, 2}", "{0, 2}", "{2}", "{0, 1}", "{1}", "{0}", "{}"}
	for _, w := range want {
		require.True(t, s.DecrementPowerset())
		require.Equal(t, w, s.String())
	}
	require.False(t, s.DecrementPowerset())
	require.Equal(t, "{}", s.String())

	for i := len(want) - 2; i >= 0; i-- {
		s.IncrementPowerset()
		require.Equal(t, want[i], s.String())
	}
	s.IncrementPowerset()
	require.Equal(t, "{0, 1, 2}", s.String())
}

func TestPowersetBorrowAndCarry(t *testing.T) {
	s := Collect[[2]uint64](ChunkSlice{0, 1})
	require.True(t, s.DecrementPowerset())
	require.True(t, s.Equal(ChunkSlice{math.MaxUint64}))
	require.Equal(t, 64, s.Count())

	s.IncrementPowerset()
	require.Equal(t, []uint{64}, collectIndexes(s))

	one := Collect[[1]uint64](Word(math.MaxUint64))
	require.True(t, one.IsInline())
	one.IncrementPowerset()
	require.False(t, one.IsInline())
	require.Equal(t, []uint{64}, collectIndexes(one))
}

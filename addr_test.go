// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package idxset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressRoundTrip(t *testing.T) {
	for _, i := range []uint{0, 1, 63, 64, 65, 127, 128, 1000, math.MaxUint} {
		pos, bit := Address(i)
		require.Less(t, bit, uint(WordBits))
		require.Equal(t, int(i/WordBits), pos)
		require.Equal(t, i, IndexAt(pos, bit))
	}
}

func TestIndexAtOverflow(t *testing.T) {
	require.Panics(t, func() { IndexAt(-1, 0) })
	require.Panics(t, func() { IndexAt(0, WordBits) })
	require.Panics(t, func() { IndexAt(math.MaxInt, 0) })
}

func TestCapacityFor(t *testing.T) {
	for _, tc := range []struct {
		pos, want int
	}{
		{0, 1},
		{1, 2},
		{2, 4},
		{3, 4},
		{4, 8},
		{7, 8},
		{8, 16},
		{1000, 1024},
	} {
		require.Equal(t, tc.want, capacityFor(tc.pos), "pos %d", tc.pos)
	}
	require.Panics(t, func() { capacityFor(math.MaxInt) })
}

func TestRangeMask(t *testing.T) {
	require.Equal(t, uint64(1), rangeMask(0, 0))
	require.Equal(t, allOnes, rangeMask(0, WordBits-1))
	require.Equal(t, uint64(1)<<63, rangeMask(63, 63))
	require.Equal(t, uint64(0b11100), rangeMask(2, 4))
}

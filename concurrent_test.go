// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package idxset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Readers may share a set nobody is mutating.
func TestConcurrentReaders(t *testing.T) {
	a := FromIndexes[[2]uint64](stream(1, 500, 10000)...)
	b := FromIndexes[[2]uint64](stream(2, 500, 10000)...)
	wantCount := Count(Intersection(a, b))
	wantHash := Fingerprint(Union(a, b))

	var g errgroup.Group
	for w := range 8 {
		g.Go(func() error {
			for range 50 {
				if n := Count(Intersection(a, b)); n != wantCount {
					return fmt.Errorf("worker %d: intersection count %d, want %d", w, n, wantCount)
				}
				if h := Fingerprint(Union(a, b)); h != wantHash {
					return fmt.Errorf("worker %d: union fingerprint %x, want %x", w, h, wantHash)
				}
				if _, ok := Compare(Intersection(a, b), a); !ok {
					return fmt.Errorf("worker %d: intersection not a subset", w)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

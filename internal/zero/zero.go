// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package zero provides functions to zero slices of specific types.
package zero

// U64 zeroes every element of b. len and cap are unchanged.
func U64(b []uint64) {
	for i := 0; i < len(b); i++ {
		b[i] = 0
	}
}

// Copyright 2023 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package chunkalloc

// CanMap reports whether Map is supported on this platform.
const CanMap = false

func mapChunks(n int) ([]uint64, error) {
	return nil, ErrMapFailed
}

func unmapChunks(buf []uint64) error {
	return ErrUnmapFailed
}

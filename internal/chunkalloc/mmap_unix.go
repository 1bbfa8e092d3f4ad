// Copyright 2023 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package chunkalloc

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/bpowers/idxset/internal/unsafeslice"
)

// CanMap reports whether Map is supported on this platform.
const CanMap = true

func mapChunks(n int) ([]uint64, error) {
	size := n * 8
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap(%d bytes): %w", ErrMapFailed, size, err)
	}
	// sets are overwhelmingly scanned front to back
	if err := unix.Madvise(b, unix.MADV_SEQUENTIAL); err != nil {
		_ = unix.Munmap(b)
		return nil, fmt.Errorf("%w: madvise: %w", ErrMapFailed, err)
	}
	return unsafeslice.BytesAsUint64s(b), nil
}

func unmapChunks(buf []uint64) error {
	if err := unix.Munmap(unsafeslice.Uint64sAsBytes(buf)); err != nil {
		return fmt.Errorf("%w: munmap: %w", ErrUnmapFailed, err)
	}
	return nil
}

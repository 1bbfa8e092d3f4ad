// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package unsafeslice reinterprets chunk buffers as bytes and back
// without copying.
package unsafeslice

import (
	"unsafe"
)

// Uint64sAsBytes returns a byte slice referring to the memory of words,
// in host byte order.
// SAFETY: the result aliases words and must not outlive it.
func Uint64sAsBytes(words []uint64) []byte {
	if len(words) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(words)*8)
}

// BytesAsUint64s returns a uint64 slice referring to the memory of b.
// len(b) must be a multiple of 8 and b must be 8-byte aligned (page
// aligned mappings always are).
// SAFETY: the result aliases b and must not outlive it.
func BytesAsUint64s(b []byte) []uint64 {
	if len(b) == 0 {
		return nil
	}
	if len(b)%8 != 0 || uintptr(unsafe.Pointer(&b[0]))%8 != 0 {
		panic("unsafeslice: misaligned byte slice")
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(&b[0])), len(b)/8)
}

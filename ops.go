// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package idxset

// Op is a stateless binary set operator applied chunk by chunk.
//
// CombineChunks receives the chunks of both operands at one position,
// with absent operands passed as 0 and their ok false. It may report the
// result absent only if the result at this position and at every later
// one is zero.
//
// CombineBounds combines the operands' ZeroBound values into a bound
// that is valid for the result.
type Op interface {
	CombineChunks(a uint64, aok bool, b uint64, bok bool) (uint64, bool)
	CombineBounds(a, b int) int
}

// Or is set union.
type Or struct{}

// And is set intersection.
type And struct{}

// Xor is symmetric difference.
type Xor struct{}

// AndNot is relative complement: members of the first operand that are
// not members of the second.
type AndNot struct{}

// First selects the first operand unchanged.
type First struct{}

// Second selects the second operand unchanged.
type Second struct{}

func (Or) CombineChunks(a uint64, aok bool, b uint64, bok bool) (uint64, bool) {
	if !aok && !bok {
		return 0, false
	}
	return a | b, true
}

func (Or) CombineBounds(a, b int) int { return max(a, b) }

func (And) CombineChunks(a uint64, aok bool, b uint64, bok bool) (uint64, bool) {
	if !aok || !bok {
		return 0, false
	}
	return a & b, true
}

func (And) CombineBounds(a, b int) int { return min(a, b) }

func (Xor) CombineChunks(a uint64, aok bool, b uint64, bok bool) (uint64, bool) {
	if !aok && !bok {
		return 0, false
	}
	return a ^ b, true
}

func (Xor) CombineBounds(a, b int) int { return max(a, b) }

func (AndNot) CombineChunks(a uint64, aok bool, b uint64, _ bool) (uint64, bool) {
	if !aok {
		return 0, false
	}
	return a &^ b, true
}

func (AndNot) CombineBounds(a, _ int) int { return a }

func (First) CombineChunks(a uint64, aok bool, _ uint64, _ bool) (uint64, bool) {
	return a, aok
}

func (First) CombineBounds(a, _ int) int { return a }

func (Second) CombineChunks(_ uint64, _ bool, b uint64, bok bool) (uint64, bool) {
	return b, bok
}

func (Second) CombineBounds(_, b int) int { return b }

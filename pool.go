// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package idxset

import (
	"io"
	"log/slog"
	"sync"
)

const defaultPoolMaxChunks = 4096

// PoolOption configures a Pool.
type PoolOption func(*poolOptions)

type poolOptions struct {
	maxChunks int
	logger    *slog.Logger
}

// WithMaxChunks sets the largest set, in chunks, that Put keeps for
// reuse. Larger sets are released instead. Mapped sets are always
// released.
func WithMaxChunks(n int) PoolOption {
	return func(opts *poolOptions) {
		opts.maxChunks = n
	}
}

// WithPoolLogger sets an optional logger for reporting sets dropped from
// the pool. If not provided, no logging output will be produced.
func WithPoolLogger(logger *slog.Logger) PoolOption {
	return func(opts *poolOptions) {
		opts.logger = logger
	}
}

// Pool recycles sets for algorithms that build and discard many of them,
// so steady-state use does not allocate. It is safe for concurrent use;
// the sets it hands out are not.
type Pool[A Inline] struct {
	p         sync.Pool
	maxChunks int
	logger    *slog.Logger
}

// NewPool returns an empty pool.
func NewPool[A Inline](opts ...PoolOption) *Pool[A] {
	options := poolOptions{
		maxChunks: defaultPoolMaxChunks,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&options)
	}
	p := &Pool[A]{
		maxChunks: options.maxChunks,
		logger:    options.logger,
	}
	p.p.New = func() any {
		return new(Set[A])
	}
	return p
}

// Get returns an empty set, reusing a previously Put one if available.
func (p *Pool[A]) Get() *Set[A] {
	return p.p.Get().(*Set[A])
}

// Put empties s and makes it available to Get. s must not be used
// afterwards.
func (p *Pool[A]) Put(s *Set[A]) {
	if s == nil {
		return
	}
	if n := s.ChunkCount(); n > p.maxChunks || s.IsMapped() {
		p.logger.Debug("releasing oversized set instead of pooling it",
			"chunks", n,
			"mapped", s.IsMapped(),
			"maxChunks", p.maxChunks)
		s.Release()
	} else {
		s.Clear()
	}
	p.p.Put(s)
}

// Copyright 2021 The idxset Authors. All rights reserved.
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Command idxset-demo builds two random index sets and prints how they
// combine.
package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	"github.com/bpowers/idxset"
)

var (
	seed    = flag.Int64("seed", 0, "random seed (0 picks one)")
	count   = flag.Int("n", 60, "indexes drawn per set")
	bound   = flag.Uint("max", 120, "indexes are drawn from [0, max)")
	mapped  = flag.Bool("mapped", false, "hold sets in anonymous memory mappings")
	verbose = flag.Bool("v", false, "log at debug level")
)

type demoSet = idxset.Set[[2]uint64]

func newRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		var seedBytes [8]byte
		_, _ = crand.Read(seedBytes[:])
		seed = int64(binary.LittleEndian.Uint64(seedBytes[:]))
	}
	return rand.New(rand.NewSource(seed)), seed
}

func randomSet(rng *rand.Rand, n int, bound uint, mapped bool) *demoSet {
	s := idxset.New[[2]uint64]()
	if mapped {
		pos, _ := idxset.Address(bound - 1)
		s = idxset.WithMappedCapacity[[2]uint64](pos + 1)
	}
	for i := 0; i < n; i++ {
		s.Insert(uint(rng.Int63n(int64(bound))))
	}
	return s
}

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *bound == 0 {
		logger.Error("-max must be positive")
		os.Exit(2)
	}

	rng, usedSeed := newRand(*seed)
	logger.Debug("generating sets", "seed", usedSeed, "n", *count, "max", *bound)

	a := randomSet(rng, *count, *bound, *mapped)
	b := randomSet(rng, *count, *bound, *mapped)
	defer a.Release()
	defer b.Release()

	logger.Debug("built sets",
		"aChunks", a.ChunkCount(), "aInline", a.IsInline(), "aMapped", a.IsMapped(),
		"bChunks", b.ChunkCount(), "bInline", b.IsInline(), "bMapped", b.IsMapped())

	fmt.Printf("a       = %v (%d members)\n", a, a.Count())
	fmt.Printf("b       = %v (%d members)\n", b, b.Count())
	fmt.Printf("a | b   = %s\n", idxset.Format(idxset.Union(a, b)))
	fmt.Printf("a & b   = %s\n", idxset.Format(idxset.Intersection(a, b)))
	fmt.Printf("a ^ b   = %s\n", idxset.Format(idxset.SymmetricDifference(a, b)))
	fmt.Printf("a &^ b  = %s\n", idxset.Format(idxset.Difference(a, b)))

	if ord, ok := idxset.Compare(a, b); ok {
		fmt.Printf("inclusion order: %d\n", ord)
	} else {
		fmt.Println("inclusion order: incomparable")
	}
	fmt.Printf("encoding order: %d\n", idxset.CompareChunks(a, b))
	if lo, ok := a.Min(); ok {
		hi, _ := a.Max()
		fmt.Printf("a spans [%d, %d]\n", lo, hi)
	}
	fmt.Printf("fingerprint(a) = %016x\n", a.Hash())
}

// Package testutil provides testing utilities for densebit.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating random words,
// bit positions and digit strings.
//
// # Random Input Generation
//
//	rng := testutil.NewRNG(seed)
//	words := rng.Words(16)            // 1024 random bits
//	pos := rng.Positions(10, 4096)    // 10 distinct sorted positions
//	hex := rng.DigitString(32, 16)    // 128-bit hex literal
package testutil

// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking when bit positions and lengths
// cross between densebit's int-based API and the uint32/uint-based APIs of
// other bitmap implementations (roaring, bits-and-blooms).
package conv

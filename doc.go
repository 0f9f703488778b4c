// Package densebit provides dense bit vectors backed by 64-bit words.
//
// Two types are provided:
//
//   - FixedWord: a 64-bit vector held in one machine word. Every operation is
//     a constant number of word instructions.
//   - WordVector: a vector of arbitrary logical length backed by a growable
//     slice of words. Its length (Len) is decoupled from its word count.
//
// # Bit Order
//
// Bit 0 is the least significant bit of word 0. String forms print the most
// significant bit first, so the last character of String is bit 0:
//
//	v := densebit.FromUint64(5)
//	v.GetBit(0) // true
//	v.GetBit(1) // false
//	v.String()  // "000...0101" (64 characters)
//
// # Logical Length
//
// A WordVector tracks how many bits are meaningful. Bits beyond Len inside
// the last word are ignored by Weight, Equal, String, Format and the bitwise
// operators, and word indices beyond the stored slice read as zero. Len grows
// through SetBit, InsertUint64, Insert, ShiftLeft and the Or/Xor operators,
// and shrinks only through Reset, Subset, And and AndAssign.
//
// # Radix Strings
//
// Parse and Format exchange vectors as digit strings in radix 2, 4, 8, 16 or
// 32. Each digit contributes log2(radix) bits:
//
//	v, _ := densebit.Parse("deadbeef", 16)
//	v.Len()         // 32
//	v.Format(2)     // "11011110101011011011111011101111"
//
// # Capacity
//
// Every WordVector carries a ceiling on its logical length (DefaultMaxBits
// unless WithMaxBits is given). Operations that would exceed it fail with
// ErrCapacityExceeded and leave the vector untouched.
//
// # Observability
//
// WithLogger attaches a slog-based Logger that reports backing store growth,
// rejected operations and parse outcomes. WithMetrics attaches a
// MetricsCollector for the same events; BasicMetricsCollector keeps atomic
// counters in memory.
//
// # Errors
//
// Fallible operations return errors matching ErrOutOfRange, ErrZeroWidth,
// ErrCapacityExceeded, ErrParse or ErrInvalidRadix via errors.Is. They signal
// invalid arguments rather than transient faults; there is nothing to retry.
//
// # Concurrency
//
// Both types are plain values with no internal locking. Transformations such
// as ShiftLeft, RotateLeft, Subset and Not return new vectors that share no
// storage with the receiver.
package densebit

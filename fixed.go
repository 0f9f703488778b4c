package densebit

import (
	"fmt"
	"math/bits"
	"strconv"
)

// WordBits is the width of a FixedWord and of every WordVector storage word.
const WordBits = 64

// FixedWord is a 64-bit bit vector backed by a single machine word.
//
// Bit 0 is the least significant bit. FixedWord is a plain comparable value:
// it can be copied freely and used as a map key.
type FixedWord struct {
	state uint64
}

// NewFixedWord returns a FixedWord holding v.
func NewFixedWord(v uint64) FixedWord {
	return FixedWord{state: v}
}

// ParseFixedWord parses s as an unsigned integer in the given radix (2 to 32).
func ParseFixedWord(s string, radix int) (FixedWord, error) {
	if radix < 2 || radix > 32 {
		return FixedWord{}, errRadix(radix, false)
	}
	v, err := strconv.ParseUint(s, radix, WordBits)
	if err != nil {
		return FixedWord{}, &ParseError{Input: s, Radix: radix, cause: err}
	}
	return FixedWord{state: v}, nil
}

// Uint64 returns the word as an integer.
func (w FixedWord) Uint64() uint64 {
	return w.state
}

// SetBit sets the bit at pos to value.
func (w *FixedWord) SetBit(pos int, value bool) error {
	if pos < 0 || pos >= WordBits {
		return errPosition(pos, WordBits)
	}
	if value {
		w.state |= 1 << pos
	} else {
		w.state &^= 1 << pos
	}
	return nil
}

// GetBit returns the bit at pos.
func (w FixedWord) GetBit(pos int) (bool, error) {
	if pos < 0 || pos >= WordBits {
		return false, errPosition(pos, WordBits)
	}
	return (w.state>>pos)&1 == 1, nil
}

// Extract returns the length-bit field starting at pos.
func (w FixedWord) Extract(pos, length int) (uint64, error) {
	if err := checkField(pos, length, WordBits); err != nil {
		return 0, err
	}
	return (w.state >> pos) & lowMask(length), nil
}

// Insert overwrites the length-bit field at pos with the low length bits of value.
func (w *FixedWord) Insert(pos, length int, value uint64) error {
	if err := checkField(pos, length, WordBits); err != nil {
		return err
	}
	if length == WordBits {
		w.state = value
		return nil
	}
	m := lowMask(length)
	w.state = w.state&^(m<<pos) | (value&m)<<pos
	return nil
}

// Weight returns the number of set bits.
func (w FixedWord) Weight() int {
	return bits.OnesCount64(w.state)
}

// Reset clears every bit.
func (w *FixedWord) Reset() {
	w.state = 0
}

// Flip inverts every bit in place.
func (w *FixedWord) Flip() {
	w.state = ^w.state
}

// All reports whether every bit is set.
func (w FixedWord) All() bool {
	return w.state == ^uint64(0)
}

// Any reports whether at least one bit is set.
func (w FixedWord) Any() bool {
	return w.state != 0
}

// None reports whether no bit is set.
func (w FixedWord) None() bool {
	return w.state == 0
}

// FirstSet returns the position of the lowest set bit, or 64 if none is set.
func (w FixedWord) FirstSet() int {
	return bits.TrailingZeros64(w.state)
}

// Reverse returns the word with its bit order reversed.
func (w FixedWord) Reverse() FixedWord {
	v := w.state
	v = (v>>1)&0x5555555555555555 | (v&0x5555555555555555)<<1
	v = (v>>2)&0x3333333333333333 | (v&0x3333333333333333)<<2
	v = (v>>4)&0x0f0f0f0f0f0f0f0f | (v&0x0f0f0f0f0f0f0f0f)<<4
	return FixedWord{state: bits.ReverseBytes64(v)}
}

// RotateLeft rotates the word towards the most significant bit by k mod 64.
func (w FixedWord) RotateLeft(k int) FixedWord {
	return FixedWord{state: bits.RotateLeft64(w.state, k)}
}

// RotateRight rotates the word towards the least significant bit by k mod 64.
func (w FixedWord) RotateRight(k int) FixedWord {
	return FixedWord{state: bits.RotateLeft64(w.state, -k)}
}

// ShiftLeft shifts towards the most significant bit. Shifts of 64 or more yield zero.
func (w FixedWord) ShiftLeft(n int) FixedWord {
	if n < 0 {
		return w.ShiftRight(-n)
	}
	if n >= WordBits {
		return FixedWord{}
	}
	return FixedWord{state: w.state << n}
}

// ShiftRight shifts towards the least significant bit. Shifts of 64 or more yield zero.
func (w FixedWord) ShiftRight(n int) FixedWord {
	if n < 0 {
		return w.ShiftLeft(-n)
	}
	if n >= WordBits {
		return FixedWord{}
	}
	return FixedWord{state: w.state >> n}
}

// And returns the bitwise intersection.
func (w FixedWord) And(o FixedWord) FixedWord { return FixedWord{state: w.state & o.state} }

// Or returns the bitwise union.
func (w FixedWord) Or(o FixedWord) FixedWord { return FixedWord{state: w.state | o.state} }

// Xor returns the bitwise symmetric difference.
func (w FixedWord) Xor(o FixedWord) FixedWord { return FixedWord{state: w.state ^ o.state} }

// Not returns the bitwise complement.
func (w FixedWord) Not() FixedWord { return FixedWord{state: ^w.state} }

// AndAssign intersects w with o in place.
func (w *FixedWord) AndAssign(o FixedWord) { w.state &= o.state }

// OrAssign unions w with o in place.
func (w *FixedWord) OrAssign(o FixedWord) { w.state |= o.state }

// XorAssign xors w with o in place.
func (w *FixedWord) XorAssign(o FixedWord) { w.state ^= o.state }

// ShiftLeftAssign shifts w towards the most significant bit in place.
func (w *FixedWord) ShiftLeftAssign(n int) { *w = w.ShiftLeft(n) }

// ShiftRightAssign shifts w towards the least significant bit in place.
func (w *FixedWord) ShiftRightAssign(n int) { *w = w.ShiftRight(n) }

// Equal reports whether both words hold the same bits.
func (w FixedWord) Equal(o FixedWord) bool {
	return w.state == o.state
}

// String returns the 64-character binary form, most significant bit first.
func (w FixedWord) String() string {
	return fmt.Sprintf("%064b", w.state)
}

// GoString returns the binary form followed by the integer value.
func (w FixedWord) GoString() string {
	return fmt.Sprintf("0b%064b (%d)", w.state, w.state)
}

// lowMask returns a mask of the n least significant bits.
func lowMask(n int) uint64 {
	if n >= WordBits {
		return ^uint64(0)
	}
	return 1<<n - 1
}

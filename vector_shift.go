package densebit

// ShiftLeft returns v shifted towards higher positions by n bits.
// The logical length grows by n; the low n bits are zero.
func (v *WordVector) ShiftLeft(n int) (*WordVector, error) {
	if n < 0 {
		return nil, errPosition(n, v.opts.maxBits)
	}
	if err := v.checkCapacity("shift_left", v.size, n); err != nil {
		return nil, err
	}
	return v.shiftLeft(n), nil
}

// shiftLeft does not enforce the size ceiling; rotation relies on a transient overshoot.
func (v *WordVector) shiftLeft(n int) *WordVector {
	out := v.derive(v.size + n)
	wordShift, bitShift := n/WordBits, n%WordBits
	for i := 0; i < v.WordCount(); i++ {
		w := v.maskedWord(i)
		if w == 0 {
			continue
		}
		out.words[i+wordShift] |= w << bitShift
		if bitShift > 0 && i+wordShift+1 < len(out.words) {
			out.words[i+wordShift+1] |= w >> (WordBits - bitShift)
		}
	}
	return out
}

// ShiftLeftAssign shifts v towards higher positions by n bits in place.
func (v *WordVector) ShiftLeftAssign(n int) error {
	out, err := v.ShiftLeft(n)
	if err != nil {
		return err
	}
	v.words, v.size = out.words, out.size
	return nil
}

// ShiftRightAssign shifts v towards lower positions by n bits in place.
func (v *WordVector) ShiftRightAssign(n int) {
	v.words = v.ShiftRight(n).words
}

// ShiftRight returns v shifted towards lower positions by n bits.
// The logical length is preserved; the high n bits are zero.
// A negative n is treated as 0, since no shift can grow the result.
func (v *WordVector) ShiftRight(n int) *WordVector {
	if n < 0 {
		n = 0
	}
	out := v.derive(v.size)
	if n >= v.size {
		return out
	}
	wordShift, bitShift := n/WordBits, n%WordBits
	for i := range out.words {
		src := i + wordShift
		w := v.maskedWord(src) >> bitShift
		if bitShift > 0 {
			w |= v.maskedWord(src+1) << (WordBits - bitShift)
		}
		out.words[i] = w
	}
	return out
}

// RotateLeft returns v rotated towards higher positions by k mod Len bits.
// Bits pushed past the end re-enter at position 0.
func (v *WordVector) RotateLeft(k int) *WordVector {
	k = v.rotation(k)
	if k == 0 {
		return v.Clone()
	}
	n := v.size
	shifted := v.shiftLeft(k)
	out := shifted.subset(0, n)
	out.insertVector(shifted.subset(n, k), 0, k)
	return out
}

// RotateRight returns v rotated towards lower positions by k mod Len bits.
// Bits pushed below position 0 re-enter at the top.
func (v *WordVector) RotateRight(k int) *WordVector {
	k = v.rotation(k)
	if k == 0 {
		return v.Clone()
	}
	n := v.size
	low := v.subset(0, k)
	out := v.ShiftRight(k)
	out.insertVector(low, n-k, k)
	return out
}

// rotation normalizes k into [0, Len).
func (v *WordVector) rotation(k int) int {
	if v.size == 0 {
		return 0
	}
	k %= v.size
	if k < 0 {
		k += v.size
	}
	return k
}

// Reverse returns v with its bit order reversed over the full word span.
//
// Each logical word is bit-reversed and the word order is reversed, so the
// result's String is the character reverse of v's String. The result's
// length is WordCount()*64, so Reverse is its own inverse only when Len is
// a multiple of 64.
func (v *WordVector) Reverse() *WordVector {
	n := v.WordCount()
	out := v.derive(n * WordBits)
	for i := 0; i < n; i++ {
		out.words[n-1-i] = NewFixedWord(v.maskedWord(i)).Reverse().Uint64()
	}
	return out
}

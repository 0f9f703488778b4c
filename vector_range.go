package densebit

import "fmt"

// ExtractUint64 returns the length-bit field starting at pos (0 < length <= 64).
//
// Reads starting at or past Len return 0. A field overrunning Len is clamped
// to the bits that exist.
func (v *WordVector) ExtractUint64(pos, length int) (uint64, error) {
	if err := checkWordField(pos, length); err != nil {
		return 0, err
	}
	return v.extract(pos, length), nil
}

func (v *WordVector) extract(pos, length int) uint64 {
	if pos >= v.size {
		return 0
	}
	length = min(length, v.size-pos)

	idx, offset := pos>>6, pos&63
	if offset+length <= WordBits {
		return (v.word(idx) >> offset) & lowMask(length)
	}

	// Straddles a word boundary: low part from idx, high part from idx+1.
	lowBits := WordBits - offset
	lo := v.word(idx) >> offset
	hi := v.word(idx+1) & lowMask(length-lowBits)
	return lo | hi<<lowBits
}

// InsertUint64 writes the low length bits of value at pos (0 < length <= 64),
// extending the logical length to pos+length if needed.
func (v *WordVector) InsertUint64(value uint64, pos, length int) error {
	if err := checkWordField(pos, length); err != nil {
		return err
	}
	if err := v.checkCapacity("insert_u64", pos, length); err != nil {
		return err
	}
	v.insert(value, pos, length)
	return nil
}

func (v *WordVector) insert(value uint64, pos, length int) {
	end := pos + length
	v.grow(wordsFor(end))
	v.extend(end)

	value &= lowMask(length)
	idx, offset := pos>>6, pos&63

	switch {
	case offset == 0 && length == WordBits:
		v.words[idx] = value
	case offset+length <= WordBits:
		m := lowMask(length) << offset
		v.words[idx] = v.words[idx]&^m | value<<offset
	default:
		lowBits := WordBits - offset
		v.words[idx] = v.words[idx]&lowMask(offset) | value<<offset
		v.words[idx+1] = v.words[idx+1]&^lowMask(length-lowBits) | value>>lowBits
	}
}

// Subset returns a new vector holding the length bits starting at pos.
// Bits past Len read as zero.
func (v *WordVector) Subset(pos, length int) (*WordVector, error) {
	if pos < 0 || length < 0 {
		return nil, errOutOfRange(pos, length, v.size)
	}
	if err := v.checkCapacity("subset", 0, length); err != nil {
		return nil, err
	}
	return v.subset(pos, length), nil
}

func (v *WordVector) subset(pos, length int) *WordVector {
	out := v.derive(length)
	if pos >= v.size {
		return out
	}
	for off := 0; off < length; off += WordBits {
		out.words[off/WordBits] = v.extract(pos+off, min(WordBits, length-off))
	}
	return out
}

// Insert copies the first length bits of other into v at pos,
// extending the logical length to pos+length if needed.
// Bits past other's length are copied as zero.
func (v *WordVector) Insert(other *WordVector, pos, length int) error {
	if pos < 0 || length < 0 {
		return errOutOfRange(pos, length, v.opts.maxBits)
	}
	if length == 0 {
		return nil
	}
	if err := v.checkCapacity("insert", pos, length); err != nil {
		return err
	}
	if other == v {
		other = v.Clone()
	}
	v.insertVector(other, pos, length)
	return nil
}

func (v *WordVector) insertVector(other *WordVector, pos, length int) {
	full := length - length%WordBits
	for off := 0; off < full; off += WordBits {
		v.insert(other.extract(off, WordBits), pos+off, WordBits)
	}
	if rem := length - full; rem > 0 {
		v.insert(other.extract(full, rem), pos+full, rem)
	}
}

func checkWordField(pos, length int) error {
	if length == 0 {
		return fmt.Errorf("%w: position %d", ErrZeroWidth, pos)
	}
	if pos < 0 || length < 0 || length > WordBits {
		return errOutOfRange(pos, length, WordBits)
	}
	return nil
}

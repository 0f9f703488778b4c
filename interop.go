package densebit

import (
	"fmt"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/densebit/internal/conv"
)

// ToRoaring returns a roaring bitmap containing the positions of all set bits.
func (v *WordVector) ToRoaring() (*roaring.Bitmap, error) {
	rb := roaring.New()
	for i := 0; i < min(len(v.words), v.WordCount()); i++ {
		w := v.maskedWord(i)
		for w != 0 {
			pos, err := conv.IntToUint32(i*WordBits + bits.TrailingZeros64(w))
			if err != nil {
				return nil, err
			}
			rb.Add(pos)
			w &= w - 1
		}
	}
	return rb, nil
}

// FromRoaring builds a size-bit vector with the bits listed in rb set.
//
// Every position in rb must be below size.
func FromRoaring(rb *roaring.Bitmap, size int, opts ...Option) (*WordVector, error) {
	o := resolveOptions(opts)
	if size < 0 {
		return nil, errPosition(size, o.maxBits)
	}
	if size > o.maxBits {
		return nil, o.rejectCapacity(o.logger, "from_roaring", size)
	}
	if !rb.IsEmpty() {
		maxPos, err := conv.UintToInt(uint(rb.Maximum()))
		if err != nil {
			return nil, err
		}
		if maxPos >= size {
			return nil, errPosition(maxPos, size)
		}
	}

	v := &WordVector{
		words: make([]uint64, wordsFor(size)),
		size:  size,
		opts:  o,
	}
	it := rb.Iterator()
	for it.HasNext() {
		pos := int(it.Next())
		v.words[pos>>6] |= 1 << (pos & 63)
	}
	return v, nil
}

// ToBitSet returns a bits-and-blooms bitset with the same length and bits.
// Both use little-endian word order, so the words are copied as-is.
func (v *WordVector) ToBitSet() (*bitset.BitSet, error) {
	length, err := conv.IntToUint(v.size)
	if err != nil {
		return nil, err
	}
	return bitset.FromWithLength(length, v.Words()), nil
}

// FromBitSet builds a vector with the same length and bits as b.
func FromBitSet(b *bitset.BitSet, opts ...Option) (*WordVector, error) {
	o := resolveOptions(opts)
	size, err := conv.UintToInt(b.Len())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}
	if size > o.maxBits {
		return nil, o.rejectCapacity(o.logger, "from_bitset", size)
	}

	v := &WordVector{
		words: make([]uint64, wordsFor(size)),
		size:  size,
		opts:  o,
	}
	copy(v.words, b.Words())
	v.clearTail()
	return v, nil
}

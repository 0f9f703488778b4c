package densebit

import (
	"math"
	"math/bits"
	"slices"
)

// WordVector is a bit vector of arbitrary logical length backed by 64-bit words.
//
// Bit 0 is the least significant bit of word 0. The logical length (Len) is
// tracked separately from the word count: bits at or beyond Len inside the
// last word are "don't care" and every read path masks them out. Word indices
// beyond the stored slice read as zero.
//
// A WordVector is not safe for concurrent use.
type WordVector struct {
	words []uint64
	size  int
	opts  *options
}

// New returns an empty vector.
func New(opts ...Option) *WordVector {
	return &WordVector{opts: resolveOptions(opts)}
}

// WithCapacity returns an empty vector with storage reserved for n bits.
func WithCapacity(n int, opts ...Option) (*WordVector, error) {
	o := resolveOptions(opts)
	if n < 0 {
		return nil, errPosition(n, o.maxBits)
	}
	if n > o.maxBits {
		return nil, o.rejectCapacity(o.logger, "with_capacity", n)
	}
	return &WordVector{
		words: make([]uint64, 0, wordsFor(n)),
		opts:  o,
	}, nil
}

// FromFixedWord returns a 64-bit vector holding the bits of w.
func FromFixedWord(w FixedWord, opts ...Option) *WordVector {
	return &WordVector{
		words: []uint64{w.Uint64()},
		size:  WordBits,
		opts:  resolveOptions(opts),
	}
}

// FromUint64 returns a 64-bit vector holding v.
func FromUint64(v uint64, opts ...Option) *WordVector {
	return FromFixedWord(NewFixedWord(v), opts...)
}

// derive returns an empty vector sharing v's configuration with storage for size bits.
func (v *WordVector) derive(size int) *WordVector {
	return &WordVector{
		words: make([]uint64, wordsFor(size)),
		size:  size,
		opts:  v.opts,
	}
}

// Len returns the logical length in bits.
func (v *WordVector) Len() int {
	return v.size
}

// WordCount returns the number of words spanned by the logical length.
func (v *WordVector) WordCount() int {
	return wordsFor(v.size)
}

// MaxBits returns the configured ceiling on the logical length.
func (v *WordVector) MaxBits() int {
	return v.opts.maxBits
}

// Words returns a copy of the logical words, least significant first,
// with bits beyond Len cleared.
func (v *WordVector) Words() []uint64 {
	out := make([]uint64, v.WordCount())
	for i := range out {
		out[i] = v.maskedWord(i)
	}
	return out
}

// Clone returns a deep copy.
func (v *WordVector) Clone() *WordVector {
	return &WordVector{
		words: slices.Clone(v.words),
		size:  v.size,
		opts:  v.opts,
	}
}

// SetBit sets the bit at pos to value, extending the logical length to pos+1 if needed.
//
// Setting a bit to false beyond the stored words does not allocate.
func (v *WordVector) SetBit(pos int, value bool) error {
	if pos < 0 {
		return errPosition(pos, v.opts.maxBits)
	}
	if err := v.checkCapacity("set_bit", pos, 1); err != nil {
		return err
	}

	v.extend(pos + 1)
	idx, offset := pos>>6, pos&63
	if idx >= len(v.words) {
		if value {
			v.grow(idx + 1)
			v.words[idx] |= 1 << offset
		}
	} else if value {
		v.words[idx] |= 1 << offset
	} else {
		v.words[idx] &^= 1 << offset
	}
	return nil
}

// GetBit returns the bit at pos. Positions outside [0, Len) read as false.
func (v *WordVector) GetBit(pos int) bool {
	if pos < 0 || pos >= v.size {
		return false
	}
	return (v.word(pos>>6)>>(pos&63))&1 == 1
}

// Weight returns the number of set bits within the logical length.
func (v *WordVector) Weight() int {
	n := min(len(v.words), v.WordCount())
	count := 0
	for i := 0; i < n; i++ {
		count += bits.OnesCount64(v.maskedWord(i))
	}
	return count
}

// All reports whether every bit within the logical length is set.
// An empty vector reports false.
func (v *WordVector) All() bool {
	n := v.WordCount()
	if n == 0 {
		return false
	}
	for i := 0; i < n-1; i++ {
		if v.word(i) != ^uint64(0) {
			return false
		}
	}
	last := tailMask(v.size)
	return v.word(n-1)&last == last
}

// Any reports whether at least one bit within the logical length is set.
func (v *WordVector) Any() bool {
	n := min(len(v.words), v.WordCount())
	for i := 0; i < n; i++ {
		if v.maskedWord(i) != 0 {
			return true
		}
	}
	return false
}

// None reports whether no bit within the logical length is set.
func (v *WordVector) None() bool {
	return !v.Any()
}

// FirstSet returns the position of the lowest set bit, or Len if none is set.
func (v *WordVector) FirstSet() int {
	n := min(len(v.words), v.WordCount())
	for i := 0; i < n; i++ {
		if w := v.maskedWord(i); w != 0 {
			return i*WordBits + bits.TrailingZeros64(w)
		}
	}
	return v.size
}

// Reset empties the vector. Reserved storage is kept.
func (v *WordVector) Reset() {
	v.words = v.words[:0]
	v.size = 0
}

// Flip inverts every bit within the logical length in place.
func (v *WordVector) Flip() {
	n := v.WordCount()
	v.grow(n)
	for i := 0; i < n; i++ {
		v.words[i] = ^v.words[i]
	}
	v.clearTail()
}

// Equal reports whether both vectors have the same length and the same bits.
func (v *WordVector) Equal(o *WordVector) bool {
	if v.size != o.size {
		return false
	}
	for i := 0; i < v.WordCount(); i++ {
		if v.maskedWord(i) != o.maskedWord(i) {
			return false
		}
	}
	return true
}

// word returns the stored word at i, or zero past the end of storage.
func (v *WordVector) word(i int) uint64 {
	if i < len(v.words) {
		return v.words[i]
	}
	return 0
}

// maskedWord returns word i with bits at or beyond Len cleared.
func (v *WordVector) maskedWord(i int) uint64 {
	w := v.word(i)
	if i == v.WordCount()-1 {
		w &= tailMask(v.size)
	}
	return w
}

// clearTail zeroes the dead bits of the last logical word.
func (v *WordVector) clearTail() {
	last := v.WordCount() - 1
	if last >= 0 && last < len(v.words) {
		v.words[last] &= tailMask(v.size)
	}
}

// extend raises the logical length to size, clearing dead bits that would become visible.
func (v *WordVector) extend(size int) {
	if size > v.size {
		v.clearTail()
		v.size = size
	}
}

// grow extends storage with zero words up to n words.
func (v *WordVector) grow(n int) {
	from := len(v.words)
	if n <= from {
		return
	}
	v.words = slices.Grow(v.words, n-from)[:n]
	clear(v.words[from:])
	v.opts.logger.LogGrow(from, n)
	v.opts.metrics.RecordGrow(from, n)
}

// checkCapacity rejects a logical length of base+extra above the configured
// ceiling. Both operands are non-negative; the sum is never formed unchecked.
func (v *WordVector) checkCapacity(op string, base, extra int) error {
	if extra > v.opts.maxBits-base {
		n := math.MaxInt
		if extra <= math.MaxInt-base {
			n = base + extra
		}
		return v.opts.rejectCapacity(v.opts.logger.WithSize(v.size), op, n)
	}
	return nil
}

func wordsFor(n int) int {
	return (n + WordBits - 1) / WordBits
}

// tailMask returns the mask of meaningful bits in the last word of a size-bit vector.
func tailMask(size int) uint64 {
	if r := size % WordBits; r != 0 {
		return 1<<r - 1
	}
	return ^uint64(0)
}

package densebit

import (
	"fmt"
	"reflect"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// vectorOf builds a vector over words whose logical length stops trim bits
// short of the last word. Bits past the length are left dirty on purpose.
func vectorOf(words []uint64, trim int) *WordVector {
	return &WordVector{
		words: slices.Clone(words),
		size:  max(len(words)*WordBits-trim, 0),
		opts:  defaultOptions,
	}
}

func genWords() gopter.Gen {
	return gen.IntRange(1, 32).FlatMap(func(n interface{}) gopter.Gen {
		return gen.SliceOfN(n.(int), gen.UInt64())
	}, reflect.TypeOf([]uint64(nil)))
}

func TestFixedWordProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("reverse is an involution", prop.ForAll(
		func(x uint64) bool {
			w := NewFixedWord(x)
			return w.Reverse().Reverse() == w
		},
		gen.UInt64(),
	))

	properties.Property("reverse mirrors the string form", prop.ForAll(
		func(x uint64) bool {
			w := NewFixedWord(x)
			return w.Reverse().String() == reverseString(w.String())
		},
		gen.UInt64(),
	))

	properties.Property("rotations are inverse", prop.ForAll(
		func(x uint64, k int) bool {
			w := NewFixedWord(x)
			return w.RotateLeft(k).RotateRight(k) == w
		},
		gen.UInt64(),
		gen.IntRange(-200, 200),
	))

	properties.Property("insert then extract returns the masked value", prop.ForAll(
		func(x, value uint64, pos, length int) string {
			if pos+length > WordBits {
				return ""
			}
			w := NewFixedWord(x)
			if err := w.Insert(pos, length, value); err != nil {
				return fmt.Sprintf("insert: %v", err)
			}
			got, err := w.Extract(pos, length)
			if err != nil {
				return fmt.Sprintf("extract: %v", err)
			}
			if got != value&lowMask(length) {
				return fmt.Sprintf("got %#x, want %#x", got, value&lowMask(length))
			}
			return ""
		},
		gen.UInt64(),
		gen.UInt64(),
		gen.IntRange(0, 63),
		gen.IntRange(1, 64),
	))

	properties.Property("weight of a word and its complement covers the word", prop.ForAll(
		func(x uint64) bool {
			w := NewFixedWord(x)
			return w.Weight()+w.Not().Weight() == WordBits
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestWordVectorProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("format then parse keeps every bit", prop.ForAll(
		func(words []uint64, trim int, radix int) string {
			v := vectorOf(words, trim)
			s, err := v.Format(radix)
			if err != nil {
				return fmt.Sprintf("format: %v", err)
			}
			if v.Len() == 0 {
				return ""
			}
			back, err := Parse(s, radix)
			if err != nil {
				return fmt.Sprintf("parse: %v", err)
			}
			head, err := back.Subset(0, v.Len())
			if err != nil {
				return fmt.Sprintf("subset: %v", err)
			}
			if !head.Equal(v) {
				return fmt.Sprintf("radix %d round trip changed bits of %q", radix, s)
			}
			if back.Weight() != v.Weight() {
				return "padding digits carried set bits"
			}
			return ""
		},
		genWords(),
		gen.IntRange(0, 63),
		gen.OneConstOf(2, 4, 8, 16, 32),
	))

	properties.Property("rotations are inverse", prop.ForAll(
		func(words []uint64, trim int, k int) bool {
			v := vectorOf(words, trim)
			return v.RotateLeft(k).RotateRight(k).Equal(v)
		},
		genWords(),
		gen.IntRange(0, 63),
		gen.IntRange(-500, 500),
	))

	properties.Property("rotation agrees with rotating the binary string", prop.ForAll(
		func(words []uint64, trim int, k int) string {
			v := vectorOf(words, trim)
			if v.Len() == 0 {
				return ""
			}
			s, _ := v.Format(2)
			n := v.Len()
			k %= n
			want := s[k:] + s[:k]
			got, _ := v.RotateLeft(k).Format(2)
			if got != want {
				return fmt.Sprintf("rotl(%d): got %s, want %s", k, got, want)
			}
			return ""
		},
		genWords(),
		gen.IntRange(0, 63),
		gen.IntRange(0, 500),
	))

	properties.Property("reverse mirrors the string form", prop.ForAll(
		func(words []uint64, trim int) bool {
			v := vectorOf(words, trim)
			return v.Reverse().String() == reverseString(v.String())
		},
		genWords(),
		gen.IntRange(0, 63),
	))

	properties.Property("reverse is an involution on whole words", prop.ForAll(
		func(words []uint64) bool {
			v := vectorOf(words, 0)
			return v.Reverse().Reverse().Equal(v)
		},
		genWords(),
	))

	properties.Property("insert then extract returns the masked value", prop.ForAll(
		func(words []uint64, value uint64, pos, length int) string {
			v := vectorOf(words, 0)
			if err := v.InsertUint64(value, pos, length); err != nil {
				return fmt.Sprintf("insert: %v", err)
			}
			got, err := v.ExtractUint64(pos, length)
			if err != nil {
				return fmt.Sprintf("extract: %v", err)
			}
			if got != value&lowMask(length) {
				return fmt.Sprintf("got %#x, want %#x", got, value&lowMask(length))
			}
			if v.Len() < pos+length {
				return fmt.Sprintf("length %d does not cover field end %d", v.Len(), pos+length)
			}
			return ""
		},
		genWords(),
		gen.UInt64(),
		gen.IntRange(0, 3000),
		gen.IntRange(1, 64),
	))

	properties.Property("shift left then right restores the low bits", prop.ForAll(
		func(words []uint64, trim int, n int) string {
			v := vectorOf(words, trim)
			l, err := v.ShiftLeft(n)
			if err != nil {
				return fmt.Sprintf("shift: %v", err)
			}
			back, err := l.ShiftRight(n).Subset(0, v.Len())
			if err != nil {
				return fmt.Sprintf("subset: %v", err)
			}
			if !back.Equal(v) {
				return "bits lost"
			}
			return ""
		},
		genWords(),
		gen.IntRange(0, 63),
		gen.IntRange(0, 300),
	))

	properties.Property("weight splits between a vector and its complement", prop.ForAll(
		func(words []uint64, trim int) bool {
			v := vectorOf(words, trim)
			return v.Weight()+v.Not().Weight() == v.Len()
		},
		genWords(),
		gen.IntRange(0, 63),
	))

	properties.Property("and plus or weighs as much as both operands", prop.ForAll(
		func(a, b []uint64) bool {
			n := min(len(a), len(b))
			x, y := vectorOf(a[:n], 0), vectorOf(b[:n], 0)
			return x.And(y).Weight()+x.Or(y).Weight() == x.Weight()+y.Weight()
		},
		genWords(),
		genWords(),
	))

	properties.Property("xor with itself is empty", prop.ForAll(
		func(words []uint64, trim int) bool {
			v := vectorOf(words, trim)
			x := v.Xor(v)
			return x.None() && x.Len() == v.Len()
		},
		genWords(),
		gen.IntRange(0, 63),
	))

	properties.Property("roaring round trip", prop.ForAll(
		func(words []uint64, trim int) string {
			v := vectorOf(words, trim)
			rb, err := v.ToRoaring()
			if err != nil {
				return fmt.Sprintf("to roaring: %v", err)
			}
			if int(rb.GetCardinality()) != v.Weight() {
				return fmt.Sprintf("cardinality %d, weight %d", rb.GetCardinality(), v.Weight())
			}
			back, err := FromRoaring(rb, v.Len())
			if err != nil {
				return fmt.Sprintf("from roaring: %v", err)
			}
			if !back.Equal(v) {
				return "bits changed"
			}
			return ""
		},
		genWords(),
		gen.IntRange(0, 63),
	))

	properties.TestingRun(t)
}

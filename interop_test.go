package densebit

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/densebit/testutil"
)

func TestWordVector_Roaring(t *testing.T) {
	rng := testutil.NewRNG(4711)
	positions := rng.Positions(200, 5000)

	v := mustCapacity(t, 5000)
	mustSet(t, v, positions...)

	rb, err := v.ToRoaring()
	require.NoError(t, err)
	assert.Equal(t, uint64(len(positions)), rb.GetCardinality())
	for _, p := range positions {
		assert.True(t, rb.Contains(uint32(p)))
	}

	back, err := FromRoaring(rb, v.Len())
	require.NoError(t, err)
	assert.True(t, v.Equal(back))

	t.Run("IgnoresDeadBits", func(t *testing.T) {
		d := &WordVector{words: []uint64{0xff}, size: 4, opts: defaultOptions}
		rb, err := d.ToRoaring()
		require.NoError(t, err)
		assert.Equal(t, []uint32{0, 1, 2, 3}, rb.ToArray())
	})

	t.Run("Empty", func(t *testing.T) {
		v, err := FromRoaring(roaring.New(), 10)
		require.NoError(t, err)
		assert.Equal(t, 10, v.Len())
		assert.True(t, v.None())
	})

	t.Run("Errors", func(t *testing.T) {
		_, err := FromRoaring(roaring.BitmapOf(1, 10), 10)
		assert.ErrorIs(t, err, ErrOutOfRange)

		_, err = FromRoaring(roaring.New(), -1)
		assert.ErrorIs(t, err, ErrOutOfRange)

		_, err = FromRoaring(roaring.New(), DefaultMaxBits+1)
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})
}

func TestWordVector_BitSet(t *testing.T) {
	v := mustParse(t, "f001eddadf411eddec0de5ca1ab1ec0feefeeb1e01dc0b01", 16)

	b, err := v.ToBitSet()
	require.NoError(t, err)
	assert.Equal(t, uint(v.Len()), b.Len())
	assert.Equal(t, uint(v.Weight()), b.Count())
	for i := 0; i < v.Len(); i++ {
		assert.Equal(t, v.GetBit(i), b.Test(uint(i)), "bit %d", i)
	}

	back, err := FromBitSet(b)
	require.NoError(t, err)
	assert.True(t, v.Equal(back))

	t.Run("PartialWord", func(t *testing.T) {
		b := bitset.New(70)
		b.Set(0).Set(69)

		v, err := FromBitSet(b)
		require.NoError(t, err)
		assert.Equal(t, 70, v.Len())
		assert.True(t, v.GetBit(0))
		assert.True(t, v.GetBit(69))
		assert.Equal(t, 2, v.Weight())
	})

	t.Run("CapacityExceeded", func(t *testing.T) {
		_, err := FromBitSet(bitset.New(200), WithMaxBits(128))
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})
}

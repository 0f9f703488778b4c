package densebit

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// Hash returns a 64-bit murmur3 hash of the logical length and the bits
// within it. Vectors that are Equal hash to the same value.
func (v *WordVector) Hash() uint64 {
	h := murmur3.New64()

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v.size))
	_, _ = h.Write(buf[:])
	for i := 0; i < v.WordCount(); i++ {
		binary.LittleEndian.PutUint64(buf[:], v.maskedWord(i))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}

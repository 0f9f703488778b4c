package testutil

import (
	"math/rand"
	"sync"
)

const digits = "0123456789abcdefghijklmnopqrstuv"

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Words returns n pseudo-random 64-bit words.
func (r *RNG) Words(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint64, n)
	for i := range out {
		out[i] = r.rand.Uint64()
	}
	return out
}

// Positions returns count distinct pseudo-random bit positions in [0,limit), in ascending order.
func (r *RNG) Positions(count, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if count > limit {
		count = limit
	}
	perm := r.rand.Perm(limit)[:count]
	seen := make([]bool, limit)
	for _, p := range perm {
		seen[p] = true
	}
	out := make([]int, 0, count)
	for p, ok := range seen {
		if ok {
			out = append(out, p)
		}
	}
	return out
}

// DigitString returns a pseudo-random string of n digits valid in the given radix (2 to 32).
func (r *RNG) DigitString(n, radix int) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := make([]byte, n)
	for i := range buf {
		buf[i] = digits[r.rand.Intn(radix)]
	}
	return string(buf)
}

package densebit

// And returns the bitwise intersection. The result length is the shorter length.
func (v *WordVector) And(o *WordVector) *WordVector {
	out := v.derive(min(v.size, o.size))
	for i := range out.words {
		out.words[i] = v.maskedWord(i) & o.maskedWord(i)
	}
	out.clearTail()
	return out
}

// Or returns the bitwise union. The result length is the longer length.
func (v *WordVector) Or(o *WordVector) *WordVector {
	out := v.derive(max(v.size, o.size))
	for i := range out.words {
		out.words[i] = v.maskedWord(i) | o.maskedWord(i)
	}
	return out
}

// Xor returns the bitwise symmetric difference. The result length is the longer length.
func (v *WordVector) Xor(o *WordVector) *WordVector {
	out := v.derive(max(v.size, o.size))
	for i := range out.words {
		out.words[i] = v.maskedWord(i) ^ o.maskedWord(i)
	}
	return out
}

// Not returns the bitwise complement within v's logical length.
func (v *WordVector) Not() *WordVector {
	out := v.derive(v.size)
	for i := range out.words {
		out.words[i] = ^v.maskedWord(i)
	}
	out.clearTail()
	return out
}

// AndAssign intersects v with o in place, truncating to the shorter length.
func (v *WordVector) AndAssign(o *WordVector) {
	size := min(v.size, o.size)
	n := min(len(v.words), wordsFor(size))
	for i := 0; i < n; i++ {
		v.words[i] &= o.maskedWord(i)
	}
	v.words = v.words[:n]
	v.size = size
	v.clearTail()
}

// OrAssign unions v with o in place, extending to the longer length.
func (v *WordVector) OrAssign(o *WordVector) {
	v.combineAssign(o, func(a, b uint64) uint64 { return a | b })
}

// XorAssign xors v with o in place, extending to the longer length.
func (v *WordVector) XorAssign(o *WordVector) {
	v.combineAssign(o, func(a, b uint64) uint64 { return a ^ b })
}

func (v *WordVector) combineAssign(o *WordVector, op func(a, b uint64) uint64) {
	size := max(v.size, o.size)
	n := wordsFor(size)
	v.grow(n)
	v.extend(size)
	for i := 0; i < n; i++ {
		v.words[i] = op(v.words[i], o.maskedWord(i))
	}
}

package densebit

import (
	"math/bits"
	"strconv"
	"strings"
	"time"
)

const digitAlphabet = "0123456789abcdefghijklmnopqrstuv"

var zeroWord = strings.Repeat("0", WordBits)

// Parse builds a vector from a digit string in a power-of-two radix (2 to 32).
//
// The first character is the most significant digit. Each digit contributes
// log2(radix) bits, so the logical length is len(s)*log2(radix) regardless of
// leading zeros. Digits are consumed in chunks of 64/log2(radix) characters
// from the right, one storage write per chunk.
func Parse(s string, radix int, opts ...Option) (*WordVector, error) {
	o := resolveOptions(opts)
	start := time.Now()
	v, err := parse(s, radix, o)
	o.metrics.RecordParse(len(s), time.Since(start), err)
	if err != nil {
		o.logger.LogParse(len(s), radix, 0, err)
		return nil, err
	}
	o.logger.LogParse(len(s), radix, v.size, nil)
	return v, nil
}

func parse(s string, radix int, o *options) (*WordVector, error) {
	digitBits, err := radixBits(radix)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, &ParseError{Input: s, Radix: radix}
	}
	size := len(s) * digitBits
	if size > o.maxBits {
		return nil, o.rejectCapacity(o.logger, "parse", size)
	}

	v := &WordVector{
		words: make([]uint64, 0, wordsFor(size)),
		opts:  o,
	}
	chunk := WordBits / digitBits
	pos := 0
	for end := len(s); end > 0; end -= chunk {
		start := max(0, end-chunk)
		part := s[start:end]
		val, err := strconv.ParseUint(part, radix, WordBits)
		if err != nil {
			return nil, &ParseError{Input: s, Radix: radix, cause: err}
		}
		n := len(part) * digitBits
		v.insert(val, pos, n)
		pos += n
	}
	return v, nil
}

// String returns the binary form: 64 characters per logical word, most
// significant bit first, bits past Len printed as zero. An empty vector
// prints as a single all-zero word.
func (v *WordVector) String() string {
	n := v.WordCount()
	if n == 0 {
		return zeroWord
	}
	var sb strings.Builder
	sb.Grow(n * WordBits)
	for i := n - 1; i >= 0; i-- {
		w := strconv.FormatUint(v.maskedWord(i), 2)
		sb.WriteString(zeroWord[len(w):])
		sb.WriteString(w)
	}
	return sb.String()
}

// Format returns the digits of v in a power-of-two radix (2 to 32),
// most significant digit first.
//
// The result has ceil(Len/log2(radix)) digits; when Len is not a multiple of
// log2(radix) the leading digit covers the remaining high bits. Parse
// reverses Format whenever Len is a multiple of log2(radix).
func (v *WordVector) Format(radix int) (string, error) {
	digitBits, err := radixBits(radix)
	if err != nil {
		return "", err
	}
	n := (v.size + digitBits - 1) / digitBits
	buf := make([]byte, n)
	for d := 0; d < n; d++ {
		buf[n-1-d] = digitAlphabet[v.extract(d*digitBits, digitBits)]
	}
	return string(buf), nil
}

// radixBits returns log2(radix) for a power-of-two radix in [2, 32].
func radixBits(radix int) (int, error) {
	if radix < 2 || radix > 32 || radix&(radix-1) != 0 {
		return 0, errRadix(radix, true)
	}
	return bits.TrailingZeros(uint(radix)), nil
}

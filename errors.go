package densebit

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a position or length exceeds the addressable span.
	ErrOutOfRange = errors.New("bit position out of range")

	// ErrZeroWidth is returned when a field of length 0 is requested.
	ErrZeroWidth = errors.New("zero-width bit field")

	// ErrCapacityExceeded is returned when the logical size would exceed the configured ceiling.
	ErrCapacityExceeded = errors.New("bit capacity exceeded")

	// ErrParse is returned when a digit string cannot be parsed.
	ErrParse = errors.New("invalid digit string")

	// ErrInvalidRadix is returned for an unsupported radix.
	ErrInvalidRadix = errors.New("invalid radix")
)

// ParseError describes a digit string that could not be parsed in the given radix.
//
// errors.Is(err, ErrParse) reports true for every ParseError. The underlying
// strconv error (if any) can be accessed via errors.Unwrap.
type ParseError struct {
	Input string
	Radix int
	cause error
}

func (e *ParseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("parse %q in radix %d: %v", e.Input, e.Radix, e.cause)
	}
	return fmt.Sprintf("parse %q in radix %d: %v", e.Input, e.Radix, ErrParse)
}

func (e *ParseError) Unwrap() error { return e.cause }

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

func errOutOfRange(pos, length, limit int) error {
	return fmt.Errorf("%w: position %d, length %d exceeds %d bits", ErrOutOfRange, pos, length, limit)
}

func errPosition(pos, limit int) error {
	return fmt.Errorf("%w: position %d not in [0, %d)", ErrOutOfRange, pos, limit)
}

func errCapacity(bits, limit int) error {
	return fmt.Errorf("%w: %d bits requested, limit is %d", ErrCapacityExceeded, bits, limit)
}

func errRadix(radix int, powerOfTwo bool) error {
	if powerOfTwo {
		return fmt.Errorf("%w: %d (want a power of two in [2, 32])", ErrInvalidRadix, radix)
	}
	return fmt.Errorf("%w: %d (want [2, 32])", ErrInvalidRadix, radix)
}

// checkField validates a length-bounded field request against a width limit.
func checkField(pos, length, limit int) error {
	if length == 0 {
		return fmt.Errorf("%w: position %d", ErrZeroWidth, pos)
	}
	if pos < 0 || length < 0 || length > limit || pos > limit-length {
		return errOutOfRange(pos, length, limit)
	}
	return nil
}

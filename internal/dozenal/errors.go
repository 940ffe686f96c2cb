package dozenal

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrOutOfRange reports an input outside the documented domain of a conversion.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidDigit reports a symbol that is not part of the dozenal alphabet.
	ErrInvalidDigit = errors.New("invalid dozenal digit")
)

// RangeError describes which field was out of range. It matches ErrOutOfRange.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	if e.Max == math.MaxInt {
		return fmt.Sprintf("%s %d out of range: must be >= %d", e.Field, e.Value, e.Min)
	}
	return fmt.Sprintf("%s %d out of range: must be between %d and %d", e.Field, e.Value, e.Min, e.Max)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

func checkRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return &RangeError{Field: field, Value: value, Min: lo, Max: hi}
	}
	return nil
}

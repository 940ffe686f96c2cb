// Package dozenal converts decimal clock and calendar values into base-12
// strings for the watch face.
//
// Digits 0-9 keep their decimal symbols, ten is written X and eleven E.
// Every function in this package is pure and safe for concurrent use; the
// only package state is the alphabet and a pair table built once at init.
package dozenal

import (
	"fmt"
	"math"
)

// Base is the radix of every conversion in this package.
const Base = 12

// MaxTwoDigit is the largest value with a two-symbol dozenal form ("EE").
const MaxTwoDigit = Base*Base - 1

const alphabet = "0123456789XE"

// pairs[v] is the zero-padded two-symbol form of v.
var pairs [MaxTwoDigit + 1]string

func init() {
	buf := make([]byte, 0, 2)
	for v := range pairs {
		buf = appendDozenal(buf[:0], v)
		if len(buf) == 1 {
			buf = append([]byte{'0'}, buf...)
		}
		pairs[v] = string(buf)
	}
}

// Digit returns the alphabet symbol for a single dozenal digit.
func Digit(v int) (byte, error) {
	if err := checkRange("digit", v, 0, Base-1); err != nil {
		return 0, err
	}
	return alphabet[v], nil
}

// ConvertTwoDigit returns the zero-padded two-symbol form of v, e.g. 13 -> "11".
func ConvertTwoDigit(v int) (string, error) {
	if err := checkRange("value", v, 0, MaxTwoDigit); err != nil {
		return "", err
	}
	return pairs[v], nil
}

// ConvertYear returns the dozenal form of a non-negative integer with no
// padding. Zero converts to "0".
func ConvertYear(year int) (string, error) {
	if err := checkRange("year", year, 0, math.MaxInt); err != nil {
		return "", err
	}
	return string(appendDozenal(nil, year)), nil
}

// Parse decodes a dozenal string. Lower-case x and e are accepted.
func Parse(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidDigit)
	}
	v := 0
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i])
		if d < 0 {
			return 0, fmt.Errorf("%w: %q at position %d", ErrInvalidDigit, s[i], i)
		}
		if v > (math.MaxInt-d)/Base {
			return 0, fmt.Errorf("%w: %q overflows int", ErrOutOfRange, s)
		}
		v = v*Base + d
	}
	return v, nil
}

// appendDozenal divides by the base until the quotient is zero, then
// reverses the remainders so the most significant digit comes first.
func appendDozenal(dst []byte, v int) []byte {
	start := len(dst)
	for {
		dst = append(dst, alphabet[v%Base])
		v /= Base
		if v == 0 {
			break
		}
	}
	for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
	return dst
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c == 'X' || c == 'x':
		return 10
	case c == 'E' || c == 'e':
		return 11
	default:
		return -1
	}
}

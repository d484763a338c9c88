package mathutil

import "errors"

// ErrNegative is returned when an operation requires a non-negative input.
var ErrNegative = errors.New("input must be non-negative")

// Abs returns the absolute value of n.
func Abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Factorial computes n! iteratively.
func Factorial(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	result := 1
	for i := 2; i <= n; i++ {
		result *= i
	}
	return result, nil
}

// Clamp bounds v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

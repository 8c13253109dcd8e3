// Package parity classifies integers as even or odd.
package parity

import "golang.org/x/exp/constraints"

// IsEven reports whether n is a multiple of two. The low bit of a two's
// complement integer is zero exactly for even values, negatives included.
func IsEven[T constraints.Integer](n T) bool {
	return n&1 == 0
}

// IsOdd reports whether n is not a multiple of two.
func IsOdd[T constraints.Integer](n T) bool {
	return !IsEven(n)
}

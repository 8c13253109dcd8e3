// Package binary renders non-negative integers as base-2 digit strings.
package binary

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Format returns the binary representation of n, most significant digit
// first and without leading zeros. Zero is rendered as "0".
func Format[T constraints.Unsigned](n T) string {
	if n == 0 {
		return "0"
	}

	// digits come out least significant first
	buf := make([]byte, 0, 64)
	for ; n > 0; n >>= 1 {
		buf = append(buf, '0'+byte(n&1))
	}
	slices.Reverse(buf)

	return string(buf)
}

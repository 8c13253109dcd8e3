// Package dupes reports whether an integer sequence contains a repeated value.
package dupes

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// ContainsDuplicate reports whether any value occurs more than once in s.
//
// s is sorted ascending in place and its original order is lost. Callers that
// still need the order must pass a copy, or use HasDuplicate.
func ContainsDuplicate[T constraints.Integer](s []T) bool {
	slices.Sort(s)

	for i := 1; i < len(s); i++ {
		if s[i-1] == s[i] {
			return true
		}
	}

	return false
}

// HasDuplicate is ContainsDuplicate on a copy of s; s is left untouched.
func HasDuplicate[T constraints.Integer](s []T) bool {
	return ContainsDuplicate(slices.Clone(s))
}

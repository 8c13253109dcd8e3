// Package divide computes floor and ceiling of integer quotients.
//
// Go's / truncates toward zero and % takes the sign of the dividend, so the
// truncated quotient is already the floor when the operands share a sign and
// already the ceiling when they do not. Each function therefore adjusts by one
// only when the division is inexact and the signs call for it.
package divide

import (
	"drills/pkg/serrors"

	"golang.org/x/exp/constraints"
)

// ErrDivisionByZero is the kind of every error returned for a zero divisor.
var ErrDivisionByZero = serrors.NewKind("DIVISION_BY_ZERO")

// Floor returns the greatest integer less than or equal to a/b.
//
// Dividing the minimum value of T by -1 wraps to the minimum value, as Go's
// own division does.
func Floor[T constraints.Signed](a, b T) (T, error) {
	if b == 0 {
		return 0, zeroDivisor()
	}

	q := a / b
	// (a^b) < 0 iff exactly one operand is negative
	if a%b != 0 && (a^b) < 0 {
		q--
	}

	return q, nil
}

// Ceil returns the smallest integer greater than or equal to a/b.
func Ceil[T constraints.Signed](a, b T) (T, error) {
	if b == 0 {
		return 0, zeroDivisor()
	}

	q := a / b
	if a%b != 0 && (a^b) >= 0 {
		q++
	}

	return q, nil
}

// FloorCeil returns both Floor(a, b) and Ceil(a, b).
func FloorCeil[T constraints.Signed](a, b T) (floor, ceil T, err error) {
	if floor, err = Floor(a, b); err != nil {
		return 0, 0, err
	}
	if ceil, err = Ceil(a, b); err != nil {
		return 0, 0, err
	}

	return floor, ceil, nil
}

func zeroDivisor() error {
	return serrors.With(ErrDivisionByZero, "division by zero is not allowed")
}

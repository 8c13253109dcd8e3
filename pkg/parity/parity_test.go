package parity_test

import (
	"drills/pkg/parity"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsEven(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{0, true},
		{1, false},
		{2, true},
		{-1, false},
		{-2, true},
		{-3, false},
		{15, false},
		{44, true},
		{math.MaxInt, false},
		{math.MinInt, true},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, parity.IsEven(tt.n), "IsEven(%d)", tt.n)
		require.Equal(t, !tt.want, parity.IsOdd(tt.n), "IsOdd(%d)", tt.n)
	}
}

// The bitwise test must agree with the remainder test, which Go truncates
// toward zero, for negative inputs too.
func TestIsEven_AgreesWithRemainder(t *testing.T) {
	for n := -1000; n <= 1000; n++ {
		byRemainder := n%2 == 0
		require.Equal(t, byRemainder, parity.IsEven(n), "n=%d", n)

		small := int8(n % 128)
		require.Equal(t, small%2 == 0, parity.IsEven(small), "int8 n=%d", small)
	}
}

func TestIsEven_TypeExtremes(t *testing.T) {
	require.True(t, parity.IsEven(int8(math.MinInt8)))
	require.False(t, parity.IsEven(int8(math.MaxInt8)))
	require.True(t, parity.IsEven(int64(math.MinInt64)))
	require.False(t, parity.IsEven(uint64(math.MaxUint64)))
	require.True(t, parity.IsEven(uint32(0)))
}

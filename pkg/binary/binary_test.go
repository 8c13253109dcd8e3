package binary_test

import (
	"drills/pkg/binary"
	"math"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Reference algorithms. Format must agree with every one of them.

func byPrepend(n uint64) string {
	if n == 0 {
		return "0"
	}
	s := ""
	for n > 0 {
		s = strconv.FormatUint(n%2, 10) + s
		n /= 2
	}

	return s
}

func byAppendReverse(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf []byte
	for n > 0 {
		buf = append(buf, byte('0'+n%2))
		n /= 2
	}
	slices.Reverse(buf)

	return string(buf)
}

func byHeadRecursion(n uint64) string {
	if n == 0 {
		return "0"
	}
	var sb strings.Builder
	var rec func(uint64)
	rec = func(n uint64) {
		if n == 0 {
			return
		}
		rec(n / 2)
		sb.WriteByte(byte('0' + n%2))
	}
	rec(n)

	return sb.String()
}

func byShiftMask(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf []byte
	for ; n > 0; n >>= 1 {
		buf = append(buf, byte('0'+n&1))
	}
	slices.Reverse(buf)

	return string(buf)
}

func TestFormat_KnownValues(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{2, "10"},
		{5, "101"},
		{10, "1010"},
		{255, "11111111"},
		{1024, "10000000000"},
		{math.MaxInt64, strings.Repeat("1", 63)},
		{math.MaxUint64, strings.Repeat("1", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, binary.Format(tt.in))
		})
	}
}

func TestFormat_NarrowTypes(t *testing.T) {
	require.Equal(t, "11111111", binary.Format(uint8(math.MaxUint8)))
	require.Equal(t, "1000000000000000", binary.Format(uint16(1<<15)))
	require.Equal(t, "0", binary.Format(uint(0)))
}

func TestFormat_AgreesWithReferenceAlgorithms(t *testing.T) {
	refs := map[string]func(uint64) string{
		"prepend":        byPrepend,
		"append-reverse": byAppendReverse,
		"head-recursion": byHeadRecursion,
		"shift-mask":     byShiftMask,
	}

	for n := uint64(0); n <= 10000; n++ {
		got := binary.Format(n)

		require.Equal(t, strconv.FormatUint(n, 2), got, "n=%d", n)
		if got != "0" {
			require.Equal(t, byte('1'), got[0], "leading zero for n=%d", n)
		}

		back, err := strconv.ParseUint(got, 2, 64)
		require.NoError(t, err)
		require.Equal(t, n, back)

		for name, ref := range refs {
			require.Equal(t, got, ref(n), "%s disagrees for n=%d", name, n)
		}
	}
}

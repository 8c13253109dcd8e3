package serrors_test

import (
	"drills/pkg/serrors"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type parseError struct{ input string }

func (e parseError) Error() string { return "cannot parse " + e.input }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrBadRequest,
		serrors.ErrNotFound,
		serrors.ErrMethodNotAllowed,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}

	require.Equal(t, serrors.NewKind("BAD_REQUEST"), serrors.ErrBadRequest, "kinds compare by name")
}

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("unexpected EOF")

	tests := []struct {
		name string
		err  *serrors.Error
		want string
	}{
		{name: "message only", err: serrors.With(serrors.ErrBadRequest, "expected %d integers", 2), want: "expected 2 integers"},
		{name: "message and cause", err: serrors.Wrap(serrors.ErrBadRequest, cause, "reading input"), want: "reading input: unexpected EOF"},
		{name: "cause only", err: serrors.Wrap(serrors.ErrInternal, cause, ""), want: "unexpected EOF"},
		{name: "kind only", err: serrors.KindOnly(serrors.ErrNotFound), want: "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsMatchesKindAndCause(t *testing.T) {
	cause := parseError{"x"}
	err := serrors.Wrap(serrors.ErrBadRequest, cause, "argument 1")

	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrInternal)

	wrapped := fmt.Errorf("divide: %w", err)
	require.ErrorIs(t, wrapped, serrors.ErrBadRequest)
}

func TestAsExtractsKindAndCause(t *testing.T) {
	err := serrors.Wrap(serrors.ErrBadRequest, parseError{"abc"}, "argument 1")

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, serrors.ErrBadRequest, k)

	var pe parseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "abc", pe.input)
}

func TestKindOf(t *testing.T) {
	divByZero := serrors.NewKind("DIVISION_BY_ZERO")

	require.Equal(t, serrors.ErrBadRequest, serrors.KindOf(serrors.With(serrors.ErrBadRequest, "bad")))
	require.Equal(t, divByZero, serrors.KindOf(fmt.Errorf("floor: %w", serrors.KindOnly(divByZero))))
	require.Equal(t, divByZero, serrors.KindOf(divByZero))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("boom")))
}

func TestMessageOf(t *testing.T) {
	require.Equal(t, "n must be non-negative",
		serrors.MessageOf(fmt.Errorf("binary: %w", serrors.With(serrors.ErrBadRequest, "n must be non-negative")), "x"))
	require.Equal(t, "fallback", serrors.MessageOf(serrors.KindOnly(serrors.ErrInternal), "fallback"))
	require.Equal(t, "fallback", serrors.MessageOf(errors.New("plain"), "fallback"))
}

func TestAccessors(t *testing.T) {
	err := serrors.With(serrors.ErrMethodNotAllowed, "use GET")
	require.Equal(t, serrors.ErrMethodNotAllowed, err.Kind())
	require.Equal(t, "use GET", err.Message())
	require.NoError(t, err.Unwrap())
}

// Package serrors defines semantic error kinds shared by the library and its
// adapters. A kind says what went wrong in terms a caller can act on; the
// adapters translate kinds into exit codes and HTTP statuses.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind. Kinds are comparable sentinels
// and match through errors.Is on any *Error that carries them.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrBadRequest indicates the caller supplied input outside an operation's domain
	// or input that could not be parsed.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrNotFound indicates the requested operation does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrMethodNotAllowed indicates the operation exists but not for the requested method.
	ErrMethodNotAllowed = NewKind("METHOD_NOT_ALLOWED")
	// ErrInternal indicates an unexpected failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error carrying a kind, an optional cause and an
// optional message.
//
// Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind's name,
// whichever is the first to have all its parts set.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error of kind k wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind sentinel or anything in the cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As extracts either the kind sentinel or a value from the cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the kind carried by e, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to e.
func (e *Error) Message() string { return e.msg }

// KindOf reports the semantic kind of err. A bare Kind sentinel is its own
// kind; errors that carry no kind at all are reported as ErrInternal.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.Kind() != nil {
		return se.Kind()
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// MessageOf returns the message of the first *Error in err's chain, falling
// back to fallback when there is none or it is empty.
func MessageOf(err error, fallback string) string {
	var se *Error
	if errors.As(err, &se) && se.Message() != "" {
		return se.Message()
	}

	return fallback
}

// Package milerr defines the error taxonomy shared by every Milo
// component. Each kind corresponds to one failure mode a trajectory can
// hit; callers that need to branch on the kind use errors.As, callers
// that just need a message use Error() directly.
package milerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a Milo error independent of its message text.
type Kind int

const (
	// KindInput covers malformed input sections, missing required
	// keys, invalid enum values, and cross-field violations.
	KindInput Kind = iota
	// KindEspFailure covers a non-normal ESP termination or a log
	// that could not be parsed for the fields the core requires.
	KindEspFailure
	// KindInvalidState covers an integrator invoked with empty force
	// history, no atoms, or a non-positive step size.
	KindInvalidState
	// KindUnknownElement covers a symbol/atomic-number lookup miss.
	KindUnknownElement
	// KindUnknownIsotope covers an isotope lookup miss; note this is
	// a success path when a fallback isotope applies, and only this
	// kind when there truly is no default to fall back to.
	KindUnknownIsotope
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "InputError"
	case KindEspFailure:
		return "EspFailure"
	case KindInvalidState:
		return "InvalidState"
	case KindUnknownElement:
		return "UnknownElement"
	case KindUnknownIsotope:
		return "UnknownIsotope"
	default:
		return "UnknownError"
	}
}

// Error is a typed Milo failure. It wraps an optional underlying cause
// with github.com/pkg/errors' WithStack, so formatting Err itself with
// %+v prints the stack recorded at wrap time. Error() and %+v on the
// *Error print only the messages, with no stack trace.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is(err, &milerr.Error{Kind: milerr.KindInput}) style
// targets match by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapf(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: errors.WithStack(err)}
}

// Input builds an InputError with a formatted message.
func Input(format string, args ...any) *Error { return newf(KindInput, format, args...) }

// WrapInput builds an InputError that carries an underlying cause.
func WrapInput(err error, format string, args ...any) *Error {
	return wrapf(KindInput, err, format, args...)
}

// Esp builds an EspFailure with a formatted message.
func Esp(format string, args ...any) *Error { return newf(KindEspFailure, format, args...) }

// WrapEsp builds an EspFailure that carries an underlying cause.
func WrapEsp(err error, format string, args ...any) *Error {
	return wrapf(KindEspFailure, err, format, args...)
}

// InvalidState builds an InvalidState error with a formatted message.
func InvalidState(format string, args ...any) *Error {
	return newf(KindInvalidState, format, args...)
}

// UnknownElement builds an UnknownElement error for the given symbol
// or atomic number (pass whichever identified the failed lookup).
func UnknownElement(ident string) *Error {
	return newf(KindUnknownElement, "no element matches %q", ident)
}

// UnknownIsotope builds an UnknownIsotope error for the given
// symbol/mass-number pair.
func UnknownIsotope(symbol string, massNumber int) *Error {
	return newf(KindUnknownIsotope, "no isotope data for %s-%d", symbol, massNumber)
}

// Is reports whether err (or anything it wraps) is a Milo error of
// the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if me, ok := err.(*Error); ok {
			e = me
			break
		}
		err = errors.Unwrap(err)
	}
	return e != nil && e.Kind == kind
}

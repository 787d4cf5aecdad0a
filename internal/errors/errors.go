// Package errors is the single import for error handling across the module.
// Sentinel checks go through the standard library; anything that crosses a
// layer boundary is annotated with a pkg/errors stack trace.
package errors

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// Wrap adds message and a stack trace. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf adds a formatted message and a stack trace. A nil err stays nil.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack without changing the message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// WithMessage prefixes err with message and records no stack.
func WithMessage(err error, message string) error {
	return pkgerrors.WithMessage(err, message)
}

// Errorf is fmt.Errorf with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

// Cause walks pkg/errors wrappers down to the innermost error.
//
//nolint:wrapcheck // passthrough to pkg/errors
func Cause(err error) error {
	return pkgerrors.Cause(err)
}

// StackTrace renders err with the deepest recorded stack, or just the message
// when nothing in the chain carries one.
func StackTrace(err error) string {
	if err == nil {
		return ""
	}

	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}

	var deepest stackTracer
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		if st, ok := e.(stackTracer); ok {
			deepest = st
		}
	}
	if deepest == nil {
		return err.Error()
	}

	return fmt.Sprintf("%s%+v", err.Error(), deepest.StackTrace())
}

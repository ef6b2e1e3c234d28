// Package errors defines the two failure kinds of the notifier and the
// sentinel causes that produce them.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrMissingEnv        = errors.New("missing environment variable")
	ErrMissingFlag       = errors.New("missing required flag")
	ErrInvalidURL        = errors.New("invalid url")
	ErrUnexpectedStatus  = errors.New("server responded with http status")
	ErrGraphQL           = errors.New("graphql error")
	ErrMalformedResponse = errors.New("malformed response body")
)

// Kind classifies a failure for reporting.
type Kind int

const (
	KindInvalidInput Kind = iota + 1
	KindAPI
	KindReceiver
)

// Message returns the category prefix printed ahead of the error details.
func (k Kind) Message() string {
	switch k {
	case KindInvalidInput:
		return "Invalid input"
	case KindAPI:
		return "Failed to register docker image push"
	case KindReceiver:
		return "Receiver failed"
	default:
		return "Unexpected error"
	}
}

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindAPI:
		return "ApiError"
	case KindReceiver:
		return "ReceiverError"
	default:
		return "Unknown"
	}
}

// Error is a categorized failure wrapping its cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidInput wraps err as a KindInvalidInput failure.
func InvalidInput(err error) *Error {
	return &Error{Kind: KindInvalidInput, Err: err}
}

// InvalidInputf formats and wraps an input failure. Use %w to keep a sentinel.
func InvalidInputf(format string, args ...any) *Error {
	return InvalidInput(fmt.Errorf(format, args...))
}

// API wraps err as a KindAPI failure.
func API(err error) *Error {
	return &Error{Kind: KindAPI, Err: err}
}

// APIf formats and wraps an api failure. Use %w to keep a sentinel.
func APIf(format string, args ...any) *Error {
	return API(fmt.Errorf(format, args...))
}

// Receiver wraps err as a failure of the local receiver
func Receiver(err error) *Error {
	return &Error{Kind: KindReceiver, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain. Errors that
// carry no kind are treated as input errors since they can only come from
// argument parsing.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInvalidInput
}

// Report renders err as the single diagnostic line written on failure.
func Report(err error) string {
	return fmt.Sprintf("%s: %v.", KindOf(err).Message(), err)
}

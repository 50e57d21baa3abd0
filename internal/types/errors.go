package types

import (
	"errors"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ErrorKind classifies the failures that abort a scaffolding run.
type ErrorKind string

const (
	ErrorKindTransport    ErrorKind = "transport"
	ErrorKindParse        ErrorKind = "parse"
	ErrorKindNoCompatible ErrorKind = "no_compatible_version"
)

// Error tags an errbuilder error with its kind and the catalog or query
// that produced it.
type Error struct {
	Kind   ErrorKind
	Source string
	Err    error
}

func (e *Error) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error in %s: %v", e.Kind, e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func TransportError(source string, msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(msg)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return &Error{Kind: ErrorKindTransport, Source: source, Err: builder}
}

func ParseError(source string, msg string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return &Error{Kind: ErrorKindParse, Source: source, Err: builder}
}

func NoCompatibleVersionError(source string, msg string) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(msg)
	return &Error{Kind: ErrorKindNoCompatible, Source: source, Err: builder}
}

// IsKind reports whether err, or any error it wraps, is an *Error of kind.
func IsKind(err error, kind ErrorKind) bool {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind == kind
	}
	return false
}

// Package errortypes defines the failure taxonomy shared by the
// summarization pipeline and the HTTP layer.
package errortypes

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind string

const (
	// KindValidation marks bad caller input: empty text, negative length.
	KindValidation Kind = "validation"
	// KindConfiguration marks a missing or rejected credential.
	KindConfiguration Kind = "configuration"
	// KindTransport marks a network failure reaching the remote service.
	KindTransport Kind = "transport"
	// KindRemote marks an application-level rejection by the remote service.
	KindRemote Kind = "remote"
	// KindEmptyResponse marks a successful call that carried no usable content.
	KindEmptyResponse Kind = "empty_response"
)

// Error carries a failure kind together with a message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error without a cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error around a cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind attached to err, unwrapping as needed.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return "", false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	got, ok := KindOf(err)

	return ok && got == kind
}

// Package apierr classifies failures reported by the matching service client
// into one closed set of kinds that callers can switch on.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind is the closed set of failure categories.
type Kind int

const (
	KindUnknown Kind = iota
	KindServer
	KindUnauthorized
	KindForbidden
	KindDecoding
)

func (k Kind) String() string {
	switch k {
	case KindServer:
		return "server"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindDecoding:
		return "decoding"
	default:
		return "unknown"
	}
}

// Error is the single error type surfaced to callers.
type Error struct {
	Kind Kind
	// Status is the HTTP status when the failure came from a response.
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Status != 0 {
		fmt.Fprintf(&b, " (%d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// UserMessage is a short text safe to show next to a list.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindServer:
		if e.Message != "" {
			return e.Message
		}
		return "The server could not process the request."
	case KindUnauthorized:
		return "Your session has expired. Please sign in again."
	case KindForbidden:
		return "You do not have access to this resource."
	case KindDecoding:
		return "The server response could not be read."
	default:
		return "Something went wrong."
	}
}

// FromStatus classifies a non-successful HTTP status.
func FromStatus(status int, message string) *Error {
	kind := KindUnknown
	switch {
	case status == http.StatusUnauthorized:
		kind = KindUnauthorized
	case status == http.StatusForbidden:
		kind = KindForbidden
	case status >= http.StatusBadRequest:
		kind = KindServer
	}
	return &Error{Kind: kind, Status: status, Message: strings.TrimSpace(message)}
}

// Decoding wraps a failure to read a payload.
func Decoding(err error) *Error {
	return &Error{Kind: KindDecoding, Err: err}
}

// Wrap classifies an arbitrary error, keeping an existing classification.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindUnknown, Err: err}
}

// KindOf returns the kind of err, KindUnknown when it was never classified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

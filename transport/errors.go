package transport

import (
	"errors"
	"fmt"
)

// ErrorKind classifies execution failures.
type ErrorKind int

const (
	// KindRequestConstructionFailed indicates the spec could not be materialized.
	KindRequestConstructionFailed ErrorKind = iota + 1
	// KindTransportFailure indicates the channel failed or returned no bytes.
	KindTransportFailure
	// KindInvalidResponse indicates the response metadata has no usable status.
	KindInvalidResponse
	// KindDecodeFailure indicates the bytes did not decode into the target type.
	KindDecodeFailure
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindRequestConstructionFailed:
		return "request_construction_failed"
	case KindTransportFailure:
		return "transport_failure"
	case KindInvalidResponse:
		return "invalid_response"
	case KindDecodeFailure:
		return "decode_failure"
	default:
		return "unknown"
	}
}

// Error is a classified execution failure.
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// Message describes the failure.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("transport: %s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("transport: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewRequestConstructionError wraps a materialization failure.
func NewRequestConstructionError(err error) *Error {
	return &Error{Kind: KindRequestConstructionFailed, Message: "cannot build request", Err: err}
}

// NewTransportError wraps a channel failure. A nil err means no bytes arrived.
func NewTransportError(err error) *Error {
	if err == nil {
		return &Error{Kind: KindTransportFailure, Message: "no response received"}
	}
	return &Error{Kind: KindTransportFailure, Message: "send failed", Err: err}
}

// NewInvalidResponseError reports a response without a usable status.
func NewInvalidResponseError(msg string) *Error {
	return &Error{Kind: KindInvalidResponse, Message: msg}
}

// NewDecodeError wraps a decoding failure.
func NewDecodeError(target any, err error) *Error {
	return &Error{Kind: KindDecodeFailure, Message: fmt.Sprintf("cannot decode into %T", target), Err: err}
}

// AsError returns err as an *Error. Any other non-nil error is classified
// as a transport failure.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewTransportError(err)
}

// IsRequestConstructionFailed checks if err is a request construction failure.
func IsRequestConstructionFailed(err error) bool {
	return hasKind(err, KindRequestConstructionFailed)
}

// IsTransportFailure checks if err is a transport failure.
func IsTransportFailure(err error) bool {
	return hasKind(err, KindTransportFailure)
}

// IsInvalidResponse checks if err is an invalid response failure.
func IsInvalidResponse(err error) bool {
	return hasKind(err, KindInvalidResponse)
}

// IsDecodeFailure checks if err is a decode failure.
func IsDecodeFailure(err error) bool {
	return hasKind(err, KindDecodeFailure)
}

func hasKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

package request

import (
	"errors"
	"fmt"
)

// InvalidRequestError reports that a Spec could not be materialized.
type InvalidRequestError struct {
	// Reason describes what was wrong with the Spec.
	Reason string
	// URL is the composed URL, when composition got that far.
	URL string
	// Err is the underlying error, if any.
	Err error
}

func (e *InvalidRequestError) Error() string {
	msg := "request: " + e.Reason
	if e.URL != "" {
		msg += fmt.Sprintf(" (%q)", e.URL)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidRequestError) Unwrap() error {
	return e.Err
}

func invalid(reason, url string, err error) *InvalidRequestError {
	return &InvalidRequestError{Reason: reason, URL: url, Err: err}
}

// IsInvalidRequest reports whether err is or wraps an *InvalidRequestError.
func IsInvalidRequest(err error) bool {
	var e *InvalidRequestError
	return errors.As(err, &e)
}

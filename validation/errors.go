package validation

import (
	"errors"
	"strings"
)

// FieldError describes a single failed field check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is returned by Validate when one or more fields fail their checks.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Field returns the message recorded for name, if any.
func (e *Error) Field(name string) (string, bool) {
	for _, f := range e.Fields {
		if f.Field == name {
			return f.Message, true
		}
	}
	return "", false
}

// IsValidationError reports whether err is or wraps a *Error.
func IsValidationError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

package transport

import (
	"errors"

	"github.com/goccy/go-json"
)

// Empty is the target type for responses whose body should be ignored.
// Executing into *Empty succeeds regardless of the bytes received.
type Empty struct{}

// Optional is a target for endpoints that may answer with no body, such as
// a 204 to a DELETE. An empty body leaves Present false; anything else must
// decode into Value.
type Optional[T any] struct {
	Value   T
	Present bool
}

func (o *Optional[T]) decodeBody(body []byte) error {
	var zero T
	o.Value, o.Present = zero, false
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, &o.Value); err != nil {
		return err
	}
	o.Present = true
	return nil
}

// bodyDecoder is implemented by targets that decode themselves.
type bodyDecoder interface {
	decodeBody(body []byte) error
}

var errEmptyBody = errors.New("empty body")

// decode unmarshals body into target. A nil target or an *Empty target
// skips decoding.
func decode(body []byte, target any) error {
	switch t := target.(type) {
	case nil, *Empty:
		return nil
	case bodyDecoder:
		if err := t.decodeBody(body); err != nil {
			return NewDecodeError(target, err)
		}
		return nil
	}
	if len(body) == 0 {
		return NewDecodeError(target, errEmptyBody)
	}
	if err := json.Unmarshal(body, target); err != nil {
		return NewDecodeError(target, err)
	}
	return nil
}

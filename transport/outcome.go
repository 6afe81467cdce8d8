package transport

import "github.com/kbukum/reqkit/channel"

// Outcome is the result of one execution: either a value or an *Error.
type Outcome[T any] struct {
	value T
	meta  *channel.Metadata
	err   *Error
}

// Success creates a successful outcome.
func Success[T any](value T, meta *channel.Metadata) Outcome[T] {
	return Outcome[T]{value: value, meta: meta}
}

// Failure creates a failed outcome. A nil err is classified as a transport
// failure so that a failure outcome always carries an error.
func Failure[T any](err *Error) Outcome[T] {
	if err == nil {
		err = NewTransportError(nil)
	}
	return Outcome[T]{err: err}
}

// OK reports whether the outcome is a success.
func (o Outcome[T]) OK() bool {
	return o.err == nil
}

// Value returns the decoded value. It is the zero value on failure.
func (o Outcome[T]) Value() T {
	return o.value
}

// Err returns the failure, or nil on success.
func (o Outcome[T]) Err() *Error {
	return o.err
}

// Get returns the value and the failure as a plain error.
func (o Outcome[T]) Get() (T, error) {
	if o.err != nil {
		return o.value, o.err
	}
	return o.value, nil
}

// Metadata returns the response metadata of a success, or nil.
func (o Outcome[T]) Metadata() *channel.Metadata {
	return o.meta
}

// Match calls exactly one of onSuccess or onFailure. Nil callbacks are skipped.
func (o Outcome[T]) Match(onSuccess func(T), onFailure func(*Error)) {
	if o.err != nil {
		if onFailure != nil {
			onFailure(o.err)
		}
		return
	}
	if onSuccess != nil {
		onSuccess(o.value)
	}
}

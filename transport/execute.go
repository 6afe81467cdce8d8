package transport

import (
	"context"
	"errors"

	"github.com/kbukum/reqkit/channel"
	"github.com/kbukum/reqkit/request"
)

// Executor runs a spec and decodes the result into target, which must be a
// pointer. Failures are reported as *Error.
type Executor interface {
	Execute(ctx context.Context, spec request.Spec, target any) error
}

// MetadataExecutor is an Executor that also reports response metadata.
type MetadataExecutor interface {
	Executor
	Do(ctx context.Context, spec request.Spec, target any) (*channel.Metadata, error)
}

var (
	_ MetadataExecutor = (*Transport)(nil)

	errNoExecutor = errors.New("no executor")
)

// Execute runs spec through exec and returns exactly one outcome.
func Execute[T any](ctx context.Context, exec Executor, spec request.Spec) Outcome[T] {
	if exec == nil {
		return Failure[T](NewTransportError(errNoExecutor))
	}

	var (
		value T
		meta  *channel.Metadata
		err   error
	)
	if me, ok := exec.(MetadataExecutor); ok {
		meta, err = me.Do(ctx, spec, &value)
	} else {
		err = exec.Execute(ctx, spec, &value)
	}
	if err != nil {
		return Failure[T](AsError(err))
	}
	return Success(value, meta)
}

// ExecuteFunc runs spec and calls exactly one of the callbacks, once.
func ExecuteFunc[T any](ctx context.Context, exec Executor, spec request.Spec, onSuccess func(T), onFailure func(*Error)) {
	Execute[T](ctx, exec, spec).Match(onSuccess, onFailure)
}

// ExecuteAsync runs spec in a new goroutine. The returned channel receives
// exactly one outcome and is then closed.
func ExecuteAsync[T any](ctx context.Context, exec Executor, spec request.Spec) <-chan Outcome[T] {
	out := make(chan Outcome[T], 1)
	go func() {
		defer close(out)
		out <- Execute[T](ctx, exec, spec)
	}()
	return out
}

package provider

import "context"

// RequestResponse takes one input and produces one output.
type RequestResponse[I, O any] interface {
	Provider
	Execute(ctx context.Context, input I) (O, error)
}

// Func turns fn into an always-available RequestResponse called name.
func Func[I, O any](name string, fn func(ctx context.Context, input I) (O, error)) RequestResponse[I, O] {
	return funcProvider[I, O]{name: name, fn: fn}
}

type funcProvider[I, O any] struct {
	name string
	fn   func(ctx context.Context, input I) (O, error)
}

func (f funcProvider[I, O]) Name() string                     { return f.name }
func (_ funcProvider[I, O]) IsAvailable(context.Context) bool { return true }

func (f funcProvider[I, O]) Execute(ctx context.Context, input I) (O, error) {
	return f.fn(ctx, input)
}

// decorated forwards Name and IsAvailable to the provider it wraps.
type decorated[I, O any] struct {
	inner RequestResponse[I, O]
}

func (d decorated[I, O]) Name() string                         { return d.inner.Name() }
func (d decorated[I, O]) IsAvailable(ctx context.Context) bool { return d.inner.IsAvailable(ctx) }

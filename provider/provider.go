package provider

import "context"

// Provider is a named capability that may be temporarily unavailable.
type Provider interface {
	Name() string
	IsAvailable(ctx context.Context) bool
}

// Closeable is implemented by providers that own connections or files.
// Close must be safe to call more than once.
type Closeable interface {
	Close(ctx context.Context) error
}

// Annotator describes one call for logs and spans. out is the zero value
// when the call failed.
type Annotator[I, O any] func(in I, out O) map[string]any

func annotate[I, O any](fn Annotator[I, O], in I, out O) map[string]any {
	if fn == nil {
		return nil
	}
	return fn(in, out)
}

package provider

// Middleware decorates a RequestResponse.
type Middleware[I, O any] func(RequestResponse[I, O]) RequestResponse[I, O]

// Chain composes middlewares so that Chain(a, b)(p) == a(b(p)). Nil entries
// are skipped.
func Chain[I, O any](middlewares ...Middleware[I, O]) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return Wrap(inner, middlewares...)
	}
}

// Wrap applies middlewares to p, first one outermost.
func Wrap[I, O any](p RequestResponse[I, O], middlewares ...Middleware[I, O]) RequestResponse[I, O] {
	wrapped := p
	for i := range middlewares {
		mw := middlewares[len(middlewares)-1-i]
		if mw != nil {
			wrapped = mw(wrapped)
		}
	}
	return wrapped
}

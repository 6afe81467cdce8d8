package provider

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/reqkit/observability"
)

// WithTracing wraps every call in a client span named
// "{serviceName}.{providerName}". Attributes returned by describe are set
// on the span once the call returns; describe may be nil.
func WithTracing[I, O any](serviceName string, describe Annotator[I, O]) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &tracingProvider[I, O]{decorated: decorated[I, O]{inner}, service: serviceName, describe: describe}
	}
}

type tracingProvider[I, O any] struct {
	decorated[I, O]
	service  string
	describe Annotator[I, O]
}

func (p *tracingProvider[I, O]) Execute(ctx context.Context, input I) (O, error) {
	name := p.inner.Name()
	ctx, span := observability.StartSpan(ctx, p.service+"."+name, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	observability.SetSpanAttribute(ctx, observability.AttrServiceName, p.service)
	observability.SetSpanAttribute(ctx, observability.AttrOperationName, name)

	output, err := p.inner.Execute(ctx, input)
	for k, v := range annotate(p.describe, input, output) {
		observability.SetSpanAttribute(ctx, k, v)
	}
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	return output, err
}

package provider

import (
	"context"
	"time"

	"github.com/kbukum/reqkit/observability"
)

// WithMetrics counts and times every call under operation, labelled with
// the provider name as the service. A nil metrics disables the middleware.
func WithMetrics[I, O any](metrics *observability.Metrics, operation string) Middleware[I, O] {
	if metrics == nil {
		return nil
	}
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &metricsProvider[I, O]{decorated: decorated[I, O]{inner}, metrics: metrics, operation: operation}
	}
}

type metricsProvider[I, O any] struct {
	decorated[I, O]
	metrics   *observability.Metrics
	operation string
}

func (p *metricsProvider[I, O]) Execute(ctx context.Context, input I) (O, error) {
	start := time.Now()
	output, err := p.inner.Execute(ctx, input)
	elapsed := time.Since(start)

	status := observability.StatusOK
	if err != nil {
		status = observability.StatusError
		p.metrics.RecordError(ctx, p.operation, p.inner.Name())
	}
	p.metrics.RecordOperation(ctx, p.inner.Name(), p.operation, status, elapsed)
	return output, err
}

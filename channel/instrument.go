package channel

import (
	"github.com/kbukum/reqkit/logger"
	"github.com/kbukum/reqkit/observability"
	"github.com/kbukum/reqkit/provider"
	"github.com/kbukum/reqkit/request"
)

// Middleware is a provider middleware specialized for channels.
type Middleware = provider.Middleware[*request.Materialized, *Response]

// Instrument routes ch through the given middlewares. The first middleware
// is outermost. Nil middlewares are skipped.
func Instrument(ch Channel, name string, mws ...Middleware) Channel {
	wrapped := provider.Wrap(provider.Func(name, ch.Send), mws...)
	return Func(wrapped.Execute)
}

// WithLogging logs each send with its method, URL, status and duration.
func WithLogging(log *logger.Logger) Middleware {
	return provider.WithLogging[*request.Materialized, *Response](log, exchangeFields)
}

// WithTracing opens a client span named "{serviceName}.{channelName}"
// around each send.
func WithTracing(serviceName string) Middleware {
	return provider.WithTracing[*request.Materialized, *Response](serviceName, exchangeAttributes)
}

// WithMetrics counts and times each send. It is a no-op for nil metrics.
func WithMetrics(metrics *observability.Metrics) Middleware {
	return provider.WithMetrics[*request.Materialized, *Response](metrics, "send")
}

func exchangeFields(req *request.Materialized, resp *Response) map[string]any {
	fields := map[string]any{}
	if req != nil {
		fields[logger.FieldMethod] = req.Method
		fields[logger.FieldURL] = req.URL
	}
	if code := statusOf(resp); code > 0 {
		fields[logger.FieldStatusCode] = code
	}
	return fields
}

func exchangeAttributes(req *request.Materialized, resp *Response) map[string]any {
	attrs := map[string]any{}
	if req != nil {
		attrs[observability.AttrHTTPMethod] = req.Method
		attrs[observability.AttrHTTPURL] = req.URL
	}
	if code := statusOf(resp); code > 0 {
		attrs[observability.AttrHTTPStatus] = code
	}
	return attrs
}

func statusOf(resp *Response) int {
	if resp == nil || resp.Meta == nil {
		return 0
	}
	return resp.Meta.StatusCode
}

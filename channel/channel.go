package channel

import (
	"context"
	"net/http"

	"github.com/kbukum/reqkit/request"
)

// Metadata describes a received response.
type Metadata struct {
	StatusCode int
	// Headers holds the first value of each response header, keyed by
	// canonical name.
	Headers map[string]string
}

// Response is what a channel received. A nil Body means no bytes arrived;
// an empty, non-nil Body is a zero-length payload.
type Response struct {
	Body []byte
	Meta *Metadata
}

// Channel sends one materialized request.
type Channel interface {
	Send(ctx context.Context, req *request.Materialized) (*Response, error)
}

// Func adapts a function to Channel.
type Func func(ctx context.Context, req *request.Materialized) (*Response, error)

// Send calls f.
func (f Func) Send(ctx context.Context, req *request.Materialized) (*Response, error) {
	return f(ctx, req)
}

// flattenHeaders keeps the first value of each header.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[http.CanonicalHeaderKey(k)] = v[0]
		}
	}
	return result
}

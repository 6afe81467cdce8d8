package channel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/kbukum/reqkit/request"
)

// Resty is a live Channel backed by a go-resty client.
type Resty struct {
	client *resty.Client
	config Config
}

// NewResty creates a resty-backed channel from cfg. It shares transport
// construction with NewHTTP, so TLS and HTTP/2 settings behave the same.
func NewResty(cfg Config) (*Resty, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport, err := newTransport(cfg)
	if err != nil {
		return nil, err
	}

	client := resty.NewWithClient(&http.Client{Transport: transport}).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent)

	return &Resty{client: client, config: cfg}, nil
}

// NewRestyWithClient wraps an existing resty client.
func NewRestyWithClient(name string, client *resty.Client) *Resty {
	return &Resty{client: client, config: Config{Name: name, Driver: DriverResty}}
}

// Send performs the request. Any status code is a successful send.
func (r *Resty) Send(ctx context.Context, req *request.Materialized) (*Response, error) {
	rr := r.client.R().SetContext(ctx)
	if len(req.Header) > 0 {
		rr.SetHeaderMultiValues(req.Header)
	}
	if req.Body != nil {
		rr.SetBody(req.Body)
	}

	resp, err := rr.Execute(req.Method, req.URL)
	if err != nil {
		return nil, fmt.Errorf("channel %s: %w", r.config.Name, err)
	}

	body := resp.Body()
	if body == nil {
		body = []byte{}
	}
	return &Response{
		Body: body,
		Meta: &Metadata{
			StatusCode: resp.StatusCode(),
			Headers:    flattenHeaders(resp.Header()),
		},
	}, nil
}

// Name returns the configured channel name.
func (r *Resty) Name() string {
	return r.config.Name
}

// Close releases idle connections.
func (r *Resty) Close(_ context.Context) error {
	r.client.GetClient().CloseIdleConnections()
	return nil
}

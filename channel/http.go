package channel

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/net/http2"

	"github.com/kbukum/reqkit/request"
)

// HTTP is a live Channel backed by net/http.
type HTTP struct {
	client *http.Client
	config Config
}

// HTTPOption configures an HTTP channel.
type HTTPOption func(*HTTP)

// WithHTTPClient replaces the client built from Config.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(h *HTTP) { h.client = c }
}

// NewHTTP creates an HTTP channel from cfg.
func NewHTTP(cfg Config, opts ...HTTPOption) (*HTTP, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport, err := newTransport(cfg)
	if err != nil {
		return nil, err
	}

	h := &HTTP{
		client: &http.Client{Transport: transport, Timeout: cfg.Timeout},
		config: cfg,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// newTransport clones the default transport and applies TLS and HTTP/2
// settings.
func newTransport(cfg Config) (*http.Transport, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, fmt.Errorf("channel: %w", err)
	}
	if tlsCfg != nil {
		transport.TLSClientConfig = tlsCfg
	}

	if cfg.HTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			return nil, fmt.Errorf("channel: configure http2: %w", err)
		}
	}
	return transport, nil
}

// Send performs the request. Any status code is a successful send.
func (h *HTTP) Send(ctx context.Context, req *request.Materialized) (*Response, error) {
	httpReq, err := newHTTPRequest(ctx, req, h.config.UserAgent)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("channel %s: %w", h.config.Name, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("channel %s: read body: %w", h.config.Name, err)
	}
	if body == nil {
		body = []byte{}
	}

	return &Response{
		Body: body,
		Meta: &Metadata{
			StatusCode: resp.StatusCode,
			Headers:    flattenHeaders(resp.Header),
		},
	}, nil
}

func newHTTPRequest(ctx context.Context, req *request.Materialized, userAgent string) (*http.Request, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("channel: create request: %w", err)
	}
	httpReq.Header = req.Header.Clone()
	if httpReq.Header == nil {
		httpReq.Header = make(http.Header)
	}
	if httpReq.Header.Get("User-Agent") == "" && userAgent != "" {
		httpReq.Header.Set("User-Agent", userAgent)
	}
	return httpReq, nil
}

// Name returns the configured channel name.
func (h *HTTP) Name() string {
	return h.config.Name
}

// Config returns the effective configuration.
func (h *HTTP) Config() Config {
	return h.config
}

// Client returns the underlying *http.Client.
func (h *HTTP) Client() *http.Client {
	return h.client
}

// Close releases idle connections.
func (h *HTTP) Close(_ context.Context) error {
	h.client.CloseIdleConnections()
	return nil
}

package request

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/kbukum/reqkit/config"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	contentTypeJSON     = "application/json"
)

// Materialized is a concrete request ready to send.
type Materialized struct {
	Method string
	// URL is the composed URL, exactly as built.
	URL    string
	Header http.Header
	// Body is the JSON-encoded body, or nil when the Spec has none.
	Body []byte
}

// Clone returns a deep copy of m.
func (m *Materialized) Clone() *Materialized {
	if m == nil {
		return nil
	}
	c := *m
	c.Header = m.Header.Clone()
	if m.Body != nil {
		c.Body = append([]byte(nil), m.Body...)
	}
	return &c
}

// Materialize builds s against a snapshot of src taken now.
func (s Spec) Materialize(src config.Source) (*Materialized, error) {
	if src == nil {
		src = config.Default()
	}
	return Build(s, src.Snapshot())
}

// URL composes and validates the URL alone.
func (s Spec) URL(settings config.Settings) (string, error) {
	if err := s.validate(); err != nil {
		return "", err
	}
	raw := s.composeURL(settings)
	if _, err := url.Parse(raw); err != nil {
		return "", invalid("malformed url", raw, err)
	}
	// net/http drops everything after '#', so a fragment would silently
	// truncate the request.
	if strings.ContainsRune(raw, '#') {
		return "", invalid("url contains a fragment", raw, nil)
	}
	return raw, nil
}

// Build materializes spec with settings. It is deterministic: equal inputs
// give equal outputs.
func Build(spec Spec, settings config.Settings) (*Materialized, error) {
	rawURL, err := spec.URL(settings)
	if err != nil {
		return nil, err
	}

	header := make(http.Header, len(spec.headers)+2)
	for _, h := range spec.headers {
		header.Set(h.Name, h.Value)
	}
	if spec.requiresAuth && settings.HasAuthToken() {
		header.Set(HeaderAuthorization, settings.AuthToken)
	}

	var body []byte
	if len(spec.body) > 0 {
		body, err = json.Marshal(spec.body)
		if err != nil {
			return nil, invalid("encode body", rawURL, err)
		}
		if header.Get(HeaderContentType) == "" {
			header.Set(HeaderContentType, contentTypeJSON)
		}
	}

	return &Materialized{
		Method: string(spec.method),
		URL:    rawURL,
		Header: header,
		Body:   body,
	}, nil
}

func (s Spec) validate() error {
	switch {
	case s.endpoint == "":
		return invalid("endpoint is required", "", nil)
	case !s.scheme.valid():
		return invalid("unsupported scheme "+string(s.scheme), "", nil)
	case !s.method.valid():
		return invalid("unsupported method "+string(s.method), "", nil)
	}
	return nil
}

func (s Spec) composeURL(settings config.Settings) string {
	var b strings.Builder
	b.WriteString(string(s.scheme))
	b.WriteString("://")

	if host := s.host.resolve(settings.BaseHost); host != "" {
		b.WriteString(host)
		b.WriteByte('/')
	}
	if version := s.version.resolve(settings.DefaultVersion); version != "" {
		b.WriteString(version)
		b.WriteByte('/')
	}

	b.WriteString(s.endpoint)

	if s.pathExtension != "" {
		b.WriteByte('/')
		b.WriteString(s.pathExtension)
	}

	for i, p := range s.query {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(p.String())
	}
	return b.String()
}

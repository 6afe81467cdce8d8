package request

import "maps"

// override is a Spec field that may be left to the settings, set to a
// value, or explicitly suppressed (set to "").
type override struct {
	value string
	set   bool
}

func (o override) resolve(fallback string) string {
	if o.set {
		return o.value
	}
	return fallback
}

// Spec is an immutable description of an HTTP call. The zero value is not
// usable; create one with New.
type Spec struct {
	scheme        Scheme
	host          override
	version       override
	endpoint      string
	method        Method
	pathExtension string
	headers       []Header
	requiresAuth  bool
	query         []Param
	body          map[string]any
}

// Option configures a Spec.
type Option func(*Spec)

// New creates a Spec for endpoint. It never fails; problems such as an
// empty endpoint surface when the Spec is built.
func New(endpoint string, opts ...Option) Spec {
	s := Spec{
		scheme:       SchemeHTTPS,
		endpoint:     endpoint,
		method:       MethodGet,
		requiresAuth: true,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// With returns a copy of s with opts applied. s is unchanged.
func (s Spec) With(opts ...Option) Spec {
	c := s
	c.headers = append([]Header(nil), s.headers...)
	c.query = append([]Param(nil), s.query...)
	c.body = maps.Clone(s.body)
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithScheme sets the URL scheme. Defaults to https.
func WithScheme(scheme Scheme) Option {
	return func(s *Spec) { s.scheme = scheme }
}

// WithHost sets the host, overriding the settings' base host.
func WithHost(host string) Option {
	return func(s *Spec) { s.host = override{value: host, set: true} }
}

// WithoutHost omits the host segment even when the settings have one.
func WithoutHost() Option {
	return func(s *Spec) { s.host = override{set: true} }
}

// WithVersion sets the version segment, overriding the settings' default.
func WithVersion(v Version) Option {
	return func(s *Spec) { s.version = override{value: string(v), set: true} }
}

// WithoutVersion omits the version segment even when the settings have one.
func WithoutVersion() Option {
	return func(s *Spec) { s.version = override{set: true} }
}

// WithMethod sets the HTTP method. Defaults to GET.
func WithMethod(m Method) Option {
	return func(s *Spec) { s.method = m }
}

// WithPathExtension appends "/ext" after the endpoint.
func WithPathExtension(ext string) Option {
	return func(s *Spec) { s.pathExtension = ext }
}

// WithHeader adds a header. Later values for the same name win.
func WithHeader(name, value string) Option {
	return func(s *Spec) {
		s.headers = append(s.headers, Header{Name: name, Value: value})
	}
}

// WithHeaders adds headers in the given order.
func WithHeaders(headers ...Header) Option {
	return func(s *Spec) {
		s.headers = append(s.headers, headers...)
	}
}

// WithAuth sets whether the settings' auth token is injected. Defaults to true.
func WithAuth(required bool) Option {
	return func(s *Spec) { s.requiresAuth = required }
}

// WithoutAuth disables auth token injection, e.g. for a login call.
func WithoutAuth() Option {
	return WithAuth(false)
}

// WithQuery appends a query pair. Pairs keep their insertion order.
func WithQuery(key string, value any) Option {
	return func(s *Spec) {
		s.query = append(s.query, Param{Key: key, Value: value})
	}
}

// WithParams appends query pairs in order.
func WithParams(params ...Param) Option {
	return func(s *Spec) {
		s.query = append(s.query, params...)
	}
}

// WithBody sets one field of the JSON body.
func WithBody(key string, value any) Option {
	return func(s *Spec) {
		b := maps.Clone(s.body)
		if b == nil {
			b = make(map[string]any, 1)
		}
		b[key] = value
		s.body = b
	}
}

// WithBodyMap merges fields into the JSON body. body is copied.
func WithBodyMap(body map[string]any) Option {
	return func(s *Spec) {
		b := maps.Clone(s.body)
		if b == nil {
			b = make(map[string]any, len(body))
		}
		maps.Copy(b, body)
		s.body = b
	}
}

// Endpoint returns the endpoint path.
func (s Spec) Endpoint() string { return s.endpoint }

// Scheme returns the URL scheme.
func (s Spec) Scheme() Scheme { return s.scheme }

// Method returns the HTTP method.
func (s Spec) Method() Method { return s.method }

// PathExtension returns the path extension, or "".
func (s Spec) PathExtension() string { return s.pathExtension }

// RequiresAuth reports whether the auth token is injected.
func (s Spec) RequiresAuth() bool { return s.requiresAuth }

// Host returns the explicit host and whether one was set. A set, empty host
// means the host is suppressed.
func (s Spec) Host() (string, bool) { return s.host.value, s.host.set }

// Version returns the explicit version and whether one was set.
func (s Spec) Version() (Version, bool) { return Version(s.version.value), s.version.set }

// Headers returns a copy of the headers in insertion order.
func (s Spec) Headers() []Header { return append([]Header(nil), s.headers...) }

// Query returns a copy of the query pairs in insertion order.
func (s Spec) Query() []Param { return append([]Param(nil), s.query...) }

// Body returns a copy of the body fields.
func (s Spec) Body() map[string]any { return maps.Clone(s.body) }

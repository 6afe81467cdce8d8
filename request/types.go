package request

import "fmt"

// Scheme is the URL scheme of a request.
type Scheme string

const (
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"
)

func (s Scheme) valid() bool {
	return s == SchemeHTTP || s == SchemeHTTPS
}

// Method is an HTTP method supported by the builder.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

func (m Method) valid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
		return true
	}
	return false
}

// Version is an API version path segment, such as "v1".
type Version string

const V1 Version = "v1"

// Header is a single request header in the order it was added.
type Header struct {
	Name  string
	Value string
}

// Param is a single query pair. Value is rendered with fmt; nil renders
// as an empty value.
type Param struct {
	Key   string
	Value any
}

func (p Param) String() string {
	if p.Value == nil {
		return p.Key + "="
	}
	return p.Key + "=" + fmt.Sprint(p.Value)
}

package component

import "context"

// HealthStatus is a component's coarse health state.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusDegraded  HealthStatus = "degraded"
)

// Health is what a component reports about itself.
type Health struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// Healthy reports name as healthy.
func Healthy(name string) Health {
	return Health{Name: name, Status: StatusHealthy}
}

// Unhealthy reports name as unhealthy with a reason.
func Unhealthy(name, reason string) Health {
	return Health{Name: name, Status: StatusUnhealthy, Message: reason}
}

// OK reports whether the component can serve sends.
func (h Health) OK() bool {
	return h.Status == StatusHealthy || h.Status == StatusDegraded
}

// Component is anything the Registry starts, stops and probes: channels,
// recorders, telemetry exporters.
type Component interface {
	Name() string
	// Start acquires resources. A component that fails to start is not
	// stopped by the registry.
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
	Health(ctx context.Context) Health
}

// Description summarizes a component's configuration for debug logs.
type Description struct {
	// Name overrides Component.Name when set.
	Name string
	// Type is a short category such as "http-channel".
	Type    string
	Details string
}

// Describable is implemented by components that can summarize their
// configuration.
type Describable interface {
	Describe() Description
}

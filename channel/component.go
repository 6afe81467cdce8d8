package channel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/kbukum/reqkit/component"
	"github.com/kbukum/reqkit/logger"
	"github.com/kbukum/reqkit/request"
)

// ErrNotStarted is returned by Component.Send before Start.
var ErrNotStarted = errors.New("channel: component not started")

// Component wraps a live channel in the component lifecycle.
type Component struct {
	cfg  Config
	log  *logger.Logger
	mu   sync.RWMutex
	live Live
}

var (
	_ Channel               = (*Component)(nil)
	_ component.Component   = (*Component)(nil)
	_ component.Describable = (*Component)(nil)
)

// NewComponent creates a channel component. The channel is built by Start.
func NewComponent(cfg Config, log *logger.Logger) *Component {
	cfg.ApplyDefaults()
	if log == nil {
		log = logger.Get("channel")
	}
	return &Component{cfg: cfg, log: log.WithFields(logger.Fields(logger.FieldChannel, cfg.Name))}
}

func (c *Component) Name() string { return c.cfg.Name }

// Start builds the live channel.
func (c *Component) Start(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.live != nil {
		return nil
	}
	live, err := NewLive(c.cfg)
	if err != nil {
		return err
	}
	c.live = live
	c.log.Info("channel started", map[string]interface{}{
		"driver":  c.cfg.Driver,
		"timeout": c.cfg.Timeout.String(),
		"http2":   c.cfg.HTTP2,
	})
	return nil
}

// Stop closes idle connections and releases the channel.
func (c *Component) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.live == nil {
		return nil
	}
	err := c.live.Close(ctx)
	c.live = nil
	c.log.Info("channel stopped")
	return err
}

func (c *Component) Health(_ context.Context) component.Health {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.live == nil {
		return component.Unhealthy(c.cfg.Name, "not started")
	}
	return component.Healthy(c.cfg.Name)
}

func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    "Channel " + c.cfg.Name,
		Type:    "http-channel",
		Details: fmt.Sprintf("driver=%s timeout=%s http2=%t", c.cfg.Driver, c.cfg.Timeout, c.cfg.HTTP2),
	}
}

// Send delegates to the live channel.
func (c *Component) Send(ctx context.Context, req *request.Materialized) (*Response, error) {
	c.mu.RLock()
	live := c.live
	c.mu.RUnlock()
	if live == nil {
		return nil, ErrNotStarted
	}
	return live.Send(ctx, req)
}

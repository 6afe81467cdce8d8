package channel

import (
	"fmt"

	"github.com/kbukum/reqkit/provider"
)

// Live is a network-backed channel that holds connections.
type Live interface {
	Channel
	provider.Closeable
	Name() string
}

var (
	_ Live = (*HTTP)(nil)
	_ Live = (*Resty)(nil)
)

// NewLive creates the live channel selected by cfg.Driver.
func NewLive(cfg Config) (Live, error) {
	cfg.ApplyDefaults()
	var (
		live Live
		err  error
	)
	switch cfg.Driver {
	case DriverHTTP:
		live, err = NewHTTP(cfg)
	case DriverResty:
		live, err = NewResty(cfg)
	default:
		err = fmt.Errorf("channel: unsupported driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	return live, nil
}

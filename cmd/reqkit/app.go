package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/kbukum/reqkit/channel"
	"github.com/kbukum/reqkit/config"
	"github.com/kbukum/reqkit/observability"
)

// envPrefix scopes the envconfig overlay: REQKIT_BASE_HOST, REQKIT_AUTH_TOKEN ...
const envPrefix = "REQKIT"

type appConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Channel channel.Config `yaml:"channel" mapstructure:"channel"`
}

func (c *appConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	// stdout carries the response
	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	c.ServiceConfig.ApplyDefaults()
	c.Channel.ApplyDefaults()
}

func (c *appConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return c.Channel.Validate()
}

// overlayEnv applies non-empty REQKIT_* settings on top of the loaded ones.
func (c *appConfig) overlayEnv() error {
	env, err := config.SettingsFromEnv(envPrefix)
	if err != nil {
		return err
	}
	if env.HasBaseHost() {
		c.Client.BaseHost = env.BaseHost
	}
	if env.HasDefaultVersion() {
		c.Client.DefaultVersion = env.DefaultVersion
	}
	if env.HasAuthToken() {
		c.Client.AuthToken = env.AuthToken
	}
	return nil
}

// initTelemetry installs OTLP exporters when endpoint is set and returns a
// shutdown function. Metrics are always returned; without an exporter they
// record into the global no-op provider.
func initTelemetry(ctx context.Context, cfg *appConfig, endpoint string) (*observability.Metrics, func(context.Context) error, error) {
	shutdown := func(context.Context) error { return nil }

	if endpoint != "" {
		tc := observability.DefaultTracerConfig(cfg.Name)
		tc.Endpoint = endpoint
		tc.Environment = cfg.Environment
		tp, err := observability.InitTracer(ctx, tc)
		if err != nil {
			return nil, nil, fmt.Errorf("init tracer: %w", err)
		}

		mc := observability.DefaultMeterConfig(cfg.Name)
		mc.Endpoint = endpoint
		mc.Environment = cfg.Environment
		mp, err := observability.InitMeter(ctx, &mc)
		if err != nil {
			_ = tp.Shutdown(ctx)
			return nil, nil, fmt.Errorf("init meter: %w", err)
		}

		shutdown = func(ctx context.Context) error {
			return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
		}
	}

	metrics, err := observability.NewMetrics(observability.Meter(serviceName))
	if err != nil {
		_ = shutdown(ctx)
		return nil, nil, err
	}
	return metrics, shutdown, nil
}

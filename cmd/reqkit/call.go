package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/kbukum/reqkit/channel"
	"github.com/kbukum/reqkit/component"
	"github.com/kbukum/reqkit/config"
	"github.com/kbukum/reqkit/logger"
	"github.com/kbukum/reqkit/request"
	"github.com/kbukum/reqkit/transport"
)

type callOptions struct {
	method     string
	scheme     string
	host       string
	apiVersion string
	noVersion  bool
	path       string
	query      []string
	headers    []string
	data       []string
	noAuth     bool
	client     string
	timeout    time.Duration
	configFile string
	envFile    string
	otlp       string
	verbose    bool
	showStatus bool
}

func newCallCmd() *cobra.Command {
	o := &callOptions{}
	cmd := &cobra.Command{
		Use:   "call <endpoint>",
		Short: "Execute one request and print the decoded JSON response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd.Context(), args[0], o, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.method, "method", "X", string(request.MethodGet), "HTTP method (GET, POST, PUT, DELETE)")
	f.StringVar(&o.scheme, "scheme", string(request.SchemeHTTPS), "URL scheme (http, https)")
	f.StringVar(&o.host, "host", "", "Host, overriding the configured base host")
	f.StringVar(&o.apiVersion, "api-version", "", "API version segment, overriding the configured default")
	f.BoolVar(&o.noVersion, "no-version", false, "Omit the version segment")
	f.StringVar(&o.path, "path", "", "Path extension appended after the endpoint")
	f.StringArrayVarP(&o.query, "query", "q", nil, "Query parameter key=value, repeatable, kept in order")
	f.StringArrayVarP(&o.headers, "header", "H", nil, "Header name=value, repeatable")
	f.StringArrayVarP(&o.data, "data", "d", nil, "Body field key=value, repeatable; JSON scalars are decoded")
	f.BoolVar(&o.noAuth, "no-auth", false, "Do not send the configured auth token")
	f.StringVar(&o.client, "client", "", "Channel driver (http, resty)")
	f.DurationVar(&o.timeout, "timeout", 0, "Channel timeout")
	f.StringVar(&o.configFile, "config", "", "Config file path")
	f.StringVar(&o.envFile, "env-file", "", "Env file path")
	f.StringVar(&o.otlp, "otlp-endpoint", "", "OTLP HTTP endpoint (host:port) for traces and metrics")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Log exchanges at debug level")
	f.BoolVarP(&o.showStatus, "include", "i", false, "Print the status code before the body")
	return cmd
}

// spec builds the request description from the flags.
func (o *callOptions) spec(endpoint string) (request.Spec, error) {
	opts := []request.Option{
		request.WithScheme(request.Scheme(strings.ToLower(o.scheme))),
		request.WithMethod(request.Method(strings.ToUpper(o.method))),
		request.WithPathExtension(o.path),
		request.WithAuth(!o.noAuth),
	}
	if o.host != "" {
		opts = append(opts, request.WithHost(o.host))
	}
	switch {
	case o.noVersion:
		opts = append(opts, request.WithoutVersion())
	case o.apiVersion != "":
		opts = append(opts, request.WithVersion(request.Version(o.apiVersion)))
	}

	for _, kv := range o.query {
		k, v, err := splitPair(kv, "query")
		if err != nil {
			return request.Spec{}, err
		}
		opts = append(opts, request.WithQuery(k, v))
	}
	for _, kv := range o.headers {
		k, v, err := splitPair(kv, "header")
		if err != nil {
			return request.Spec{}, err
		}
		opts = append(opts, request.WithHeader(k, v))
	}
	for _, kv := range o.data {
		k, v, err := splitPair(kv, "data")
		if err != nil {
			return request.Spec{}, err
		}
		opts = append(opts, request.WithBody(k, scalar(v)))
	}
	return request.New(endpoint, opts...), nil
}

func splitPair(kv, flag string) (string, string, error) {
	k, v, ok := strings.Cut(kv, "=")
	if !ok || k == "" {
		return "", "", fmt.Errorf("--%s %q: expected key=value", flag, kv)
	}
	return k, v, nil
}

// scalar decodes JSON numbers, booleans and null; anything else stays a string.
func scalar(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	switch v.(type) {
	case float64, bool, nil:
		return v
	default:
		return s
	}
}

func (o *callOptions) loaderOptions() []config.LoaderOption {
	var opts []config.LoaderOption
	if o.configFile != "" {
		opts = append(opts, config.WithConfigFile(o.configFile))
	}
	if o.envFile != "" {
		opts = append(opts, config.WithEnvFile(o.envFile))
	}
	return opts
}

func loadAppConfig(o *callOptions) (*appConfig, error) {
	var cfg appConfig
	if err := config.LoadConfig(serviceName, &cfg, o.loaderOptions()...); err != nil {
		return nil, err
	}
	if err := cfg.overlayEnv(); err != nil {
		return nil, err
	}
	if o.client != "" {
		cfg.Channel.Driver = o.client
	}
	if o.timeout > 0 {
		cfg.Channel.Timeout = o.timeout
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func runCall(ctx context.Context, endpoint string, o *callOptions, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	spec, err := o.spec(endpoint)
	if err != nil {
		return err
	}

	cfg, err := loadAppConfig(o)
	if err != nil {
		return err
	}
	logger.Init(cfg.Logging)
	logger.RegisterDefaults("channel", "transport", "component")
	log := logger.WithComponent(serviceName)

	metrics, shutdown, err := initTelemetry(ctx, cfg, o.otlp)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn("telemetry shutdown failed", logger.ErrorFields("shutdown", err))
		}
	}()

	live := channel.NewComponent(cfg.Channel, logger.Get("channel"))
	registry := component.NewRegistry()
	if err := registry.Register(live); err != nil {
		return err
	}
	if err := registry.StartAll(ctx); err != nil {
		return err
	}
	defer func() { _ = registry.StopAll(context.Background()) }()
	if err := registry.Ready(ctx); err != nil {
		return err
	}
	for _, d := range registry.Describe() {
		log.Debug("component ready", logger.Fields("name", d.Name, "type", d.Type, "details", d.Details))
	}

	ch := channel.Instrument(live, cfg.Channel.Name,
		channel.WithLogging(logger.Get("channel")),
		channel.WithTracing(cfg.Name),
		channel.WithMetrics(metrics),
	)
	tr := transport.New(ch,
		transport.WithSettings(config.NewStore(cfg.Client)),
		transport.WithName(cfg.Name),
		transport.WithMetrics(metrics),
	)

	out := transport.Execute[transport.Optional[any]](ctx, tr, spec)
	payload, err := out.Get()
	if err != nil {
		return err
	}

	if o.showStatus {
		fmt.Fprintf(stderr, "HTTP %d\n", out.Metadata().StatusCode)
	}
	if !payload.Present {
		return nil
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(payload.Value)
}

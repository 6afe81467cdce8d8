package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/reqkit/channel"
	"github.com/kbukum/reqkit/config"
	"github.com/kbukum/reqkit/logger"
	"github.com/kbukum/reqkit/observability"
	"github.com/kbukum/reqkit/request"
)

var errNoChannel = errors.New("no channel configured")

// Transport materializes specs, sends them through a Channel and decodes
// the responses. It holds no per-call state and is safe for concurrent use.
type Transport struct {
	channel  channel.Channel
	settings config.Source
	log      *logger.Logger
	recorder Recorder
	metrics  *observability.Metrics
	name     string
}

// Option configures a Transport.
type Option func(*Transport)

// WithSettings sets the source read at every materialization. The default
// source has no values set.
func WithSettings(src config.Source) Option {
	return func(t *Transport) {
		if src != nil {
			t.settings = src
		}
	}
}

// WithLogger sets the logger used for failures.
func WithLogger(log *logger.Logger) Option {
	return func(t *Transport) {
		if log != nil {
			t.log = log
		}
	}
}

// WithRecorder sets the diagnostic recorder. The default logs exchanges at
// debug level.
func WithRecorder(r Recorder) Option {
	return func(t *Transport) {
		if r != nil {
			t.recorder = r
		}
	}
}

// WithMetrics records request count, duration and in-flight requests.
func WithMetrics(m *observability.Metrics) Option {
	return func(t *Transport) { t.metrics = m }
}

// WithName sets the name used in logs, spans and metrics.
func WithName(name string) Option {
	return func(t *Transport) {
		if name != "" {
			t.name = name
		}
	}
}

// New creates a Transport that sends through ch.
func New(ch channel.Channel, opts ...Option) *Transport {
	t := &Transport{
		channel:  ch,
		settings: config.Default(),
		name:     "transport",
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.log == nil {
		t.log = logger.Get(t.name)
	} else {
		t.log = t.log.WithComponent(t.name)
	}
	if t.recorder == nil {
		t.recorder = NewLogRecorder(t.log)
	}
	return t
}

// Name returns the transport name.
func (t *Transport) Name() string {
	return t.name
}

// Execute runs spec and decodes the response into target. The returned
// error, if any, is an *Error.
func (t *Transport) Execute(ctx context.Context, spec request.Spec, target any) error {
	_, err := t.Do(ctx, spec, target)
	return err
}

// Do is Execute that also returns the response metadata on success.
func (t *Transport) Do(ctx context.Context, spec request.Spec, target any) (*channel.Metadata, error) {
	id := uuid.NewString()
	ctx, span := observability.StartSpan(ctx, observability.SpanExecute)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrServiceName, t.name)
	observability.SetSpanAttribute(ctx, observability.AttrExecutionID, id)
	observability.SetSpanAttribute(ctx, observability.AttrHTTPMethod, string(spec.Method()))

	if t.metrics != nil {
		t.metrics.RecordRequestStart(ctx)
	}
	start := time.Now()

	meta, err := t.execute(ctx, id, spec, target, start)

	status := observability.StatusOK
	if err != nil {
		status = observability.StatusError
		observability.SetSpanAttribute(ctx, observability.AttrErrorKind, err.Kind.String())
		observability.SetSpanError(ctx, err)

		fields := logger.ErrorFields("execute", err)
		fields[logger.FieldExecutionID] = id
		fields[logger.FieldErrorKind] = err.Kind.String()
		fields[logger.FieldMethod] = string(spec.Method())
		fields["endpoint"] = spec.Endpoint()
		t.log.Warn("execution failed", fields)
	}
	if t.metrics != nil {
		t.metrics.RecordRequestEnd(ctx, t.name, string(spec.Method()), status, time.Since(start))
		if err != nil {
			t.metrics.RecordError(ctx, err.Kind.String(), t.name)
		}
	}

	if err != nil {
		return nil, err
	}
	return meta, nil
}

// execute is the Built -> Sent -> Decoded path of one execution.
func (t *Transport) execute(ctx context.Context, id string, spec request.Spec, target any, start time.Time) (*channel.Metadata, *Error) {
	req, err := spec.Materialize(t.settings)
	if err != nil {
		return nil, NewRequestConstructionError(err)
	}
	observability.SetSpanAttribute(ctx, observability.AttrHTTPURL, req.URL)

	if t.channel == nil {
		return nil, NewTransportError(errNoChannel)
	}
	resp, err := t.channel.Send(ctx, req)
	if err != nil {
		return nil, NewTransportError(err)
	}
	if resp == nil || resp.Body == nil {
		return nil, NewTransportError(nil)
	}

	d := Diagnostic{
		ExecutionID:    id,
		Transport:      t.name,
		Method:         req.Method,
		URL:            req.URL,
		RequestHeaders: req.Header.Clone(),
		ResponseBody:   resp.Body,
		Duration:       time.Since(start),
	}
	if resp.Meta != nil {
		d.StatusCode = resp.Meta.StatusCode
	}
	t.recorder.Record(ctx, d)

	if resp.Meta == nil {
		return nil, NewInvalidResponseError("missing response metadata")
	}
	if resp.Meta.StatusCode <= 0 {
		return nil, NewInvalidResponseError(fmt.Sprintf("invalid status code %d", resp.Meta.StatusCode))
	}
	observability.SetSpanAttribute(ctx, observability.AttrHTTPStatus, resp.Meta.StatusCode)

	if err := decode(resp.Body, target); err != nil {
		return nil, AsError(err)
	}
	return resp.Meta, nil
}

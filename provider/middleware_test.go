package provider_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/reqkit/logger"
	"github.com/kbukum/reqkit/observability"
	"github.com/kbukum/reqkit/provider"
)

func echo() provider.RequestResponse[string, string] {
	return provider.Func("echo", func(_ context.Context, in string) (string, error) {
		return "echo:" + in, nil
	})
}

func failing() provider.RequestResponse[string, string] {
	return provider.Func("fail", func(_ context.Context, _ string) (string, error) {
		return "", errors.New("provider failed")
	})
}

type orderTracker struct {
	inner provider.RequestResponse[string, string]
	tag   string
	order *[]string
}

func (o *orderTracker) Name() string                         { return o.inner.Name() }
func (o *orderTracker) IsAvailable(ctx context.Context) bool { return o.inner.IsAvailable(ctx) }
func (o *orderTracker) Execute(ctx context.Context, input string) (string, error) {
	*o.order = append(*o.order, o.tag+":in")
	out, err := o.inner.Execute(ctx, input)
	*o.order = append(*o.order, o.tag+":out")
	return out, err
}

func TestFunc(t *testing.T) {
	p := echo()
	assert.Equal(t, "echo", p.Name())
	assert.True(t, p.IsAvailable(context.Background()))

	out, err := p.Execute(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "echo:hi", out)
}

func TestChainEmpty(t *testing.T) {
	wrapped := provider.Chain[string, string]()(echo())
	out, err := wrapped.Execute(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "echo:hello", out)
	assert.Equal(t, "echo", wrapped.Name())
}

func TestWrapMatchesChain(t *testing.T) {
	var order []string
	mw := func(tag string) provider.Middleware[string, string] {
		return func(inner provider.RequestResponse[string, string]) provider.RequestResponse[string, string] {
			return &orderTracker{inner: inner, tag: tag, order: &order}
		}
	}

	_, err := provider.Wrap(echo(), mw("A"), mw("B")).Execute(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"A:in", "B:in", "B:out", "A:out"}, order)
	assert.Equal(t, "echo", provider.Wrap(echo()).Name())
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(tag string) provider.Middleware[string, string] {
		return func(inner provider.RequestResponse[string, string]) provider.RequestResponse[string, string] {
			return &orderTracker{inner: inner, tag: tag, order: &order}
		}
	}

	wrapped := provider.Chain(mw("A"), nil, mw("B"), mw("C"))(echo())
	_, err := wrapped.Execute(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"A:in", "B:in", "C:in", "C:out", "B:out", "A:out"}, order)
}

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: logger.FormatJSON}, "test", &buf)
	describe := func(in, out string) map[string]any {
		return map[string]any{"in": in, "out": out}
	}

	out, err := provider.WithLogging[string, string](log, describe)(echo()).Execute(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "echo:a", out)
	line := buf.String()
	assert.Contains(t, line, "call completed")
	assert.Contains(t, line, `"operation":"echo"`)
	assert.Contains(t, line, `"out":"echo:a"`)

	buf.Reset()
	_, err = provider.WithLogging[string, string](log, nil)(failing()).Execute(context.Background(), "a")
	require.Error(t, err)
	line = buf.String()
	assert.Contains(t, line, "call failed")
	assert.Contains(t, line, "provider failed")
	assert.True(t, strings.Contains(line, `"level":"warn"`))
}

func TestWithLoggingNilLogger(t *testing.T) {
	out, err := provider.WithLogging[string, string](nil, nil)(echo()).Execute(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "echo:a", out)
}

func TestWithTracing(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	describe := func(in, _ string) map[string]any {
		return map[string]any{"input": in}
	}
	_, err := provider.WithTracing[string, string]("reqkit", describe)(echo()).Execute(context.Background(), "a")
	require.NoError(t, err)
	_, err = provider.WithTracing[string, string]("reqkit", nil)(failing()).Execute(context.Background(), "a")
	require.Error(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "reqkit.echo", spans[0].Name())
	assert.Equal(t, trace.SpanKindClient, spans[0].SpanKind())
	var input string
	for _, kv := range spans[0].Attributes() {
		if kv.Key == "input" {
			input = kv.Value.AsString()
		}
	}
	assert.Equal(t, "a", input)
	assert.Equal(t, "reqkit.fail", spans[1].Name())
	assert.Len(t, spans[1].Events(), 1)
}

func TestWithMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	metrics, err := observability.NewMetrics(mp.Meter("test"))
	require.NoError(t, err)

	assert.Nil(t, provider.WithMetrics[string, string](nil, "send"))

	mw := provider.WithMetrics[string, string](metrics, "send")
	_, _ = mw(echo()).Execute(context.Background(), "a")
	_, _ = mw(failing()).Execute(context.Background(), "a")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counts := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					counts[m.Name] += dp.Value
				}
			}
		}
	}
	assert.Equal(t, int64(2), counts["reqkit.operation.total"])
	assert.Equal(t, int64(1), counts["reqkit.error.total"])
}

func TestMiddlewareDelegatesNameAndAvailability(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := observability.NewMetrics(mp.Meter("test"))
	require.NoError(t, err)

	wrapped := provider.Chain(
		provider.WithLogging[string, string](logger.Nop(), nil),
		provider.WithTracing[string, string]("svc", nil),
		provider.WithMetrics[string, string](metrics, "send"),
	)(echo())

	assert.Equal(t, "echo", wrapped.Name())
	assert.True(t, wrapped.IsAvailable(context.Background()))
}

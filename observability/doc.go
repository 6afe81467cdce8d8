// Package observability wires OpenTelemetry tracing and metrics for reqkit.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("reqkit"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanExecute)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("reqkit"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("reqkit"))
//	metrics.RecordRequestEnd(ctx, "reqkit", "GET", observability.StatusOK, d)
//
// Without Init* calls the global OpenTelemetry providers are no-ops, so the
// helpers are always safe to call.
package observability

// Package observability provides OpenTelemetry tracing and metrics
// integration for refgroup.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("my-service"))
//	reg := registry.New(registry.WithMetrics(metrics))
//
// All instrumentation is optional: a nil Metrics handle disables recording,
// and span attributes are only set when a span is already recording.
package observability

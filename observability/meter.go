package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/skillsenselab/refgroup/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service embedding the registry.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the metric instruments for registry resolution.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	resolveTotal    metric.Int64Counter
	resolveDuration metric.Float64Histogram
	resolveErrors   metric.Int64Counter
	bindTotal       metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	resolveTotal, err := meter.Int64Counter("refgroup.resolve.total",
		metric.WithDescription("Total number of reference resolutions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating refgroup.resolve.total counter: %w", err)
	}

	resolveDuration, err := meter.Float64Histogram("refgroup.resolve.duration",
		metric.WithDescription("Duration of reference resolutions in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating refgroup.resolve.duration histogram: %w", err)
	}

	resolveErrors, err := meter.Int64Counter("refgroup.resolve.errors",
		metric.WithDescription("Total failed reference resolutions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating refgroup.resolve.errors counter: %w", err)
	}

	bindTotal, err := meter.Int64Counter("refgroup.bind.total",
		metric.WithDescription("Total number of reference bindings"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating refgroup.bind.total counter: %w", err)
	}

	return &Metrics{
		resolveTotal:    resolveTotal,
		resolveDuration: resolveDuration,
		resolveErrors:   resolveErrors,
		bindTotal:       bindTotal,
	}, nil
}

// RecordResolve records a resolution attempt against a group.
func (m *Metrics) RecordResolve(ctx context.Context, group, name string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("group", group),
		attribute.String("ref", name),
	)
	m.resolveTotal.Add(ctx, 1, attrs)
	m.resolveDuration.Record(ctx, duration.Seconds(), attrs)
	if err != nil {
		m.resolveErrors.Add(ctx, 1, attrs)
	}
}

// RecordBind records a binding inserted into a group.
func (m *Metrics) RecordBind(ctx context.Context, group, name string) {
	if m == nil {
		return
	}
	m.bindTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("group", group),
		attribute.String("ref", name),
	))
}

package connector

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/arllen133/writeir/connector"
	meterName  = "github.com/arllen133/writeir/connector"
)

// Metrics holds the OpenTelemetry instruments an executor records against
// on every dispatched operation.
type Metrics struct {
	QueryCount    metric.Int64Counter
	QueryDuration metric.Float64Histogram
	QueryErrors   metric.Int64Counter
}

// ObservabilityConfig controls an executor's logging, tracing and metrics
// behavior. The zero value disables all three.
type ObservabilityConfig struct {
	Logger             *slog.Logger
	Tracer             trace.Tracer
	Meter              metric.Meter
	Metrics            *Metrics
	SlowQueryThreshold time.Duration
	LogQueries         bool
}

func defaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		SlowQueryThreshold: 200 * time.Millisecond,
	}
}

// ExecutorOption configures an executor at construction time.
type ExecutorOption func(*interpretingExecutor)

// WithLogger sets the structured logger used for operation and slow-query
// logging.
func WithLogger(logger *slog.Logger) ExecutorOption {
	return func(e *interpretingExecutor) { e.obs.Logger = logger }
}

// WithTracer sets an explicit tracer.
func WithTracer(tracer trace.Tracer) ExecutorOption {
	return func(e *interpretingExecutor) { e.obs.Tracer = tracer }
}

// WithDefaultTracer creates a tracer from the global TracerProvider.
func WithDefaultTracer() ExecutorOption {
	return func(e *interpretingExecutor) { e.obs.Tracer = otel.Tracer(tracerName) }
}

// WithMeter sets an explicit meter and initializes its instruments.
func WithMeter(meter metric.Meter) ExecutorOption {
	return func(e *interpretingExecutor) {
		e.obs.Meter = meter
		e.obs.Metrics = initMetrics(meter)
	}
}

// WithDefaultMeter creates a meter from the global MeterProvider.
func WithDefaultMeter() ExecutorOption {
	return func(e *interpretingExecutor) {
		meter := otel.Meter(meterName)
		e.obs.Meter = meter
		e.obs.Metrics = initMetrics(meter)
	}
}

// WithSlowQueryThreshold sets the duration past which an operation logs
// at Warn instead of Debug.
func WithSlowQueryThreshold(d time.Duration) ExecutorOption {
	return func(e *interpretingExecutor) { e.obs.SlowQueryThreshold = d }
}

// WithQueryLogging enables or disables Debug-level logging of every
// dispatched operation, not just slow or failed ones.
func WithQueryLogging(enabled bool) ExecutorOption {
	return func(e *interpretingExecutor) { e.obs.LogQueries = enabled }
}

func initMetrics(meter metric.Meter) *Metrics {
	queryCount, _ := meter.Int64Counter("writeir.connector.op.count",
		metric.WithDescription("Total number of dispatched write operations"),
		metric.WithUnit("{operation}"),
	)
	queryDuration, _ := meter.Float64Histogram("writeir.connector.op.duration",
		metric.WithDescription("Write operation duration in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000),
	)
	queryErrors, _ := meter.Int64Counter("writeir.connector.op.errors",
		metric.WithDescription("Total number of failed write operations"),
		metric.WithUnit("{error}"),
	)
	return &Metrics{QueryCount: queryCount, QueryDuration: queryDuration, QueryErrors: queryErrors}
}

type spanWrapper struct {
	span trace.Span
}

func (w spanWrapper) End() {
	if w.span != nil {
		w.span.End()
	}
}

func (w spanWrapper) RecordError(err error) {
	if w.span != nil {
		w.span.RecordError(err)
	}
}

func (w spanWrapper) SetStatus(code codes.Code, description string) {
	if w.span != nil {
		w.span.SetStatus(code, description)
	}
}

func (w spanWrapper) SetAttributes(kv ...attribute.KeyValue) {
	if w.span != nil {
		w.span.SetAttributes(kv...)
	}
}

func (e *interpretingExecutor) startSpan(ctx context.Context, name string) (context.Context, spanWrapper) {
	if e.obs.Tracer == nil {
		return ctx, spanWrapper{nil}
	}
	ctx, span := e.obs.Tracer.Start(ctx, name)
	return ctx, spanWrapper{span}
}

func (e *interpretingExecutor) recordMetrics(ctx context.Context, operation string, duration time.Duration, err error) {
	if e.obs.Metrics == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("db.operation", operation),
		attribute.String("db.system", e.conn.Name()),
	)
	e.obs.Metrics.QueryCount.Add(ctx, 1, attrs)
	e.obs.Metrics.QueryDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	if err != nil {
		e.obs.Metrics.QueryErrors.Add(ctx, 1, attrs)
	}
}

func (e *interpretingExecutor) logOperation(ctx context.Context, operation string, duration time.Duration, err error) {
	if e.obs.Logger == nil {
		return
	}

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.Duration("duration", duration),
	}

	if err != nil {
		e.obs.Logger.LogAttrs(ctx, slog.LevelError, "write operation failed",
			append(attrs, slog.String("error", err.Error()))...)
		return
	}

	if duration > e.obs.SlowQueryThreshold {
		e.obs.Logger.LogAttrs(ctx, slog.LevelWarn, "slow write operation", attrs...)
		return
	}

	if e.obs.LogQueries {
		e.obs.Logger.LogAttrs(ctx, slog.LevelDebug, "write operation dispatched", attrs...)
	}
}

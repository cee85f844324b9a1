package observability

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/medora/tenant-seeder/pkg/config"
)

const instrumentationName = "github.com/medora/tenant-seeder"

// SeedMetrics holds the counters a seeding run reports
type SeedMetrics struct {
	RowsInserted metric.Int64Counter
	RowsSkipped  metric.Int64Counter
	DDLSkipped   metric.Int64Counter
	UIDsAssigned metric.Int64Counter
}

// Setup initializes OpenTelemetry tracing and metrics. When telemetry is
// disabled it installs nothing and the global noop providers stay in place.
func Setup(ctx context.Context, cfg config.OTELConfig) (func(context.Context) error, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		_ = tracerProvider.Shutdown(ctx)
		return nil, err
	}
	// The run is short, so the reader exports on shutdown rather than on a long interval
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(10*time.Second))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)

	return func(ctx context.Context) error {
		return errors.Join(
			tracerProvider.Shutdown(ctx),
			meterProvider.Shutdown(ctx),
		)
	}, nil
}

// InitSeedMetrics creates the seeding counters on the global meter provider
func InitSeedMetrics() (*SeedMetrics, error) {
	meter := otel.Meter(instrumentationName)

	inserted, err := meter.Int64Counter(
		"seed.rows.inserted",
		metric.WithDescription("Reference rows inserted"),
	)
	if err != nil {
		return nil, err
	}

	skipped, err := meter.Int64Counter(
		"seed.rows.skipped",
		metric.WithDescription("Reference rows skipped because the natural key already exists"),
	)
	if err != nil {
		return nil, err
	}

	ddlSkipped, err := meter.Int64Counter(
		"seed.ddl.skipped",
		metric.WithDescription("Advisory schema changes that failed and were ignored"),
	)
	if err != nil {
		return nil, err
	}

	uids, err := meter.Int64Counter(
		"seed.patient_uid.assigned",
		metric.WithDescription("Patient UIDs written by insert or backfill"),
	)
	if err != nil {
		return nil, err
	}

	return &SeedMetrics{
		RowsInserted: inserted,
		RowsSkipped:  skipped,
		DDLSkipped:   ddlSkipped,
		UIDsAssigned: uids,
	}, nil
}

// RecordTally adds one category's result to the counters
func (m *SeedMetrics) RecordTally(ctx context.Context, table string, inserted, skipped int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("db.sql.table", table))
	m.RowsInserted.Add(ctx, int64(inserted), attrs)
	m.RowsSkipped.Add(ctx, int64(skipped), attrs)
}

// RecordDDLSkipped counts one ignored schema change
func (m *SeedMetrics) RecordDDLSkipped(ctx context.Context, op string) {
	if m == nil {
		return
	}
	m.DDLSkipped.Add(ctx, 1, metric.WithAttributes(attribute.String("seed.ddl.op", op)))
}

// RecordUIDs counts patient UIDs written
func (m *SeedMetrics) RecordUIDs(ctx context.Context, source string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.UIDsAssigned.Add(ctx, int64(n), metric.WithAttributes(attribute.String("seed.uid.source", source)))
}

// StartSpan starts a new trace span
func StartSpan(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := otel.Tracer(instrumentationName)
	return tracer.Start(ctx, spanName, trace.WithAttributes(attrs...))
}

// RecordError records an error in the span and marks it failed
func RecordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

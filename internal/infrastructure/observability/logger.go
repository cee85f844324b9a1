package observability

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.elastic.co/ecszerolog"
	"go.opentelemetry.io/otel/trace"

	"github.com/medora/tenant-seeder/pkg/config"
)

// InitLogger initializes the global zerolog logger. Logs go to w (stderr in
// the commands) so stdout stays reserved for the run summary.
func InitLogger(cfg config.LogConfig, serviceName string, w io.Writer) error {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Level, err)
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	switch cfg.Format {
	case "json":
		log.Logger = zerolog.New(w).
			With().
			Timestamp().
			Str("service", serviceName).
			Str("env", cfg.Env).
			Logger()
	case "ecs":
		log.Logger = ecszerolog.New(w).
			With().
			Str("service.name", serviceName).
			Str("service.environment", cfg.Env).
			Logger()
	case "console", "":
		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).With().
			Timestamp().
			Str("service", serviceName).
			Logger()
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q (want console, json or ecs)", cfg.Format)
	}
	return nil
}

// WithRun attaches a run-scoped logger to ctx and returns the generated run id
func WithRun(ctx context.Context, command, schema string) (context.Context, string) {
	runID := uuid.NewString()
	logger := log.With().
		Str("run_id", runID).
		Str("command", command).
		Str("schema", schema).
		Logger()
	return logger.WithContext(ctx), runID
}

// LoggerFromContext returns the run logger carried by ctx, or the global
// logger, enriched with trace context when a span is active
func LoggerFromContext(ctx context.Context) *zerolog.Logger {
	logger := *zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = log.Logger
	}

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		logger = logger.With().
			Str("trace_id", span.SpanContext().TraceID().String()).
			Str("span_id", span.SpanContext().SpanID().String()).
			Logger()
	}

	return &logger
}

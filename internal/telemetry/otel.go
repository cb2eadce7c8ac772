package telemetry

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/DanielPopoola/paypal-payment-gateway/internal/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// ShutdownFunc flushes and stops the tracer provider.
type ShutdownFunc func(ctx context.Context) error

// InitTracer installs a global OTLP/HTTP tracer provider. When tracing is
// disabled it installs nothing and returns a no-op shutdown.
func InitTracer(ctx context.Context, cfg config.TelemetryConfig, logger *slog.Logger) (ShutdownFunc, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(exporterOptions(cfg.Endpoint)...))
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String("1.0.0"),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("tracing initialized", "service", cfg.ServiceName, "endpoint", cfg.Endpoint)

	return tp.Shutdown, nil
}

// exporterOptions accepts either a full URL or a bare host:port.
func exporterOptions(raw string) []otlptracehttp.Option {
	endpoint := "localhost:4318"
	path := "/v1/traces"
	insecure := true

	switch {
	case raw == "":
	case strings.HasPrefix(raw, "http://"), strings.HasPrefix(raw, "https://"):
		if u, err := url.Parse(raw); err == nil {
			if u.Host != "" {
				endpoint = u.Host
			}
			if u.Path != "" {
				path = u.Path
			}
			insecure = u.Scheme == "http"
		}
	default:
		endpoint = raw
	}

	opts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithURLPath(path),
	}
	if insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}

package observability

import (
	"context"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/ajitpratap0/fakes/pkg/errors"
)

// TracingConfig contains tracing configuration
type TracingConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	SamplingRate   float64
	// Writer receives the exported spans; nil means stderr
	Writer      io.Writer
	PrettyPrint bool
}

// DefaultTracingConfig samples every span and exports to stderr.
func DefaultTracingConfig(version string) TracingConfig {
	return TracingConfig{
		ServiceName:    "fakes",
		ServiceVersion: version,
		Environment:    getEnv("ENVIRONMENT", "development"),
		SamplingRate:   1.0,
		PrettyPrint:    true,
	}
}

// InitTracing installs a tracer provider exporting spans as JSON. Call
// Shutdown before exit to flush them.
func InitTracing(config TracingConfig) error {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
			semconv.DeploymentEnvironmentKey.String(config.Environment),
		),
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to create resource")
	}

	w := config.Writer
	if w == nil {
		w = os.Stderr
	}
	opts := []stdouttrace.Option{stdouttrace.WithWriter(w)}
	if config.PrettyPrint {
		opts = append(opts, stdouttrace.WithPrettyPrint())
	}
	exporter, err := stdouttrace.New(opts...)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to create stdout exporter")
	}

	var sampler sdktrace.Sampler
	switch {
	case config.SamplingRate <= 0:
		sampler = sdktrace.NeverSample()
	case config.SamplingRate >= 1.0:
		sampler = sdktrace.AlwaysSample()
	default:
		sampler = sdktrace.TraceIDRatioBased(config.SamplingRate)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
		sdktrace.WithBatcher(exporter),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	setTracer(tp.Tracer(instrumentationName))

	return nil
}

// Shutdown flushes and stops the tracer provider installed by InitTracing.
// It is a no-op when tracing was never initialized.
func Shutdown(ctx context.Context) error {
	tp, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	if !ok {
		return nil
	}
	setTracer(nil)
	otel.SetTracerProvider(noop.NewTracerProvider())
	if err := tp.Shutdown(ctx); err != nil {
		return errors.Wrap(err, errors.ErrorTypeInternal, "failed to shutdown tracer")
	}
	return nil
}

// getEnv gets environment variable with default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

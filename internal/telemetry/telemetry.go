// Package telemetry exports ruinwalk's traces over OTLP/HTTP.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "ruinwalk"
	serviceVersion = "0.3.0"

	// apiKeyHeader carries Options.APIKey to the collector.
	apiKeyHeader = "x-api-key"
)

// Options configures the trace exporter.
type Options struct {
	// Endpoint is the collector URL, e.g. "http://localhost:4318".
	// When empty the exporter falls back to the OTEL_EXPORTER_OTLP_* variables.
	Endpoint string
	// APIKey is sent as the x-api-key header when set.
	APIKey string
	// InstanceID identifies this run and is attached to every span.
	InstanceID string
}

// exporterOptions turns Options into otlptracehttp settings.
func (o Options) exporterOptions() []otlptracehttp.Option {
	var opts []otlptracehttp.Option
	if o.Endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpointURL(o.Endpoint))
	}
	if o.APIKey != "" {
		opts = append(opts, otlptracehttp.WithHeaders(map[string]string{apiKeyHeader: o.APIKey}))
	}
	return opts
}

// Setup installs a global tracer provider that batches spans to the
// collector. The returned shutdown flushes pending spans and must be
// called on exit.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx, opts.exporterOptions()...)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("service.instance.id", opts.InstanceID),
			attribute.String("host.name", hostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
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
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns the tracer for one part of the game ("world", "game").
// Until Setup succeeds this is the global no-op tracer.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// NoopTracer returns a tracer that records nothing, for runs with
// telemetry disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer(serviceName + "/noop")
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}

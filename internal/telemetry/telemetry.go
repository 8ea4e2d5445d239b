// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "mastermind"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// Setup installs a global tracer provider exporting game spans over OTLP HTTP.
// main calls it only when MASTERMIND_TELEMETRY is set, after ConfigureHoneycomb
// has filled in the OTEL_EXPORTER_OTLP_* variables the exporter reads.
// Until then Tracer hands out the global no-op provider's tracers.
//
// The returned shutdown flushes buffered game spans and must run before exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create otlp exporter: %w", err)
	}

	// Not merged with resource.Default(): its schema URL conflicts with ours.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
		resource.WithOSType(),
		resource.WithProcessRuntimeVersion(),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// ConfigureHoneycomb points the OTLP exporter at Honeycomb using the given API key.
// The header is built here because an unexpanded variable reference in .env
// would otherwise be sent verbatim.
func ConfigureHoneycomb(apiKey, dataset string) {
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", honeycombEndpoint)
	if dataset == "" {
		dataset = serviceName
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}

// Tracer returns the tracer for a component, named "mastermind/<name>".
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// Package telemetry installs the process-wide OpenTelemetry tracer provider.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Shutdown flushes pending spans and releases the exporter.
type Shutdown func(context.Context) error

// Setup installs a tracer provider for exporter ("none" or "stdout").
// With "none" a no-op provider is installed and spans cost nothing.
func Setup(ctx context.Context, exporter string) (Shutdown, error) {
	return SetupWriter(ctx, exporter, os.Stdout)
}

// SetupWriter is Setup with the stdout exporter writing to w.
func SetupWriter(_ context.Context, exporter string, w io.Writer) (Shutdown, error) {
	switch exporter {
	case "", "none":
		otel.SetTracerProvider(noop.NewTracerProvider())
		return func(context.Context) error { return nil }, nil
	case "stdout":
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, fmt.Errorf("telemetry: create stdout exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
		otel.SetTracerProvider(tp)
		return tp.Shutdown, nil
	default:
		return nil, fmt.Errorf("telemetry: unknown exporter %q", exporter)
	}
}

package tracing

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/dlist/internal/config"
)

func TestNewProvider_Disabled(t *testing.T) {
	provider, err := NewProvider(config.Defaults().Tracing)
	require.NoError(t, err)
	require.False(t, provider.Enabled())

	_, span := provider.Tracer().Start(context.Background(), "test-span")
	require.False(t, span.SpanContext().IsValid(), "no-op spans carry no context")
	span.End()

	require.NoError(t, provider.Shutdown(context.Background()))
}

func TestNewProvider_FileExporterWritesSpans(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "traces", "traces.jsonl")

	provider, err := NewProvider(config.TracingConfig{
		Enabled:    true,
		Exporter:   ExporterFile,
		FilePath:   tracePath,
		SampleRate: 1.0,
	})
	require.NoError(t, err)
	require.True(t, provider.Enabled())

	_, span := provider.Tracer().Start(context.Background(), "test-span")
	sc := span.SpanContext()
	require.True(t, sc.IsValid())
	span.End()

	// Shutdown flushes the batcher and closes the file.
	require.NoError(t, provider.Shutdown(context.Background()))

	_, spans := readSpans(t, tracePath)
	require.Len(t, spans, 1)
	require.Equal(t, "test-span", spans[0].Name)
	require.Equal(t, sc.TraceID().String(), spans[0].SpanContext.TraceID)
}

func TestNewProvider_WithExporter(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	provider, err := NewProvider(config.TracingConfig{Enabled: true, Exporter: ExporterFile}, WithExporter(exp))
	require.NoError(t, err, "an injected exporter needs no file_path")
	defer provider.Shutdown(context.Background())

	_, span := provider.Tracer().Start(context.Background(), "injected")
	span.End()

	spans := exp.GetSpans()
	require.Len(t, spans, 1)
	require.Equal(t, "injected", spans[0].Name)
}

func TestNewProvider_FileExporterRequiresPath(t *testing.T) {
	_, err := NewProvider(config.TracingConfig{Enabled: true, Exporter: ExporterFile})
	require.ErrorContains(t, err, "file_path required")
}

func TestNewProvider_NoneExporterStillCreatesSpans(t *testing.T) {
	provider, err := NewProvider(config.TracingConfig{Enabled: true, Exporter: ExporterNone})
	require.NoError(t, err)
	defer provider.Shutdown(context.Background())

	_, span := provider.Tracer().Start(context.Background(), "correlated")
	defer span.End()
	require.True(t, span.SpanContext().IsValid())
}

func TestNewProvider_UnsupportedExporter(t *testing.T) {
	_, err := NewProvider(config.TracingConfig{Enabled: true, Exporter: "carrier-pigeon"})
	require.ErrorContains(t, err, "unsupported exporter type")
}

func TestGenerateTraceID(t *testing.T) {
	a, b := GenerateTraceID(), GenerateTraceID()
	require.Len(t, a, 32)
	require.NotEqual(t, a, b)
}

package tracing

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/dlist/internal/command"
)

// GenerateTraceID creates a random 32-character hex trace ID in W3C format.
// Commands get one when tracing is disabled so log lines still correlate.
func GenerateTraceID() string {
	bytes := make([]byte, 16)
	// crypto/rand.Read never returns an error on supported platforms
	_, _ = rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// StartReplay opens the root span for replaying a script.
func StartReplay(ctx context.Context, tracer trace.Tracer, path string, steps int) (context.Context, trace.Span) {
	return tracer.Start(ctx, SpanScriptReplay,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String(AttrScriptPath, path),
			attribute.Int(AttrScriptSteps, steps),
		),
	)
}

// Propagate attaches parent to cmd so its command span nests under parent.
// Without a valid span context, cmd gets traceID instead.
func Propagate(parent trace.Span, traceID string, cmd command.Command) {
	sc := parent.SpanContext()
	if sc.IsValid() {
		if setter, ok := cmd.(interface{ SetSpanContext(trace.SpanContext) }); ok {
			setter.SetSpanContext(sc)
			return
		}
	}
	if setter, ok := cmd.(interface{ SetTraceID(string) }); ok {
		setter.SetTraceID(traceID)
	}
}

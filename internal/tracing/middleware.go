package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/dlist/internal/command"
	"github.com/zjrosen/dlist/internal/processor"
)

// NewTracingMiddleware creates middleware that wraps each command in a span
// named after its type. The span records the command's identity, the
// addressed collection and the outcome. A nil tracer yields a pass-through.
func NewTracingMiddleware(tracer trace.Tracer) processor.Middleware {
	if tracer == nil {
		return func(next processor.CommandHandler) processor.CommandHandler {
			return next
		}
	}

	return func(next processor.CommandHandler) processor.CommandHandler {
		return processor.HandlerFunc(func(ctx context.Context, cmd command.Command) (*command.CommandResult, error) {
			ctx = restoreSpanContext(ctx, cmd)

			ctx, span := tracer.Start(ctx, fmt.Sprintf("%s%s", SpanPrefixCommand, cmd.Type()),
				trace.WithSpanKind(trace.SpanKindInternal),
			)
			defer span.End()

			span.SetAttributes(
				attribute.String(AttrCommandID, cmd.ID()),
				attribute.String(AttrCommandType, cmd.Type().String()),
				attribute.String(AttrCommandSource, cmd.Source().String()),
			)
			if t, ok := cmd.(command.Targeted); ok {
				span.SetAttributes(attribute.String(AttrCollectionTarget, t.CollectionTarget().String()))
			}
			if sc := span.SpanContext(); sc.IsValid() {
				if setter, ok := cmd.(interface{ SetTraceID(string) }); ok {
					setter.SetTraceID(sc.TraceID().String())
				}
			}

			result, err := next.Handle(ctx, cmd)

			switch {
			case err != nil:
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			case result != nil && !result.Success:
				if result.Error != nil {
					span.RecordError(result.Error)
					span.SetStatus(codes.Error, result.Error.Error())
				} else {
					span.SetStatus(codes.Error, "command failed without error details")
				}
			default:
				span.SetStatus(codes.Ok, "")
			}

			if result != nil {
				if out, ok := result.Data.(processor.Outcome); ok {
					span.SetAttributes(outcomeAttributes(cmd.Type(), out)...)
				}
			}

			return result, err
		})
	}
}

func outcomeAttributes(ct command.CommandType, out processor.Outcome) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String(AttrCollectionName, out.Collection.Name),
		attribute.Int(AttrCollectionLength, len(out.Collection.Values)),
	}
	if out.HasRemoved {
		attrs = append(attrs, attribute.Int64(AttrResultRemoved, out.Removed))
	}
	if ct == command.CmdSearch || ct == command.CmdRemoveValue {
		attrs = append(attrs, attribute.Bool(AttrResultFound, out.Found))
	}
	return attrs
}

// restoreSpanContext makes spans for cmd children of the span context it
// carries, if any.
func restoreSpanContext(ctx context.Context, cmd command.Command) context.Context {
	if hasSpanContext, ok := cmd.(interface{ SpanContext() trace.SpanContext }); ok {
		if sc := hasSpanContext.SpanContext(); sc.IsValid() {
			return trace.ContextWithRemoteSpanContext(ctx, sc)
		}
	}
	return ctx
}

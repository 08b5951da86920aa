package processor

import (
	"context"
	"time"

	"github.com/zjrosen/dlist/internal/command"
	"github.com/zjrosen/dlist/internal/log"
	"github.com/zjrosen/dlist/internal/pubsub"
)

// Middleware wraps a CommandHandler to add additional behavior.
// Middleware functions are composed using ChainMiddleware.
type Middleware func(CommandHandler) CommandHandler

// ChainMiddleware applies middlewares to a handler in reverse order.
// The first middleware in the list will be the outermost wrapper.
// For example: ChainMiddleware(handler, logging, slow, trace)
// Results in: logging(slow(trace(handler)))
func ChainMiddleware(handler CommandHandler, middlewares ...Middleware) CommandHandler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

func traceIDOf(cmd command.Command) string {
	if hasTraceID, ok := cmd.(interface{ TraceID() string }); ok {
		return hasTraceID.TraceID()
	}
	return ""
}

func targetOf(cmd command.Command) string {
	if t, ok := cmd.(command.Targeted); ok {
		return t.CollectionTarget().String()
	}
	return ""
}

// ===========================================================================
// Logging Middleware
// ===========================================================================

// NewLoggingMiddleware creates a middleware that logs command execution.
func NewLoggingMiddleware() Middleware {
	return func(next CommandHandler) CommandHandler {
		return HandlerFunc(func(ctx context.Context, cmd command.Command) (*command.CommandResult, error) {
			start := time.Now()
			result, err := next.Handle(ctx, cmd)
			duration := time.Since(start)

			fields := []any{
				"command_id", cmd.ID(),
				"command_type", cmd.Type().String(),
				"trace_id", traceIDOf(cmd),
				"source", cmd.Source().String(),
				"target", targetOf(cmd),
				"duration", duration,
			}

			switch {
			case err != nil:
				log.Error(log.CatCommand, "command failed", append(fields, "error", err.Error())...)
			case result != nil && !result.Success:
				errMsg := ""
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				log.Warn(log.CatCommand, "command completed with error result", append(fields, "error", errMsg)...)
			default:
				log.Debug(log.CatCommand, "command completed", fields...)
			}

			return result, err
		})
	}
}

// ===========================================================================
// Command Log Middleware
// ===========================================================================

// NewCommandLogMiddleware creates a middleware that publishes a CommandLogEvent
// for each processed command. A nil bus makes it a pass-through.
func NewCommandLogMiddleware(bus pubsub.Publisher[CommandLogEvent]) Middleware {
	return func(next CommandHandler) CommandHandler {
		return HandlerFunc(func(ctx context.Context, cmd command.Command) (*command.CommandResult, error) {
			if bus == nil {
				return next.Handle(ctx, cmd)
			}

			start := time.Now()
			result, err := next.Handle(ctx, cmd)

			event := CommandLogEvent{
				CommandID:   cmd.ID(),
				CommandType: cmd.Type(),
				Source:      cmd.Source(),
				Target:      targetOf(cmd),
				Success:     err == nil && result != nil && result.Success,
				Duration:    time.Since(start),
				Timestamp:   time.Now(),
				TraceID:     traceIDOf(cmd),
			}
			switch {
			case err != nil:
				event.Error = err
			case result != nil:
				event.Error = result.Error
			}
			bus.Publish(pubsub.CreatedEvent, event)

			return result, err
		})
	}
}

// ===========================================================================
// Slow Command Middleware
// ===========================================================================

// DefaultSlowThreshold is the default threshold for logging slow command warnings.
const DefaultSlowThreshold = 100 * time.Millisecond

// NewSlowCommandMiddleware creates a middleware that logs a warning when a
// handler exceeds threshold. Slow handlers are never aborted; a half-applied
// mutation would break the sequence. A zero threshold uses DefaultSlowThreshold.
func NewSlowCommandMiddleware(threshold time.Duration) Middleware {
	if threshold == 0 {
		threshold = DefaultSlowThreshold
	}

	return func(next CommandHandler) CommandHandler {
		return HandlerFunc(func(ctx context.Context, cmd command.Command) (*command.CommandResult, error) {
			start := time.Now()
			result, err := next.Handle(ctx, cmd)

			if duration := time.Since(start); duration > threshold {
				log.Warn(log.CatCommand, "handler exceeded time threshold",
					"command_id", cmd.ID(),
					"command_type", cmd.Type().String(),
					"trace_id", traceIDOf(cmd),
					"duration", duration,
					"threshold", threshold,
				)
			}

			return result, err
		})
	}
}

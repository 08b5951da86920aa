package cmd

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/dlist/internal/command"
	"github.com/zjrosen/dlist/internal/config"
	"github.com/zjrosen/dlist/internal/log"
	"github.com/zjrosen/dlist/internal/processor"
	"github.com/zjrosen/dlist/internal/pubsub"
	"github.com/zjrosen/dlist/internal/registry"
	"github.com/zjrosen/dlist/internal/script"
	"github.com/zjrosen/dlist/internal/tracing"
)

// newTracing builds the trace provider from the tracing config section.
func newTracing(c config.TracingConfig) (*tracing.Provider, error) {
	provider, err := tracing.NewProvider(c)
	if err != nil {
		return nil, fmt.Errorf("starting tracing: %w", err)
	}
	return provider, nil
}

func shutdownTracing(provider *tracing.Provider) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := provider.Shutdown(ctx); err != nil {
		log.ErrorErr(log.CatTrace, "tracing shutdown failed", err)
	}
}

// newProcessor wires the middleware stack shared by the shell and replay.
// Tracing runs outermost so the logging and command-log middlewares see the
// span's trace ID. commandLog may be nil.
func newProcessor(reg *registry.Registry, tracer trace.Tracer, commandLog *pubsub.Broker[processor.CommandLogEvent]) *processor.Processor {
	middlewares := []processor.Middleware{
		tracing.NewTracingMiddleware(tracer),
		processor.NewLoggingMiddleware(),
	}
	if commandLog != nil {
		middlewares = append(middlewares, processor.NewCommandLogMiddleware(commandLog))
	}
	middlewares = append(middlewares, processor.NewSlowCommandMiddleware(processor.DefaultSlowThreshold))
	return processor.New(reg, processor.WithMiddleware(middlewares...))
}

// seedCommands turns configured collections into create and add commands.
// base is the registry length before seeding.
func seedCommands(base int, cols []config.CollectionConfig) []command.Command {
	s := script.Script{Collections: make([]script.Collection, 0, len(cols))}
	for _, c := range cols {
		s.Collections = append(s.Collections, script.Collection{Name: c.Name, Values: c.Values})
	}
	return s.Seed(base, command.SourceConfig)
}

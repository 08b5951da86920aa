// Package processor executes commands against the registry.
// Processing is synchronous: Process returns once the command has been
// applied, and every handler runs inside the configured middleware chain.
package processor

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/zjrosen/dlist/internal/command"
	"github.com/zjrosen/dlist/internal/registry"
)

// ErrNoHandler is returned when no handler is registered for a command type.
var ErrNoHandler = errors.New("no handler registered")

// CommandHandler handles one command.
type CommandHandler interface {
	Handle(ctx context.Context, cmd command.Command) (*command.CommandResult, error)
}

// HandlerFunc adapts a function to CommandHandler.
type HandlerFunc func(ctx context.Context, cmd command.Command) (*command.CommandResult, error)

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, cmd command.Command) (*command.CommandResult, error) {
	return f(ctx, cmd)
}

// Option configures the Processor.
type Option func(*Processor)

// WithMiddleware adds middleware applied to every handler.
// The first middleware wraps outermost.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(p *Processor) {
		p.middlewares = append(p.middlewares, middlewares...)
	}
}

// Processor routes commands to the handlers for their type.
type Processor struct {
	reg         *registry.Registry
	handlers    map[command.CommandType]CommandHandler
	middlewares []Middleware

	processedCount atomic.Int64
	failedCount    atomic.Int64
}

// New creates a processor with handlers for every command type.
func New(reg *registry.Registry, opts ...Option) *Processor {
	p := &Processor{
		reg:      reg,
		handlers: make(map[command.CommandType]CommandHandler),
	}
	for _, opt := range opts {
		opt(p)
	}

	h := &handlers{reg: reg}
	p.RegisterHandler(command.CmdCreateCollection, HandlerFunc(h.createCollection))
	p.RegisterHandler(command.CmdRemoveCollection, HandlerFunc(h.removeCollection))
	p.RegisterHandler(command.CmdAddValue, HandlerFunc(h.addValue))
	for _, ct := range []command.CommandType{command.CmdInsertAtBeginning, command.CmdInsertAtEnd, command.CmdInsertAfter} {
		p.RegisterHandler(ct, HandlerFunc(h.insert))
	}
	for _, ct := range []command.CommandType{command.CmdDeleteFromBeginning, command.CmdDeleteFromEnd, command.CmdDeleteAfter, command.CmdRemoveValue} {
		p.RegisterHandler(ct, HandlerFunc(h.delete))
	}
	p.RegisterHandler(command.CmdUpdateValue, HandlerFunc(h.update))
	p.RegisterHandler(command.CmdSort, HandlerFunc(h.sort))
	p.RegisterHandler(command.CmdSearch, HandlerFunc(h.search))
	return p
}

// RegisterHandler registers handler for cmdType, wrapped in validation and
// the configured middleware. A later registration replaces an earlier one.
func (p *Processor) RegisterHandler(cmdType command.CommandType, handler CommandHandler) {
	p.handlers[cmdType] = ChainMiddleware(validating(handler), p.middlewares...)
}

// Registry returns the registry commands are applied to.
func (p *Processor) Registry() *registry.Registry {
	return p.reg
}

// Process executes cmd. Invalid commands and unknown types are returned as
// errors; domain conditions come back as a failed result.
func (p *Processor) Process(ctx context.Context, cmd command.Command) (*command.CommandResult, error) {
	handler, ok := p.handlers[cmd.Type()]
	if !ok {
		p.failedCount.Add(1)
		return nil, fmt.Errorf("%w for %s", ErrNoHandler, cmd.Type())
	}

	result, err := handler.Handle(ctx, cmd)
	p.processedCount.Add(1)
	if err != nil || result == nil || !result.Success {
		p.failedCount.Add(1)
	}
	return result, err
}

// ProcessedCount returns how many commands reached a handler.
func (p *Processor) ProcessedCount() int64 {
	return p.processedCount.Load()
}

// FailedCount returns how many commands errored or produced a failed result.
func (p *Processor) FailedCount() int64 {
	return p.failedCount.Load()
}

func validating(next CommandHandler) CommandHandler {
	return HandlerFunc(func(ctx context.Context, cmd command.Command) (*command.CommandResult, error) {
		if err := cmd.Validate(); err != nil {
			return nil, fmt.Errorf("validate %s: %w", cmd.Type(), err)
		}
		return next.Handle(ctx, cmd)
	})
}

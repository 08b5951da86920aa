// Package command defines the explicit, validated requests that drive the
// registry. Every sequence and registry operation has one command type; the
// processor routes commands to handlers by type.
package command

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// ErrInvalidCommand is returned by Validate when a command cannot be executed
// as specified.
var ErrInvalidCommand = errors.New("invalid command")

// Command represents an explicit intent entering the system.
type Command interface {
	// ID returns unique command identifier for tracing/correlation
	ID() string
	// Type returns the command type for routing to handlers
	Type() CommandType
	// Validate checks command preconditions before execution
	Validate() error
	// CreatedAt returns when command was created
	CreatedAt() time.Time
	// Source returns where the command came from
	Source() CommandSource
}

// CommandType identifies the kind of command for handler routing.
type CommandType string

const (
	// Registry commands

	CmdCreateCollection CommandType = "create_collection"
	CmdRemoveCollection CommandType = "remove_collection"
	CmdAddValue         CommandType = "add_value"

	// Sequence commands

	CmdInsertAtBeginning   CommandType = "insert_at_beginning"
	CmdInsertAtEnd         CommandType = "insert_at_end"
	CmdInsertAfter         CommandType = "insert_after"
	CmdDeleteFromBeginning CommandType = "delete_from_beginning"
	CmdDeleteFromEnd       CommandType = "delete_from_end"
	CmdDeleteAfter         CommandType = "delete_after"
	CmdRemoveValue         CommandType = "remove_value"
	CmdUpdateValue         CommandType = "update_value"
	CmdSort                CommandType = "sort"
	CmdSearch              CommandType = "search"
)

// AllTypes lists every command type in a stable order.
func AllTypes() []CommandType {
	return []CommandType{
		CmdCreateCollection, CmdRemoveCollection, CmdAddValue,
		CmdInsertAtBeginning, CmdInsertAtEnd, CmdInsertAfter,
		CmdDeleteFromBeginning, CmdDeleteFromEnd, CmdDeleteAfter,
		CmdRemoveValue, CmdUpdateValue, CmdSort, CmdSearch,
	}
}

// String returns the string representation of the CommandType.
func (ct CommandType) String() string {
	return string(ct)
}

// CommandSource identifies where the command originated.
type CommandSource string

const (
	// SourceUser indicates the command came from direct user input (TUI).
	SourceUser CommandSource = "user"
	// SourceScript indicates the command was decoded from a replay script.
	SourceScript CommandSource = "script"
	// SourceConfig indicates the command seeds collections from configuration.
	SourceConfig CommandSource = "config"
)

// String returns the string representation of the CommandSource.
func (cs CommandSource) String() string {
	return string(cs)
}

// BaseCommand provides common fields for all commands.
// Concrete command types embed it.
type BaseCommand struct {
	id          string
	cmdType     CommandType
	createdAt   time.Time
	source      CommandSource
	traceID     string
	spanContext trace.SpanContext
}

// NewBaseCommand creates a BaseCommand with a generated UUID and current timestamp.
func NewBaseCommand(cmdType CommandType, source CommandSource) BaseCommand {
	return BaseCommand{
		id:        uuid.New().String(),
		cmdType:   cmdType,
		createdAt: time.Now(),
		source:    source,
	}
}

// ID returns the unique command identifier.
func (b *BaseCommand) ID() string {
	return b.id
}

// Type returns the command type for handler routing.
func (b *BaseCommand) Type() CommandType {
	return b.cmdType
}

// CreatedAt returns when the command was created.
func (b *BaseCommand) CreatedAt() time.Time {
	return b.createdAt
}

// Source returns the origin of this command.
func (b *BaseCommand) Source() CommandSource {
	return b.source
}

// TraceID returns the correlation ID, preferring the span context when set.
func (b *BaseCommand) TraceID() string {
	if b.spanContext.IsValid() {
		return b.spanContext.TraceID().String()
	}
	return b.traceID
}

// SetTraceID sets the correlation ID for command tracing.
func (b *BaseCommand) SetTraceID(traceID string) {
	b.traceID = traceID
}

// SpanContext returns the OpenTelemetry span context for trace propagation.
func (b *BaseCommand) SpanContext() trace.SpanContext {
	return b.spanContext
}

// SetSpanContext sets the OpenTelemetry span context for trace propagation.
func (b *BaseCommand) SetSpanContext(sc trace.SpanContext) {
	b.spanContext = sc
}

// Validate is a no-op for BaseCommand. Concrete commands override it.
func (b *BaseCommand) Validate() error {
	return nil
}

// CommandResult contains the outcome of command execution.
type CommandResult struct {
	// Success is false when the operation hit a domain condition such as a
	// missing reference value; Error then carries that condition.
	Success bool
	Error   error
	// Data carries operation-specific output for the caller.
	Data any
}

// SuccessResult wraps data in a successful result.
func SuccessResult(data any) *CommandResult {
	return &CommandResult{Success: true, Data: data}
}

// ErrorResult wraps a domain failure. data may still describe the unchanged state.
func ErrorResult(err error, data any) *CommandResult {
	return &CommandResult{Success: false, Error: err, Data: data}
}

package processor

import (
	"time"

	"github.com/zjrosen/dlist/internal/command"
)

// CommandLogEvent is emitted after each command is processed. The TUI shows
// the latest ones in its history line and replay prints them in verbose mode.
type CommandLogEvent struct {
	CommandID   string
	CommandType command.CommandType
	Source      command.CommandSource
	// Target is the addressed collection, empty for registry-wide commands.
	Target  string
	Success bool
	// Error is the handler error or the failed result's error.
	Error     error
	Duration  time.Duration
	Timestamp time.Time
	// TraceID is empty when tracing is disabled.
	TraceID string
}

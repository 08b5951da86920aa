// Package render formats sequence snapshots, step diffs and command
// outcomes as plain text. Styling is left to the caller.
package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/zjrosen/dlist/internal/command"
	"github.com/zjrosen/dlist/internal/processor"
)

// Empty is shown for a sequence with no values.
const Empty = "(empty)"

// Values formats values as "[5 7 10]".
func Values(values []int64) string {
	return "[" + join(values, " ") + "]"
}

// Chain formats values with doubly-linked arrows, "5 ⇄ 7 ⇄ 10".
func Chain(values []int64) string {
	if len(values) == 0 {
		return Empty
	}
	return join(values, " ⇄ ")
}

func join(values []int64, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, sep)
}

// Command describes cmd in one line, e.g. `insert_after 7 after 5 on "demo"`.
func Command(cmd command.Command) string {
	var b strings.Builder
	b.WriteString(cmd.Type().String())

	switch c := cmd.(type) {
	case *command.CreateCollectionCommand:
		fmt.Fprintf(&b, " %q with %d", c.Name, c.Initial)
	case *command.RemoveCollectionCommand:
		fmt.Fprintf(&b, " #%d", c.Index)
	case *command.AddValueCommand:
		fmt.Fprintf(&b, " %d to #%d", c.Value, c.Index)
	case *command.InsertCommand:
		fmt.Fprintf(&b, " %d", c.Value)
		if c.Type() == command.CmdInsertAfter {
			fmt.Fprintf(&b, " after %d", c.After)
		}
	case *command.DeleteCommand:
		switch c.Type() {
		case command.CmdDeleteAfter:
			fmt.Fprintf(&b, " after %d", c.Ref)
		case command.CmdRemoveValue:
			fmt.Fprintf(&b, " %d", c.Ref)
		}
	case *command.UpdateCommand:
		fmt.Fprintf(&b, " %d to %d", c.Item, c.NewValue)
	case *command.SearchCommand:
		fmt.Fprintf(&b, " %d", c.Item)
	}

	if t, ok := cmd.(command.Targeted); ok {
		b.WriteString(" on ")
		b.WriteString(t.CollectionTarget().String())
	}
	return b.String()
}

// Outcome summarises a result: "ok", "ok, removed 7", "found", "not found",
// or "failed: <error>". A nil result renders as "failed".
func Outcome(cmdType command.CommandType, result *command.CommandResult) string {
	if result == nil {
		return "failed"
	}
	if !result.Success {
		if result.Error == nil {
			return "failed"
		}
		return "failed: " + rootCause(result.Error)
	}

	out, _ := result.Data.(processor.Outcome)
	switch {
	case cmdType == command.CmdSearch && out.Found:
		return "found"
	case cmdType == command.CmdSearch:
		return "not found"
	case cmdType == command.CmdRemoveValue && !out.Found:
		return "ok, nothing removed"
	case out.HasRemoved:
		return fmt.Sprintf("ok, removed %d", out.Removed)
	default:
		return "ok"
	}
}

// rootCause returns the innermost message, "element not found" rather than
// the whole wrapped chain.
func rootCause(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

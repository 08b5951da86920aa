package render

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/dlist/internal/command"
	"github.com/zjrosen/dlist/internal/processor"
	"github.com/zjrosen/dlist/internal/sequence"
)

func TestValues(t *testing.T) {
	require.Equal(t, "[]", Values(nil))
	require.Equal(t, "[5 -7 10]", Values([]int64{5, -7, 10}))
	require.Equal(t, sequence.New(5, -7, 10).String(), Values([]int64{5, -7, 10}))
}

func TestChain(t *testing.T) {
	require.Equal(t, Empty, Chain(nil))
	require.Equal(t, "1", Chain([]int64{1}))
	require.Equal(t, "5 ⇄ 7 ⇄ 10", Chain([]int64{5, 7, 10}))
}

func TestCommand(t *testing.T) {
	src := command.SourceScript
	demo := command.ByName("demo")

	tests := []struct {
		cmd  command.Command
		want string
	}{
		{command.NewCreateCollectionCommand(src, "demo", 5), `create_collection "demo" with 5`},
		{command.NewRemoveCollectionCommand(src, 1), "remove_collection #1"},
		{command.NewAddValueCommand(src, 0, 3), "add_value 3 to #0"},
		{command.NewInsertAtBeginning(src, demo, 1), `insert_at_beginning 1 on "demo"`},
		{command.NewInsertAfter(src, demo, 7, 5), `insert_after 7 after 5 on "demo"`},
		{command.NewDeleteFromEnd(src, command.ByIndex(2)), "delete_from_end on #2"},
		{command.NewDeleteAfter(src, demo, 5), `delete_after after 5 on "demo"`},
		{command.NewRemoveValue(src, demo, 9), `remove_value 9 on "demo"`},
		{command.NewUpdateValue(src, demo, 10, 1), `update_value 10 to 1 on "demo"`},
		{command.NewSort(src, demo), `sort on "demo"`},
		{command.NewSearch(src, demo, 4), `search 4 on "demo"`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want, Command(tt.cmd))
		})
	}
}

func TestOutcome(t *testing.T) {
	wrapped := fmt.Errorf("delete after 999: %w", sequence.ErrNotFound)

	tests := []struct {
		name    string
		cmdType command.CommandType
		result  *command.CommandResult
		want    string
	}{
		{"nil", command.CmdSort, nil, "failed"},
		{"failure", command.CmdDeleteAfter, command.ErrorResult(wrapped, nil), "failed: element not found"},
		{"failure without error", command.CmdSort, &command.CommandResult{}, "failed"},
		{"plain success", command.CmdSort, command.SuccessResult(processor.Outcome{}), "ok"},
		{"removed", command.CmdDeleteFromEnd, command.SuccessResult(processor.Outcome{Removed: 7, HasRemoved: true}), "ok, removed 7"},
		{"search hit", command.CmdSearch, command.SuccessResult(processor.Outcome{Found: true}), "found"},
		{"search miss", command.CmdSearch, command.SuccessResult(processor.Outcome{}), "not found"},
		{"remove miss", command.CmdRemoveValue, command.SuccessResult(processor.Outcome{}), "ok, nothing removed"},
		{"remove hit", command.CmdRemoveValue, command.SuccessResult(processor.Outcome{Found: true, Removed: 3, HasRemoved: true}), "ok, removed 3"},
		{"foreign data", command.CmdSort, command.SuccessResult("ok"), "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Outcome(tt.cmdType, tt.result))
		})
	}
}

func TestRootCause(t *testing.T) {
	base := errors.New("collection not found")
	require.Equal(t, "collection not found", rootCause(fmt.Errorf("a: %w", fmt.Errorf("b: %w", base))))
}

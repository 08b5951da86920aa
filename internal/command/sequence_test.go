package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTarget(t *testing.T) {
	require.NoError(t, ByIndex(0).Validate())
	require.NoError(t, ByName("demo").Validate())
	require.ErrorIs(t, ByIndex(-1).Validate(), ErrInvalidCommand)
	require.ErrorIs(t, Target{Index: -3}.Validate(), ErrInvalidCommand)

	require.Equal(t, "#2", ByIndex(2).String())
	require.Equal(t, `"demo"`, ByName("demo").String())
}

func TestConstructors_SetTypes(t *testing.T) {
	target := ByName("demo")
	tests := []struct {
		cmd  Command
		want CommandType
	}{
		{NewCreateCollectionCommand(SourceUser, "demo", 1), CmdCreateCollection},
		{NewRemoveCollectionCommand(SourceUser, 0), CmdRemoveCollection},
		{NewAddValueCommand(SourceUser, 0, 1), CmdAddValue},
		{NewInsertAtBeginning(SourceUser, target, 1), CmdInsertAtBeginning},
		{NewInsertAtEnd(SourceUser, target, 1), CmdInsertAtEnd},
		{NewInsertAfter(SourceUser, target, 1, 2), CmdInsertAfter},
		{NewDeleteFromBeginning(SourceUser, target), CmdDeleteFromBeginning},
		{NewDeleteFromEnd(SourceUser, target), CmdDeleteFromEnd},
		{NewDeleteAfter(SourceUser, target, 1), CmdDeleteAfter},
		{NewRemoveValue(SourceUser, target, 1), CmdRemoveValue},
		{NewUpdateValue(SourceUser, target, 1, 2), CmdUpdateValue},
		{NewSort(SourceUser, target), CmdSort},
		{NewSearch(SourceUser, target, 1), CmdSearch},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			require.Equal(t, tt.want, tt.cmd.Type())
			require.NoError(t, tt.cmd.Validate())
		})
	}
}

func TestSequenceCommands_ExposeTarget(t *testing.T) {
	cmd := Command(NewDeleteAfter(SourceScript, ByName("demo"), 5))

	targeted, ok := cmd.(Targeted)
	require.True(t, ok)
	require.Equal(t, ByName("demo"), targeted.CollectionTarget())

	_, ok = Command(NewAddValueCommand(SourceUser, 0, 1)).(Targeted)
	require.False(t, ok, "registry commands address by index only")
}

func TestValidate_RejectsBadTargets(t *testing.T) {
	bad := ByIndex(-1)
	for _, cmd := range []Command{
		NewInsertAfter(SourceUser, bad, 1, 2),
		NewDeleteFromEnd(SourceUser, bad),
		NewUpdateValue(SourceUser, bad, 1, 2),
		NewSort(SourceUser, bad),
		NewSearch(SourceUser, bad, 1),
	} {
		require.ErrorIs(t, cmd.Validate(), ErrInvalidCommand, "%s", cmd.Type())
	}
}

func TestValidate_RejectsMismatchedType(t *testing.T) {
	insert := &InsertCommand{SequenceCommand: SequenceCommand{BaseCommand: NewBaseCommand(CmdSort, SourceUser)}}
	require.ErrorIs(t, insert.Validate(), ErrInvalidCommand)

	del := &DeleteCommand{SequenceCommand: SequenceCommand{BaseCommand: NewBaseCommand(CmdInsertAtEnd, SourceUser)}}
	require.ErrorIs(t, del.Validate(), ErrInvalidCommand)
}

func TestCreateCollection_RequiresName(t *testing.T) {
	require.ErrorIs(t, NewCreateCollectionCommand(SourceUser, "  ", 1).Validate(), ErrInvalidCommand)
}

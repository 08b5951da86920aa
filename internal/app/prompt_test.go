package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/dlist/internal/command"
)

func TestOperationBuild(t *testing.T) {
	tests := []struct {
		name  string
		op    operation
		input string
		check func(t *testing.T, cmd command.Command)
	}{
		{"insert after", opInsertAfter, "7 5", func(t *testing.T, cmd command.Command) {
			c := cmd.(*command.InsertCommand)
			require.Equal(t, int64(7), c.Value)
			require.Equal(t, int64(5), c.After)
			require.Equal(t, command.ByIndex(2), c.Target)
		}},
		{"update", opUpdateValue, "10 -1", func(t *testing.T, cmd command.Command) {
			c := cmd.(*command.UpdateCommand)
			require.Equal(t, int64(10), c.Item)
			require.Equal(t, int64(-1), c.NewValue)
		}},
		{"create", opCreateCollection, "nums 4", func(t *testing.T, cmd command.Command) {
			c := cmd.(*command.CreateCollectionCommand)
			require.Equal(t, "nums", c.Name)
			require.Equal(t, int64(4), c.Initial)
		}},
		{"create with spaces in name", opCreateCollection, "  my  list ☃ 12 ", func(t *testing.T, cmd command.Command) {
			c := cmd.(*command.CreateCollectionCommand)
			require.Equal(t, "my  list ☃", c.Name)
			require.Equal(t, int64(12), c.Initial)
		}},
		{"sort takes no input", opSort, "", func(t *testing.T, cmd command.Command) {
			require.Equal(t, command.CmdSort, cmd.Type())
		}},
		{"remove collection", opRemoveCollection, "", func(t *testing.T, cmd command.Command) {
			require.Equal(t, 2, cmd.(*command.RemoveCollectionCommand).Index)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := tt.op.build(2, tt.input)
			require.NoError(t, err)
			require.Equal(t, command.SourceUser, cmd.Source())
			tt.check(t, cmd)
		})
	}
}

func TestOperationBuild_BadInput(t *testing.T) {
	_, err := opInsertAfter.build(0, "7")
	require.ErrorIs(t, err, ErrBadInput)

	_, err = opInsertAtEnd.build(0, "seven")
	require.ErrorIs(t, err, ErrBadInput)

	_, err = opCreateCollection.build(0, "nums x")
	require.ErrorIs(t, err, ErrBadInput)

	_, err = opCreateCollection.build(0, "nums")
	require.ErrorIs(t, err, ErrBadInput)

	_, err = opCreateCollection.build(0, "my list 4 five")
	require.ErrorIs(t, err, ErrBadInput)
}

func TestOperation_Metadata(t *testing.T) {
	require.False(t, opSort.needsInput())
	require.True(t, opSearch.needsInput())
	require.False(t, opCreateCollection.needsCollection())
	require.Equal(t, "value after", opInsertAfter.placeholder())
}

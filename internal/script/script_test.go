package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/dlist/internal/command"
)

const demoScript = `description: list walkthrough
collections:
  - name: demo
    values: [5, 10]
  - name: other
    values: [1]
steps:
  - op: insert_after
    collection: demo
    value: 7
    after: 5
  - op: delete_after
    collection: demo
    after: 5
  - op: update_value
    index: 0
    value: 10
    new_value: 1
  - op: sort
    collection: demo
  - op: search
    collection: other
    value: 1
`

func TestParse_Demo(t *testing.T) {
	s, err := Parse(strings.NewReader(demoScript))
	require.NoError(t, err)

	require.Equal(t, "list walkthrough", s.Description)
	require.Equal(t, []Collection{
		{Name: "demo", Values: []int64{5, 10}},
		{Name: "other", Values: []int64{1}},
	}, s.Collections)
	require.Len(t, s.Steps, 5)
	require.Equal(t, 8, s.Steps[0].Line)

	cmds, err := s.Commands(command.SourceScript)
	require.NoError(t, err)
	require.Len(t, cmds, 5)

	insert, ok := cmds[0].(*command.InsertCommand)
	require.True(t, ok)
	require.Equal(t, command.CmdInsertAfter, insert.Type())
	require.Equal(t, command.ByName("demo"), insert.Target)
	require.Equal(t, int64(7), insert.Value)
	require.Equal(t, int64(5), insert.After)
	require.Equal(t, command.SourceScript, insert.Source())

	update, ok := cmds[2].(*command.UpdateCommand)
	require.True(t, ok)
	require.Equal(t, command.ByIndex(0), update.Target)
	require.Equal(t, int64(10), update.Item)
	require.Equal(t, int64(1), update.NewValue)

	require.Equal(t, command.CmdSort, cmds[3].Type())
	require.Equal(t, command.CmdSearch, cmds[4].Type())
}

func TestSeed_CreatesThenAppends(t *testing.T) {
	s, err := Parse(strings.NewReader(demoScript))
	require.NoError(t, err)

	cmds := s.Seed(2, command.SourceScript)
	require.Len(t, cmds, 3)

	create, ok := cmds[0].(*command.CreateCollectionCommand)
	require.True(t, ok)
	require.Equal(t, "demo", create.Name)
	require.Equal(t, int64(5), create.Initial)

	add, ok := cmds[1].(*command.AddValueCommand)
	require.True(t, ok)
	require.Equal(t, 2, add.Index)
	require.Equal(t, int64(10), add.Value)

	require.Equal(t, command.CmdCreateCollection, cmds[2].Type())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown top-level field",
			input:   "colections: []\n",
			wantMsg: "field colections not found",
		},
		{
			name:    "unknown step field",
			input:   "steps:\n  - op: sort\n    collection: a\n    valeu: 3\n",
			wantMsg: "field valeu not found in step",
		},
		{
			name:    "unknown op",
			input:   "steps:\n  - op: shuffle\n    collection: a\n",
			wantErr: ErrUnknownOp,
			wantMsg: `line 2: "shuffle"`,
		},
		{
			name:    "missing after",
			input:   "steps:\n  - op: insert_after\n    collection: a\n    value: 1\n",
			wantErr: ErrInvalidStep,
			wantMsg: "insert_after needs after",
		},
		{
			name:    "missing target",
			input:   "steps:\n  - op: delete_from_end\n",
			wantErr: ErrInvalidStep,
			wantMsg: "collection or index",
		},
		{
			name:    "both targets",
			input:   "steps:\n  - op: sort\n    collection: a\n    index: 0\n",
			wantErr: ErrInvalidStep,
			wantMsg: "exclusive",
		},
		{
			name:    "update without new value",
			input:   "steps:\n  - op: update_value\n    collection: a\n    value: 1\n",
			wantErr: ErrInvalidStep,
			wantMsg: "new_value",
		},
		{
			name:    "collection without values",
			input:   "collections:\n  - name: empty\n",
			wantErr: ErrInvalidStep,
			wantMsg: "at least one value",
		},
		{
			name:    "step is not a mapping",
			input:   "steps:\n  - sort\n",
			wantMsg: "step must be a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			require.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParse_ZeroIsAValidArgument(t *testing.T) {
	s, err := Parse(strings.NewReader("steps:\n  - op: insert_after\n    collection: a\n    value: 0\n    after: 0\n"))
	require.NoError(t, err)

	cmds, err := s.Commands(command.SourceScript)
	require.NoError(t, err)
	insert := cmds[0].(*command.InsertCommand)
	require.Equal(t, int64(0), insert.Value)
	require.Equal(t, int64(0), insert.After)
}

func TestParse_Empty(t *testing.T) {
	s, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, s.Steps)
}

func TestStep_EveryOpDecodes(t *testing.T) {
	zero := int64(0)
	idx := 0
	for _, op := range command.AllTypes() {
		step := Step{Op: string(op), Collection: "a", Value: &zero, After: &zero, NewValue: &zero}
		if op == command.CmdRemoveCollection || op == command.CmdAddValue {
			step.Collection = ""
			step.Index = &idx
		}
		cmd, err := step.Command(command.SourceScript)
		require.NoError(t, err, op)
		require.Equal(t, op, cmd.Type())
		require.NoError(t, cmd.Validate(), op)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demoScript), 0o600))

	s, err := ParseFile(path)
	require.NoError(t, err)
	require.Len(t, s.Steps, 5)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

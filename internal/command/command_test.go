package command

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestNewBaseCommand(t *testing.T) {
	before := time.Now()
	cmd := NewBaseCommand(CmdSort, SourceUser)

	_, err := uuid.Parse(cmd.ID())
	require.NoError(t, err, "ID should be a UUID")
	require.Equal(t, CmdSort, cmd.Type())
	require.Equal(t, SourceUser, cmd.Source())
	require.False(t, cmd.CreatedAt().Before(before))
	require.NoError(t, cmd.Validate())
}

func TestBaseCommand_UniqueIDs(t *testing.T) {
	a := NewBaseCommand(CmdSort, SourceUser)
	b := NewBaseCommand(CmdSort, SourceUser)
	require.NotEqual(t, a.ID(), b.ID())
}

func TestBaseCommand_TraceIDPrefersSpanContext(t *testing.T) {
	cmd := NewBaseCommand(CmdSearch, SourceScript)
	cmd.SetTraceID("manual")
	require.Equal(t, "manual", cmd.TraceID())

	traceID := trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8},
	})
	cmd.SetSpanContext(sc)

	require.Equal(t, traceID.String(), cmd.TraceID())
	require.Equal(t, sc, cmd.SpanContext())
}

func TestAllTypes_Unique(t *testing.T) {
	seen := make(map[CommandType]bool)
	for _, ct := range AllTypes() {
		require.False(t, seen[ct], "duplicate type %s", ct)
		seen[ct] = true
	}
	require.Len(t, seen, 13)
}

func TestResults(t *testing.T) {
	ok := SuccessResult(42)
	require.True(t, ok.Success)
	require.Nil(t, ok.Error)
	require.Equal(t, 42, ok.Data)

	failed := ErrorResult(ErrInvalidCommand, "state")
	require.False(t, failed.Success)
	require.ErrorIs(t, failed.Error, ErrInvalidCommand)
	require.Equal(t, "state", failed.Data)
}

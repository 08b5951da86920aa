package processor

import (
	"context"
	"fmt"

	"github.com/zjrosen/dlist/internal/command"
	"github.com/zjrosen/dlist/internal/registry"
	"github.com/zjrosen/dlist/internal/sequence"
)

// Outcome is the Data of every result the processor returns.
type Outcome struct {
	// Index and Collection describe the addressed collection after the
	// command, or its unchanged state when the command failed. Index is -1
	// when no collection could be resolved.
	Index      int
	Collection registry.Snapshot

	// Removed holds the deleted value when HasRemoved is set.
	Removed    int64
	HasRemoved bool

	// Found reports search hits and whether remove_value removed anything.
	Found bool
}

type handlers struct {
	reg *registry.Registry
}

func unexpected(cmd command.Command) error {
	return fmt.Errorf("%w: unexpected %T for %s", command.ErrInvalidCommand, cmd, cmd.Type())
}

// resolve maps a target to a registry index.
func (h *handlers) resolve(t command.Target) (int, error) {
	if t.Name != "" {
		return h.reg.Find(t.Name)
	}
	return t.Index, nil
}

// finish builds the result for a sequence command given the operation error.
func (h *handlers) finish(index int, out Outcome, opErr error) *command.CommandResult {
	out.Index = index
	if snap, err := h.reg.At(index); err == nil {
		out.Collection = snap
	} else {
		out.Index = -1
	}
	if opErr != nil {
		return command.ErrorResult(opErr, out)
	}
	return command.SuccessResult(out)
}

// mutate applies fn to the sequence addressed by t.
func (h *handlers) mutate(cmd command.Command, t command.Target, fn func(*sequence.Sequence) error) *command.CommandResult {
	index, err := h.resolve(t)
	if err != nil {
		return command.ErrorResult(err, Outcome{Index: -1})
	}
	return h.finish(index, Outcome{}, h.reg.Apply(index, cmd.Type().String(), fn))
}

func (h *handlers) createCollection(_ context.Context, cmd command.Command) (*command.CommandResult, error) {
	c, ok := cmd.(*command.CreateCollectionCommand)
	if !ok {
		return nil, unexpected(cmd)
	}
	snap := h.reg.Create(c.Name, c.Initial)
	return command.SuccessResult(Outcome{Index: h.reg.Len() - 1, Collection: snap}), nil
}

func (h *handlers) removeCollection(_ context.Context, cmd command.Command) (*command.CommandResult, error) {
	c, ok := cmd.(*command.RemoveCollectionCommand)
	if !ok {
		return nil, unexpected(cmd)
	}
	snap, err := h.reg.At(c.Index)
	if err != nil {
		return command.ErrorResult(err, Outcome{Index: -1}), nil
	}
	if err := h.reg.Remove(c.Index); err != nil {
		return command.ErrorResult(err, Outcome{Index: -1}), nil
	}
	return command.SuccessResult(Outcome{Index: c.Index, Collection: snap}), nil
}

func (h *handlers) addValue(_ context.Context, cmd command.Command) (*command.CommandResult, error) {
	c, ok := cmd.(*command.AddValueCommand)
	if !ok {
		return nil, unexpected(cmd)
	}
	return h.finish(c.Index, Outcome{}, h.reg.AddValue(c.Index, c.Value)), nil
}

func (h *handlers) insert(_ context.Context, cmd command.Command) (*command.CommandResult, error) {
	c, ok := cmd.(*command.InsertCommand)
	if !ok {
		return nil, unexpected(cmd)
	}
	return h.mutate(c, c.Target, func(s *sequence.Sequence) error {
		switch c.Type() {
		case command.CmdInsertAtBeginning:
			s.InsertAtBeginning(c.Value)
		case command.CmdInsertAtEnd:
			s.InsertAtEnd(c.Value)
		default:
			return s.InsertAfter(c.Value, c.After)
		}
		return nil
	}), nil
}

func (h *handlers) delete(_ context.Context, cmd command.Command) (*command.CommandResult, error) {
	c, ok := cmd.(*command.DeleteCommand)
	if !ok {
		return nil, unexpected(cmd)
	}

	index, err := h.resolve(c.Target)
	if err != nil {
		return command.ErrorResult(err, Outcome{Index: -1}), nil
	}

	var out Outcome
	opErr := h.reg.Apply(index, c.Type().String(), func(s *sequence.Sequence) error {
		var (
			v   int64
			err error
		)
		switch c.Type() {
		case command.CmdDeleteFromBeginning:
			v, err = s.DeleteFromBeginning()
		case command.CmdDeleteFromEnd:
			v, err = s.DeleteFromEnd()
		case command.CmdDeleteAfter:
			v, err = s.DeleteAfter(c.Ref)
		default:
			out.Found = s.RemoveByValue(c.Ref)
			out.Removed, out.HasRemoved = c.Ref, out.Found
			return nil
		}
		if err != nil {
			return err
		}
		out.Removed, out.HasRemoved = v, true
		return nil
	})
	return h.finish(index, out, opErr), nil
}

func (h *handlers) update(_ context.Context, cmd command.Command) (*command.CommandResult, error) {
	c, ok := cmd.(*command.UpdateCommand)
	if !ok {
		return nil, unexpected(cmd)
	}
	return h.mutate(c, c.Target, func(s *sequence.Sequence) error {
		return s.Update(c.Item, c.NewValue)
	}), nil
}

func (h *handlers) sort(_ context.Context, cmd command.Command) (*command.CommandResult, error) {
	c, ok := cmd.(*command.SortCommand)
	if !ok {
		return nil, unexpected(cmd)
	}
	return h.mutate(c, c.Target, func(s *sequence.Sequence) error {
		s.Sort()
		return nil
	}), nil
}

func (h *handlers) search(_ context.Context, cmd command.Command) (*command.CommandResult, error) {
	c, ok := cmd.(*command.SearchCommand)
	if !ok {
		return nil, unexpected(cmd)
	}
	index, err := h.resolve(c.Target)
	if err != nil {
		return command.ErrorResult(err, Outcome{Index: -1}), nil
	}

	var out Outcome
	viewErr := h.reg.View(index, func(s *sequence.Sequence) error {
		_, out.Found = s.Search(c.Item)
		return nil
	})
	return h.finish(index, out, viewErr), nil
}

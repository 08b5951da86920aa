package command

import (
	"fmt"
	"strconv"
)

// Target addresses a collection by name, or by index when Name is empty.
type Target struct {
	Index int
	Name  string
}

// ByIndex addresses the collection at index.
func ByIndex(index int) Target {
	return Target{Index: index}
}

// ByName addresses the first collection named name.
func ByName(name string) Target {
	return Target{Index: -1, Name: name}
}

// Validate rejects a target that addresses nothing.
func (t Target) Validate() error {
	if t.Name == "" && t.Index < 0 {
		return fmt.Errorf("%w: target needs a name or a non-negative index", ErrInvalidCommand)
	}
	return nil
}

func (t Target) String() string {
	if t.Name != "" {
		return strconv.Quote(t.Name)
	}
	return "#" + strconv.Itoa(t.Index)
}

// Targeted is implemented by commands that operate on one collection.
type Targeted interface {
	CollectionTarget() Target
}

// SequenceCommand is the common part of every command addressing one sequence.
type SequenceCommand struct {
	BaseCommand
	Target Target
}

// CollectionTarget returns the addressed collection.
func (c *SequenceCommand) CollectionTarget() Target {
	return c.Target
}

// Validate checks the target.
func (c *SequenceCommand) Validate() error {
	return c.Target.Validate()
}

// InsertCommand inserts Value at the beginning, at the end, or after the
// first occurrence of After, depending on its type.
type InsertCommand struct {
	SequenceCommand
	Value int64
	After int64
}

func newInsert(cmdType CommandType, source CommandSource, target Target, value, after int64) *InsertCommand {
	return &InsertCommand{
		SequenceCommand: SequenceCommand{BaseCommand: NewBaseCommand(cmdType, source), Target: target},
		Value:           value,
		After:           after,
	}
}

// NewInsertAtBeginning creates a command inserting value before the head.
func NewInsertAtBeginning(source CommandSource, target Target, value int64) *InsertCommand {
	return newInsert(CmdInsertAtBeginning, source, target, value, 0)
}

// NewInsertAtEnd creates a command inserting value after the tail.
func NewInsertAtEnd(source CommandSource, target Target, value int64) *InsertCommand {
	return newInsert(CmdInsertAtEnd, source, target, value, 0)
}

// NewInsertAfter creates a command inserting value after the first occurrence of after.
func NewInsertAfter(source CommandSource, target Target, value, after int64) *InsertCommand {
	return newInsert(CmdInsertAfter, source, target, value, after)
}

// Validate checks the target and that the type is an insert.
func (c *InsertCommand) Validate() error {
	switch c.Type() {
	case CmdInsertAtBeginning, CmdInsertAtEnd, CmdInsertAfter:
	default:
		return fmt.Errorf("%w: %s is not an insert", ErrInvalidCommand, c.Type())
	}
	return c.Target.Validate()
}

// DeleteCommand removes the head, the tail, the node after Ref, or the first
// node holding Ref, depending on its type.
type DeleteCommand struct {
	SequenceCommand
	Ref int64
}

func newDelete(cmdType CommandType, source CommandSource, target Target, ref int64) *DeleteCommand {
	return &DeleteCommand{
		SequenceCommand: SequenceCommand{BaseCommand: NewBaseCommand(cmdType, source), Target: target},
		Ref:             ref,
	}
}

// NewDeleteFromBeginning creates a command removing the head.
func NewDeleteFromBeginning(source CommandSource, target Target) *DeleteCommand {
	return newDelete(CmdDeleteFromBeginning, source, target, 0)
}

// NewDeleteFromEnd creates a command removing the tail.
func NewDeleteFromEnd(source CommandSource, target Target) *DeleteCommand {
	return newDelete(CmdDeleteFromEnd, source, target, 0)
}

// NewDeleteAfter creates a command removing the node that follows ref.
func NewDeleteAfter(source CommandSource, target Target, ref int64) *DeleteCommand {
	return newDelete(CmdDeleteAfter, source, target, ref)
}

// NewRemoveValue creates a command removing the first node holding value, if any.
func NewRemoveValue(source CommandSource, target Target, value int64) *DeleteCommand {
	return newDelete(CmdRemoveValue, source, target, value)
}

// Validate checks the target and that the type is a delete.
func (c *DeleteCommand) Validate() error {
	switch c.Type() {
	case CmdDeleteFromBeginning, CmdDeleteFromEnd, CmdDeleteAfter, CmdRemoveValue:
	default:
		return fmt.Errorf("%w: %s is not a delete", ErrInvalidCommand, c.Type())
	}
	return c.Target.Validate()
}

// UpdateCommand overwrites the first node holding Item with NewValue.
type UpdateCommand struct {
	SequenceCommand
	Item     int64
	NewValue int64
}

// NewUpdateValue creates an update command.
func NewUpdateValue(source CommandSource, target Target, item, newValue int64) *UpdateCommand {
	return &UpdateCommand{
		SequenceCommand: SequenceCommand{BaseCommand: NewBaseCommand(CmdUpdateValue, source), Target: target},
		Item:            item,
		NewValue:        newValue,
	}
}

// SortCommand sorts a sequence in place.
type SortCommand struct {
	SequenceCommand
}

// NewSort creates a sort command.
func NewSort(source CommandSource, target Target) *SortCommand {
	return &SortCommand{
		SequenceCommand: SequenceCommand{BaseCommand: NewBaseCommand(CmdSort, source), Target: target},
	}
}

// SearchCommand looks up the first node holding Item without mutating.
type SearchCommand struct {
	SequenceCommand
	Item int64
}

// NewSearch creates a search command.
func NewSearch(source CommandSource, target Target, item int64) *SearchCommand {
	return &SearchCommand{
		SequenceCommand: SequenceCommand{BaseCommand: NewBaseCommand(CmdSearch, source), Target: target},
		Item:            item,
	}
}

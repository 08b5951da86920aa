package command

import (
	"fmt"
	"strings"
)

// CreateCollectionCommand creates a named sequence seeded with one value.
type CreateCollectionCommand struct {
	BaseCommand
	Name    string
	Initial int64
}

// NewCreateCollectionCommand creates a command for a new named sequence.
func NewCreateCollectionCommand(source CommandSource, name string, initial int64) *CreateCollectionCommand {
	return &CreateCollectionCommand{
		BaseCommand: NewBaseCommand(CmdCreateCollection, source),
		Name:        name,
		Initial:     initial,
	}
}

// Validate requires a non-blank name.
func (c *CreateCollectionCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: collection name is required", ErrInvalidCommand)
	}
	return nil
}

// RemoveCollectionCommand drops the collection at Index.
type RemoveCollectionCommand struct {
	BaseCommand
	Index int
}

// NewRemoveCollectionCommand creates a command removing the collection at index.
func NewRemoveCollectionCommand(source CommandSource, index int) *RemoveCollectionCommand {
	return &RemoveCollectionCommand{
		BaseCommand: NewBaseCommand(CmdRemoveCollection, source),
		Index:       index,
	}
}

// AddValueCommand appends Value to the collection at Index.
type AddValueCommand struct {
	BaseCommand
	Index int
	Value int64
}

// NewAddValueCommand creates a command appending value to the collection at index.
func NewAddValueCommand(source CommandSource, index int, value int64) *AddValueCommand {
	return &AddValueCommand{
		BaseCommand: NewBaseCommand(CmdAddValue, source),
		Index:       index,
		Value:       value,
	}
}

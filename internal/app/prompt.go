package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/zjrosen/dlist/internal/command"
)

// ErrBadInput is returned when prompt input does not match the operation's arguments.
var ErrBadInput = errors.New("bad input")

// operation is one key-bound command and the arguments it prompts for.
type operation struct {
	cmdType command.CommandType
	args    []string
}

var (
	opInsertAtBeginning   = operation{command.CmdInsertAtBeginning, []string{"value"}}
	opInsertAtEnd         = operation{command.CmdInsertAtEnd, []string{"value"}}
	opInsertAfter         = operation{command.CmdInsertAfter, []string{"value", "after"}}
	opDeleteFromBeginning = operation{cmdType: command.CmdDeleteFromBeginning}
	opDeleteFromEnd       = operation{cmdType: command.CmdDeleteFromEnd}
	opDeleteAfter         = operation{command.CmdDeleteAfter, []string{"after"}}
	opRemoveValue         = operation{command.CmdRemoveValue, []string{"value"}}
	opUpdateValue         = operation{command.CmdUpdateValue, []string{"item", "new value"}}
	opSort                = operation{cmdType: command.CmdSort}
	opSearch              = operation{command.CmdSearch, []string{"value"}}
	opCreateCollection    = operation{command.CmdCreateCollection, []string{"name", "initial"}}
	opRemoveCollection    = operation{cmdType: command.CmdRemoveCollection}
)

func (op operation) needsInput() bool {
	return len(op.args) > 0
}

// needsCollection reports whether the operation acts on the selected collection.
func (op operation) needsCollection() bool {
	return op.cmdType != command.CmdCreateCollection
}

func (op operation) placeholder() string {
	return strings.Join(op.args, " ")
}

// build parses input into the operation's arguments and returns the command
// for the collection at index.
func (op operation) build(index int, input string) (command.Command, error) {
	src := command.SourceUser
	if op.cmdType == command.CmdCreateCollection {
		name, initial, err := op.splitNamed(input)
		if err != nil {
			return nil, err
		}
		return command.NewCreateCollectionCommand(src, name, initial), nil
	}

	fields := strings.Fields(input)
	if len(fields) != len(op.args) {
		return nil, fmt.Errorf("%s expects %q: %w", op.cmdType, op.placeholder(), ErrBadInput)
	}

	nums := make([]int64, len(fields))
	for i, f := range fields {
		v, err := parseValue(f)
		if err != nil {
			return nil, err
		}
		nums[i] = v
	}

	target := command.ByIndex(index)
	switch op.cmdType {
	case command.CmdInsertAtBeginning:
		return command.NewInsertAtBeginning(src, target, nums[0]), nil
	case command.CmdInsertAtEnd:
		return command.NewInsertAtEnd(src, target, nums[0]), nil
	case command.CmdInsertAfter:
		return command.NewInsertAfter(src, target, nums[0], nums[1]), nil
	case command.CmdDeleteFromBeginning:
		return command.NewDeleteFromBeginning(src, target), nil
	case command.CmdDeleteFromEnd:
		return command.NewDeleteFromEnd(src, target), nil
	case command.CmdDeleteAfter:
		return command.NewDeleteAfter(src, target, nums[0]), nil
	case command.CmdRemoveValue:
		return command.NewRemoveValue(src, target, nums[0]), nil
	case command.CmdUpdateValue:
		return command.NewUpdateValue(src, target, nums[0], nums[1]), nil
	case command.CmdSort:
		return command.NewSort(src, target), nil
	case command.CmdSearch:
		return command.NewSearch(src, target, nums[0]), nil
	case command.CmdRemoveCollection:
		return command.NewRemoveCollectionCommand(src, index), nil
	}
	return nil, fmt.Errorf("%s: %w", op.cmdType, command.ErrInvalidCommand)
}

// splitNamed reads "<name> <value>" where the name may itself contain spaces.
// The last field is the value; everything before it is the name.
func (op operation) splitNamed(input string) (string, int64, error) {
	input = strings.TrimSpace(input)
	cut := strings.LastIndexFunc(input, unicode.IsSpace)
	if cut < 0 {
		return "", 0, fmt.Errorf("%s expects %q: %w", op.cmdType, op.placeholder(), ErrBadInput)
	}
	v, err := parseValue(input[cut+1:])
	if err != nil {
		return "", 0, err
	}
	return strings.TrimSpace(input[:cut]), v, nil
}

func parseValue(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", s, ErrBadInput)
	}
	return v, nil
}

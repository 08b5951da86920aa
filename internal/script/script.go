// Package script decodes YAML operation scripts into commands.
//
// A script seeds collections and then lists steps, one operation each:
//
//	description: insert and trim
//	collections:
//	  - name: demo
//	    values: [5]
//	steps:
//	  - op: insert_at_end
//	    collection: demo
//	    value: 10
//	  - op: delete_after
//	    collection: demo
//	    after: 5
//
// Steps address a collection by name (collection) or by position (index).
// Unknown keys, unknown ops and missing arguments are decode errors.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/dlist/internal/command"
	"github.com/zjrosen/dlist/internal/log"
)

var (
	// ErrUnknownOp is returned for a step whose op names no command type.
	ErrUnknownOp = errors.New("unknown op")
	// ErrInvalidStep is returned for a step missing an argument its op needs.
	ErrInvalidStep = errors.New("invalid step")
)

// Collection seeds one named collection.
type Collection struct {
	Name   string  `yaml:"name"`
	Values []int64 `yaml:"values"`
}

// Script is a decoded script file.
type Script struct {
	Description string       `yaml:"description"`
	Collections []Collection `yaml:"collections"`
	Steps       []Step       `yaml:"steps"`
}

// Step is one operation. Pointer fields distinguish absent arguments from zero.
type Step struct {
	Op         string `yaml:"op"`
	Collection string `yaml:"collection"`
	Index      *int   `yaml:"index"`
	Value      *int64 `yaml:"value"`
	After      *int64 `yaml:"after"`
	NewValue   *int64 `yaml:"new_value"`

	// Line is the step's position in the source, for error messages.
	Line int `yaml:"-"`
}

var stepKeys = []string{"op", "collection", "index", "value", "after", "new_value"}

// UnmarshalYAML records the line and rejects unknown keys. Decoding through
// a node does not inherit the decoder's KnownFields setting.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: step must be a mapping", node.Line)
	}
	for i := 0; i < len(node.Content)-1; i += 2 {
		key := node.Content[i]
		if !slices.Contains(stepKeys, key.Value) {
			return fmt.Errorf("line %d: field %s not found in step", key.Line, key.Value)
		}
	}

	type plain Step
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*s = Step(p)
	s.Line = node.Line
	return nil
}

// Parse decodes a script, rejecting unknown fields.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &s, nil
		}
		return nil, fmt.Errorf("decode script: %w", err)
	}

	for i, c := range s.Collections {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("collection %d: name is required: %w", i, ErrInvalidStep)
		}
		if len(c.Values) == 0 {
			return nil, fmt.Errorf("collection %d (%s): at least one value is required: %w", i, c.Name, ErrInvalidStep)
		}
	}
	for i := range s.Steps {
		if _, err := s.Steps[i].Command(command.SourceScript); err != nil {
			return nil, err
		}
	}

	log.Debug(log.CatScript, "parsed script", "collections", len(s.Collections), "steps", len(s.Steps))
	return &s, nil
}

// ParseFile opens and parses the script at path.
func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path) // #nosec G304 -- path is the user's script argument
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Seed returns the commands that create the script's collections. base is
// the registry length before the first create, so appended values address
// the right entry.
func (s *Script) Seed(base int, source command.CommandSource) []command.Command {
	var cmds []command.Command
	for i, c := range s.Collections {
		cmds = append(cmds, command.NewCreateCollectionCommand(source, c.Name, c.Values[0]))
		for _, v := range c.Values[1:] {
			cmds = append(cmds, command.NewAddValueCommand(source, base+i, v))
		}
	}
	return cmds
}

// Commands returns one command per step, in order.
func (s *Script) Commands(source command.CommandSource) ([]command.Command, error) {
	cmds := make([]command.Command, 0, len(s.Steps))
	for _, step := range s.Steps {
		cmd, err := step.Command(source)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// Command converts the step into its command.
func (s Step) Command(source command.CommandSource) (command.Command, error) {
	op := command.CommandType(s.Op)
	if !slices.Contains(command.AllTypes(), op) {
		return nil, fmt.Errorf("line %d: %q: %w", s.Line, s.Op, ErrUnknownOp)
	}

	switch op {
	case command.CmdCreateCollection:
		if s.Collection == "" {
			return nil, s.missing("collection")
		}
		if s.Value == nil {
			return nil, s.missing("value")
		}
		return command.NewCreateCollectionCommand(source, s.Collection, *s.Value), nil
	case command.CmdRemoveCollection:
		if s.Index == nil {
			return nil, s.missing("index")
		}
		return command.NewRemoveCollectionCommand(source, *s.Index), nil
	case command.CmdAddValue:
		if s.Index == nil {
			return nil, s.missing("index")
		}
		if s.Value == nil {
			return nil, s.missing("value")
		}
		return command.NewAddValueCommand(source, *s.Index, *s.Value), nil
	}

	target, err := s.target()
	if err != nil {
		return nil, err
	}

	switch op {
	case command.CmdInsertAtBeginning, command.CmdInsertAtEnd, command.CmdInsertAfter:
		if s.Value == nil {
			return nil, s.missing("value")
		}
		switch op {
		case command.CmdInsertAtBeginning:
			return command.NewInsertAtBeginning(source, target, *s.Value), nil
		case command.CmdInsertAtEnd:
			return command.NewInsertAtEnd(source, target, *s.Value), nil
		}
		if s.After == nil {
			return nil, s.missing("after")
		}
		return command.NewInsertAfter(source, target, *s.Value, *s.After), nil
	case command.CmdDeleteFromBeginning:
		return command.NewDeleteFromBeginning(source, target), nil
	case command.CmdDeleteFromEnd:
		return command.NewDeleteFromEnd(source, target), nil
	case command.CmdDeleteAfter:
		if s.After == nil {
			return nil, s.missing("after")
		}
		return command.NewDeleteAfter(source, target, *s.After), nil
	case command.CmdRemoveValue:
		if s.Value == nil {
			return nil, s.missing("value")
		}
		return command.NewRemoveValue(source, target, *s.Value), nil
	case command.CmdUpdateValue:
		if s.Value == nil {
			return nil, s.missing("value")
		}
		if s.NewValue == nil {
			return nil, s.missing("new_value")
		}
		return command.NewUpdateValue(source, target, *s.Value, *s.NewValue), nil
	case command.CmdSort:
		return command.NewSort(source, target), nil
	default:
		if s.Value == nil {
			return nil, s.missing("value")
		}
		return command.NewSearch(source, target, *s.Value), nil
	}
}

func (s Step) target() (command.Target, error) {
	switch {
	case s.Collection != "" && s.Index != nil:
		return command.Target{}, fmt.Errorf("line %d: %s: collection and index are exclusive: %w", s.Line, s.Op, ErrInvalidStep)
	case s.Collection != "":
		return command.ByName(s.Collection), nil
	case s.Index != nil:
		return command.ByIndex(*s.Index), nil
	default:
		return command.Target{}, s.missing("collection or index")
	}
}

func (s Step) missing(field string) error {
	return fmt.Errorf("line %d: %s needs %s: %w", s.Line, s.Op, field, ErrInvalidStep)
}

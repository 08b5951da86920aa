package sequence

import "errors"

var (
	// ErrNotFound is returned when a referenced value is not in the sequence.
	ErrNotFound = errors.New("element not found")
	// ErrEmptySequence is returned by positional deletes on an empty sequence.
	ErrEmptySequence = errors.New("empty sequence")
	// ErrNoSuccessor is returned by DeleteAfter when the reference is the tail.
	ErrNoSuccessor = errors.New("no element follows reference")
)

// Package registry holds named sequences in insertion order and forwards
// create, remove and mutation requests to the addressed one.
//
// Every successful change is published as a Change on the registry's broker;
// observers re-read the registry rather than the sequences tracking their own
// subscribers.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/zjrosen/dlist/internal/log"
	"github.com/zjrosen/dlist/internal/pubsub"
	"github.com/zjrosen/dlist/internal/sequence"
)

var (
	// ErrIndexOutOfRange is returned when an index addresses no entry.
	ErrIndexOutOfRange = errors.New("collection index out of range")
	// ErrCollectionNotFound is returned when no entry carries the requested name.
	ErrCollectionNotFound = errors.New("collection not found")
)

// Operation names carried by Change.Op.
const (
	OpCreate = "create"
	OpRemove = "remove"
	OpAdd    = "add_value"
)

// Entry is one named sequence.
type Entry struct {
	ID   string
	Name string
	Seq  *sequence.Sequence
}

// Snapshot is a read-only copy of an entry for rendering.
type Snapshot struct {
	ID     string
	Name   string
	Values []int64
}

// Change describes a successful registry mutation.
type Change struct {
	ID     string
	Name   string
	Index  int
	Op     string
	Values []int64
}

// Registry is an ordered list of named sequences.
type Registry struct {
	mu      sync.RWMutex
	entries []*Entry
	broker  *pubsub.Broker[Change]
}

// New returns an empty registry with its own change broker.
func New() *Registry {
	return &Registry{broker: pubsub.NewBroker[Change]()}
}

// Broker exposes change events to subscribers.
func (r *Registry) Broker() *pubsub.Broker[Change] {
	return r.broker
}

// Close shuts down the change broker.
func (r *Registry) Close() {
	r.broker.Close()
}

// Create appends a new entry whose sequence is seeded with initial.
func (r *Registry) Create(name string, initial int64) Snapshot {
	seq := sequence.New()
	seq.InsertAtBeginning(initial)
	e := &Entry{ID: uuid.NewString(), Name: name, Seq: seq}

	r.mu.Lock()
	r.entries = append(r.entries, e)
	index := len(r.entries) - 1
	change := changeOf(e, index, OpCreate)
	r.mu.Unlock()

	log.Info(log.CatRegistry, "created collection", "id", e.ID, "name", name, "index", index)
	r.broker.Publish(pubsub.CreatedEvent, change)
	return Snapshot{ID: e.ID, Name: name, Values: change.Values}
}

// AddValue appends v to the sequence at index.
func (r *Registry) AddValue(index int, v int64) error {
	return r.Apply(index, OpAdd, func(s *sequence.Sequence) error {
		s.InsertAtEnd(v)
		return nil
	})
}

// Remove drops the entry at index.
func (r *Registry) Remove(index int) error {
	r.mu.Lock()
	if index < 0 || index >= len(r.entries) {
		n := len(r.entries)
		r.mu.Unlock()
		return fmt.Errorf("remove %d of %d: %w", index, n, ErrIndexOutOfRange)
	}
	e := r.entries[index]
	r.entries = append(r.entries[:index], r.entries[index+1:]...)
	change := changeOf(e, index, OpRemove)
	r.mu.Unlock()

	log.Info(log.CatRegistry, "removed collection", "id", e.ID, "name", e.Name, "index", index)
	r.broker.Publish(pubsub.DeletedEvent, change)
	return nil
}

// Apply runs fn against the sequence at index. A change is published only
// when fn succeeds; fn must leave the sequence untouched when it fails.
func (r *Registry) Apply(index int, op string, fn func(*sequence.Sequence) error) error {
	r.mu.Lock()
	if index < 0 || index >= len(r.entries) {
		n := len(r.entries)
		r.mu.Unlock()
		return fmt.Errorf("%s on %d of %d: %w", op, index, n, ErrIndexOutOfRange)
	}
	return r.applyLocked(index, op, fn)
}

// ApplyByName runs fn against the first entry named name.
func (r *Registry) ApplyByName(name, op string, fn func(*sequence.Sequence) error) error {
	r.mu.Lock()
	index := r.indexOfLocked(name)
	if index < 0 {
		r.mu.Unlock()
		return fmt.Errorf("%s on %q: %w", op, name, ErrCollectionNotFound)
	}
	return r.applyLocked(index, op, fn)
}

// applyLocked expects r.mu held and releases it.
func (r *Registry) applyLocked(index int, op string, fn func(*sequence.Sequence) error) error {
	e := r.entries[index]
	if err := fn(e.Seq); err != nil {
		r.mu.Unlock()
		log.Debug(log.CatRegistry, "mutation rejected", "name", e.Name, "op", op, "error", err)
		return err
	}
	change := changeOf(e, index, op)
	r.mu.Unlock()

	log.Debug(log.CatRegistry, "mutated collection", "name", e.Name, "op", op, "len", len(change.Values))
	r.broker.Publish(pubsub.UpdatedEvent, change)
	return nil
}

// View runs fn against the sequence at index under a read lock. fn must not
// mutate the sequence.
func (r *Registry) View(index int, fn func(*sequence.Sequence) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.entries) {
		return fmt.Errorf("view %d of %d: %w", index, len(r.entries), ErrIndexOutOfRange)
	}
	return fn(r.entries[index].Seq)
}

// Find returns the index of the first entry named name.
func (r *Registry) Find(name string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOfLocked(name); i >= 0 {
		return i, nil
	}
	return -1, fmt.Errorf("find %q: %w", name, ErrCollectionNotFound)
}

func (r *Registry) indexOfLocked(name string) int {
	for i, e := range r.entries {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// At returns a snapshot of the entry at index.
func (r *Registry) At(index int) (Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.entries) {
		return Snapshot{}, fmt.Errorf("at %d of %d: %w", index, len(r.entries), ErrIndexOutOfRange)
	}
	return snapshotOf(r.entries[index]), nil
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Entries returns snapshots of every entry in order.
func (r *Registry) Entries() []Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Snapshot, len(r.entries))
	for i, e := range r.entries {
		out[i] = snapshotOf(e)
	}
	return out
}

func snapshotOf(e *Entry) Snapshot {
	return Snapshot{ID: e.ID, Name: e.Name, Values: e.Seq.Values()}
}

func changeOf(e *Entry, index int, op string) Change {
	return Change{ID: e.ID, Name: e.Name, Index: index, Op: op, Values: e.Seq.Values()}
}

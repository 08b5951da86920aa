// Package sequence implements a doubly-linked list of int64 values.
//
// Nodes live in an arena owned by the Sequence and are addressed by Handle.
// The next link is the owning direction; prev is a back-reference kept only
// for O(1) predecessor lookup and tail-relative operations. Slots released by
// deletions are recycled by later insertions, so a Handle is only meaningful
// until the node it names is deleted.
//
// The zero value is an empty sequence ready to use. A Sequence is not safe for
// concurrent use; callers sharing one must serialize access themselves.
package sequence

import (
	"fmt"
	"iter"
	"strings"
)

// Handle addresses a node inside a Sequence. The zero Handle addresses nothing.
type Handle uint32

type node struct {
	value int64
	next  Handle
	prev  Handle
	live  bool
}

// Sequence is an ordered chain of int64 values.
type Sequence struct {
	nodes  []node
	free   []Handle
	head   Handle
	tail   Handle
	length int
}

// New returns an empty sequence holding values in order.
func New(values ...int64) *Sequence {
	s := &Sequence{}
	for _, v := range values {
		s.InsertAtEnd(v)
	}
	return s
}

func (s *Sequence) at(h Handle) *node {
	return &s.nodes[h-1]
}

func (s *Sequence) alloc(v int64) Handle {
	if n := len(s.free); n > 0 {
		h := s.free[n-1]
		s.free = s.free[:n-1]
		*s.at(h) = node{value: v, live: true}
		return h
	}
	s.nodes = append(s.nodes, node{value: v, live: true})
	return Handle(len(s.nodes))
}

func (s *Sequence) release(h Handle) int64 {
	n := s.at(h)
	v := n.value
	*n = node{}
	s.free = append(s.free, h)
	s.length--
	return v
}

// Len returns the number of values in the sequence.
func (s *Sequence) Len() int {
	return s.length
}

// Head returns the first value.
func (s *Sequence) Head() (int64, bool) {
	if s.head == 0 {
		return 0, false
	}
	return s.at(s.head).value, true
}

// Tail returns the last value.
func (s *Sequence) Tail() (int64, bool) {
	if s.tail == 0 {
		return 0, false
	}
	return s.at(s.tail).value, true
}

// Value returns the value stored at h, or false if h does not address a live node.
func (s *Sequence) Value(h Handle) (int64, bool) {
	if h == 0 || int(h) > len(s.nodes) || !s.at(h).live {
		return 0, false
	}
	return s.at(h).value, true
}

// Search returns the first node, walking from the head, whose value equals item.
func (s *Sequence) Search(item int64) (Handle, bool) {
	for h := s.head; h != 0; h = s.at(h).next {
		if s.at(h).value == item {
			return h, true
		}
	}
	return 0, false
}

// InsertAtBeginning links a new node holding v before the head.
func (s *Sequence) InsertAtBeginning(v int64) {
	h := s.alloc(v)
	if s.head == 0 {
		s.head, s.tail = h, h
	} else {
		s.at(h).next = s.head
		s.at(s.head).prev = h
		s.head = h
	}
	s.length++
}

// InsertAtEnd links a new node holding v after the tail.
func (s *Sequence) InsertAtEnd(v int64) {
	h := s.alloc(v)
	if s.tail == 0 {
		s.head, s.tail = h, h
	} else {
		s.at(h).prev = s.tail
		s.at(s.tail).next = h
		s.tail = h
	}
	s.length++
}

// InsertAfter splices a new node holding v directly after the first node
// whose value is afterItem.
func (s *Sequence) InsertAfter(v, afterItem int64) error {
	after, ok := s.Search(afterItem)
	if !ok {
		return fmt.Errorf("insert %d after %d: %w", v, afterItem, ErrNotFound)
	}

	h := s.alloc(v)
	succ := s.at(after).next
	s.at(h).prev = after
	s.at(h).next = succ
	if succ != 0 {
		s.at(succ).prev = h
	} else {
		s.tail = h
	}
	s.at(after).next = h
	s.length++
	return nil
}

// DeleteFromBeginning detaches the head and returns its value.
func (s *Sequence) DeleteFromBeginning() (int64, error) {
	if s.length == 0 {
		return 0, fmt.Errorf("delete from beginning: %w", ErrEmptySequence)
	}

	old := s.head
	s.head = s.at(old).next
	if s.head == 0 {
		s.tail = 0
	} else {
		s.at(s.head).prev = 0
	}
	return s.release(old), nil
}

// DeleteFromEnd detaches the tail and returns its value.
func (s *Sequence) DeleteFromEnd() (int64, error) {
	if s.length == 0 {
		return 0, fmt.Errorf("delete from end: %w", ErrEmptySequence)
	}

	old := s.tail
	s.tail = s.at(old).prev
	if s.tail == 0 {
		s.head = 0
	} else {
		s.at(s.tail).next = 0
	}
	return s.release(old), nil
}

// DeleteAfter removes the node following the first node whose value is
// afterItem and returns the removed value.
func (s *Sequence) DeleteAfter(afterItem int64) (int64, error) {
	after, ok := s.Search(afterItem)
	if !ok {
		return 0, fmt.Errorf("delete after %d: %w", afterItem, ErrNotFound)
	}
	victim := s.at(after).next
	if victim == 0 {
		return 0, fmt.Errorf("delete after %d: %w", afterItem, ErrNoSuccessor)
	}

	s.unlink(victim)
	return s.release(victim), nil
}

// RemoveByValue removes the first node holding v. A missing value is not an
// error; the return reports whether anything was removed.
func (s *Sequence) RemoveByValue(v int64) bool {
	h, ok := s.Search(v)
	if !ok {
		return false
	}
	s.unlink(h)
	s.release(h)
	return true
}

// unlink relinks the neighbours of h around it, fixing head and tail.
func (s *Sequence) unlink(h Handle) {
	n := s.at(h)
	if n.prev != 0 {
		s.at(n.prev).next = n.next
	} else {
		s.head = n.next
	}
	if n.next != 0 {
		s.at(n.next).prev = n.prev
	} else {
		s.tail = n.prev
	}
}

// Update overwrites the first node holding item with newValue.
func (s *Sequence) Update(item, newValue int64) error {
	h, ok := s.Search(item)
	if !ok {
		return fmt.Errorf("update %d: %w", item, ErrNotFound)
	}
	s.at(h).value = newValue
	return nil
}

// Sort orders the values non-decreasingly by swapping values between nodes.
// Links are never touched, so node identity does not follow its value.
func (s *Sequence) Sort() {
	for i := s.head; i != 0; i = s.at(i).next {
		for j := s.at(i).next; j != 0; j = s.at(j).next {
			ni, nj := s.at(i), s.at(j)
			if ni.value > nj.value {
				ni.value, nj.value = nj.value, ni.value
			}
		}
	}
}

// Forward yields the values from head to tail.
func (s *Sequence) Forward() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for h := s.head; h != 0; h = s.at(h).next {
			if !yield(s.at(h).value) {
				return
			}
		}
	}
}

// Backward yields the values from tail to head.
func (s *Sequence) Backward() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for h := s.tail; h != 0; h = s.at(h).prev {
			if !yield(s.at(h).value) {
				return
			}
		}
	}
}

// Values returns a head-to-tail snapshot.
func (s *Sequence) Values() []int64 {
	out := make([]int64, 0, s.length)
	for v := range s.Forward() {
		out = append(out, v)
	}
	return out
}

// Reversed returns a tail-to-head snapshot.
func (s *Sequence) Reversed() []int64 {
	out := make([]int64, 0, s.length)
	for v := range s.Backward() {
		out = append(out, v)
	}
	return out
}

func (s *Sequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for v := range s.Forward() {
		if !first {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", v)
		first = false
	}
	b.WriteByte(']')
	return b.String()
}

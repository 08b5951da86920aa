package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// ListenCmd creates a Bubble Tea command that waits for the next event on ch.
// The command yields nil once ctx is cancelled or ch is closed.
func ListenCmd[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return event
		}
	}
}

// ContinuousListener keeps one broker subscription alive across Bubble Tea
// update cycles.
type ContinuousListener[T any] struct {
	ctx     context.Context
	ch      <-chan Event[T]
	lastSeq uint64
}

// NewContinuousListener subscribes to broker for the lifetime of ctx.
func NewContinuousListener[T any](ctx context.Context, broker *Broker[T]) *ContinuousListener[T] {
	return &ContinuousListener[T]{
		ctx: ctx,
		ch:  broker.Subscribe(ctx),
	}
}

// Listen returns a tea.Cmd that waits for the next event.
// Call it again from Update after handling each event.
func (l *ContinuousListener[T]) Listen() tea.Cmd {
	return ListenCmd(l.ctx, l.ch)
}

// Observe records ev as delivered and reports how many events published
// before it never reached this listener.
func (l *ContinuousListener[T]) Observe(ev Event[T]) uint64 {
	var missed uint64
	if l.lastSeq != 0 && ev.Seq > l.lastSeq+1 {
		missed = ev.Seq - l.lastSeq - 1
	}
	if ev.Seq > l.lastSeq {
		l.lastSeq = ev.Seq
	}
	return missed
}

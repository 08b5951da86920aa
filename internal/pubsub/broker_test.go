package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan Event[T]) Event[T] {
	t.Helper()
	select {
	case event := <-ch:
		return event
	case <-time.After(100 * time.Millisecond):
		require.Fail(t, "timeout waiting for event")
		return Event[T]{}
	}
}

func TestBroker_Subscribe(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)
	broker.Publish(UpdatedEvent, "hello")

	event := receive(t, ch)
	require.Equal(t, "hello", event.Payload)
	require.Equal(t, UpdatedEvent, event.Type)
	require.Equal(t, uint64(1), event.Seq)
	require.False(t, event.Timestamp.IsZero())
}

func TestBroker_MultipleSubscribersShareSeq(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx := context.Background()
	ch1 := broker.Subscribe(ctx)
	ch2 := broker.Subscribe(ctx)
	require.Equal(t, 2, broker.SubscriberCount())

	broker.Publish(CreatedEvent, 42)
	broker.Publish(DeletedEvent, 43)

	for i, ch := range []<-chan Event[int]{ch1, ch2} {
		first := receive(t, ch)
		second := receive(t, ch)
		require.Equal(t, 42, first.Payload, "subscriber %d", i)
		require.Equal(t, uint64(1), first.Seq, "subscriber %d", i)
		require.Equal(t, DeletedEvent, second.Type, "subscriber %d", i)
		require.Equal(t, uint64(2), second.Seq, "subscriber %d", i)
	}
}

func TestBroker_ContextCancellation(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := broker.Subscribe(ctx)
	require.Equal(t, 1, broker.SubscriberCount())

	cancel()
	require.Eventually(t, func() bool { return broker.SubscriberCount() == 0 },
		time.Second, 5*time.Millisecond)

	_, ok := <-ch
	require.False(t, ok, "channel should be closed")
}

func TestBroker_FullSubscriberDropsWithoutBlocking(t *testing.T) {
	broker := NewBrokerWithBuffer[int](1)
	defer broker.Close()

	ch := broker.Subscribe(context.Background())
	broker.Publish(UpdatedEvent, 1)

	done := make(chan struct{})
	go func() {
		broker.Publish(UpdatedEvent, 2)
		broker.Publish(UpdatedEvent, 3)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		require.Fail(t, "Publish blocked")
	}

	event := <-ch
	require.Equal(t, 1, event.Payload)
	require.Equal(t, uint64(2), broker.Dropped())

	broker.Publish(UpdatedEvent, 4)
	event = receive(t, ch)
	require.Equal(t, 4, event.Payload)
	require.Equal(t, uint64(4), event.Seq, "seq counts dropped events too")
}

func TestBroker_Close(t *testing.T) {
	broker := NewBroker[string]()
	ctx := context.Background()

	ch1 := broker.Subscribe(ctx)
	ch2 := broker.Subscribe(ctx)

	broker.Close()

	_, ok1 := <-ch1
	_, ok2 := <-ch2
	require.False(t, ok1, "ch1 should be closed")
	require.False(t, ok2, "ch2 should be closed")
	require.Equal(t, 0, broker.SubscriberCount())

	ch3 := broker.Subscribe(ctx)
	_, ok3 := <-ch3
	require.False(t, ok3, "subscribe after close yields a closed channel")

	broker.Publish(UpdatedEvent, "ignored")
	broker.Close()
}

package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/coffai/pos/internal/events"
)

type captureNotifier struct {
	events []events.Event
	err    error
}

func (c *captureNotifier) Notify(_ context.Context, event events.Event) error {
	c.events = append(c.events, event)
	return c.err
}

func TestEmitRecordsAndNotifies(t *testing.T) {
	store := events.NewMemoryStore(16)
	notifier := &captureNotifier{}
	bus := &events.Bus{
		Store:     store,
		Notifiers: []events.Notifier{notifier},
	}

	aggregate := uuid.New()
	payload := map[string]any{"cartId": aggregate.String()}
	event, err := bus.Emit(context.Background(), events.TopicCartCreated, aggregate, payload)
	require.NoError(t, err)
	require.Equal(t, events.TopicCartCreated, event.Topic)
	require.Equal(t, aggregate, event.AggregateID)
	require.False(t, event.OccurredAt.IsZero())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(event.Payload, &decoded))
	require.Equal(t, aggregate.String(), decoded["cartId"])

	recent := store.Recent()
	require.Len(t, recent, 1)
	require.Equal(t, event.ID, recent[0].ID)
	require.Len(t, notifier.events, 1)
	require.Equal(t, event.ID, notifier.events[0].ID)
}

func TestEmitValidatesInput(t *testing.T) {
	bus := &events.Bus{Store: events.NewMemoryStore(16)}
	ctx := context.Background()

	_, err := bus.Emit(ctx, "", uuid.New(), nil)
	require.Error(t, err)

	_, err = bus.Emit(ctx, events.TopicCartCreated, uuid.Nil, nil)
	require.Error(t, err)

	_, err = bus.Emit(ctx, events.TopicCartCreated, uuid.New(), json.RawMessage("{not json"))
	require.Error(t, err)
}

func TestEmitNilPayloadDefaultsToEmptyObject(t *testing.T) {
	bus := &events.Bus{Store: events.NewMemoryStore(16)}
	event, err := bus.Emit(context.Background(), events.TopicCartCreated, uuid.New(), nil)
	require.NoError(t, err)
	require.JSONEq(t, "{}", string(event.Payload))
}

func TestEmitJoinsNotifierErrors(t *testing.T) {
	failing := &captureNotifier{err: errors.New("sink offline")}
	ok := &captureNotifier{}
	bus := &events.Bus{
		Store:     events.NewMemoryStore(16),
		Notifiers: []events.Notifier{failing, ok, nil},
	}

	event, err := bus.Emit(context.Background(), events.TopicCheckoutCompleted, uuid.New(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sink offline")
	// The event is still recorded and every healthy notifier still runs.
	require.NotEqual(t, uuid.Nil, event.ID)
	require.Len(t, ok.events, 1)
}

func TestEmitUsesInjectedClockAndIDs(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	id := uuid.New()
	bus := &events.Bus{
		Store: events.NewMemoryStore(16),
		NewID: func() uuid.UUID { return id },
		Now:   func() time.Time { return fixed },
	}
	event, err := bus.Emit(context.Background(), events.TopicCartCreated, uuid.New(), nil)
	require.NoError(t, err)
	require.Equal(t, id, event.ID)
	require.True(t, event.OccurredAt.Equal(fixed))
}

func TestMemoryStoreBoundsRetention(t *testing.T) {
	store := events.NewMemoryStore(3)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		err := store.Append(ctx, events.Event{
			ID:    uuid.New(),
			Topic: fmt.Sprintf("topic.%d", i),
		})
		require.NoError(t, err)
	}
	recent := store.Recent()
	require.Len(t, recent, 3)
	require.Equal(t, "topic.2", recent[0].Topic)
	require.Equal(t, "topic.4", recent[2].Topic)
}

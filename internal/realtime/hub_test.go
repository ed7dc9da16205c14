package realtime

import (
	"testing"
	"time"

	"sharecase/internal/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	hub := NewHub()

	first := hub.Subscribe()
	second := hub.Subscribe()
	assert.Equal(t, 2, hub.SubscriberCount())

	event := services.ActivityEvent{UserID: uuid.New(), Action: "Ada followed you"}
	hub.Publish(event)

	for _, ch := range []chan services.ActivityEvent{first, second} {
		select {
		case got := <-ch:
			assert.Equal(t, event, got)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()

	ch := hub.Subscribe()
	hub.Unsubscribe(ch)
	assert.Equal(t, 0, hub.SubscriberCount())

	_, ok := <-ch
	assert.False(t, ok)

	// Double unsubscribe is safe
	hub.Unsubscribe(ch)
}

func TestHub_SlowSubscriberIsSkipped(t *testing.T) {
	hub := NewHub()

	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	// Fill the buffer and keep publishing; Publish must never block
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberSlot*3; i++ {
			hub.Publish(services.ActivityEvent{Action: "event"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	require.Len(t, ch, subscriberSlot)
}

package inbox

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorpanel/internal/domain/entity"
	"vendorpanel/internal/realtime"
)

// fakeSocket records emits and lets tests fire push events at subscribers.
type fakeSocket struct {
	mu       sync.Mutex
	emitted  []emitRecord
	handlers map[string][]realtime.Handler
}

type emitRecord struct {
	event   string
	payload interface{}
}

func newFakeSocket() *fakeSocket {
	return &fakeSocket{handlers: make(map[string][]realtime.Handler)}
}

func (f *fakeSocket) Emit(event string, payload interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emitted = append(f.emitted, emitRecord{event: event, payload: payload})
	return nil
}

func (f *fakeSocket) On(event string, fn realtime.Handler) func() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[event] = append(f.handlers[event], fn)
	idx := len(f.handlers[event]) - 1
	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			f.handlers[event][idx] = nil
			f.mu.Unlock()
		})
	}
}

func (f *fakeSocket) fire(t *testing.T, event string, payload interface{}) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	f.mu.Lock()
	handlers := append([]realtime.Handler{}, f.handlers[event]...)
	f.mu.Unlock()
	for _, fn := range handlers {
		if fn != nil {
			fn(raw)
		}
	}
}

func (f *fakeSocket) emits(event string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.emitted {
		if e.event == event {
			n++
		}
	}
	return n
}

func (f *fakeSocket) liveHandlers(event string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, fn := range f.handlers[event] {
		if fn != nil {
			n++
		}
	}
	return n
}

type fakeInbox struct {
	payload interface{}
	err     error
	delay   time.Duration

	mu    sync.Mutex
	calls int
}

func (f *fakeInbox) InboxRaw(ctx context.Context) (interface{}, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.payload, f.err
}

func (f *fakeInbox) fetches() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestNotificationCounterLifecycle(t *testing.T) {
	socket := newFakeSocket()
	counter := NewNotificationCounter(socket)

	counter.Start("user-1")
	assert.Equal(t, 1, socket.emits(realtime.EventNotificationsJoin))

	socket.fire(t, realtime.EventNotificationCount, map[string]int{"count": 4})
	assert.Equal(t, 4, counter.Count())

	socket.fire(t, realtime.EventNotificationNew, map[string]string{"_id": "n1"})
	assert.Equal(t, 5, counter.Count())

	// The authoritative count always wins over optimistic bumps.
	socket.fire(t, realtime.EventNotificationCount, map[string]int{"count": 2})
	assert.Equal(t, 2, counter.Count())

	counter.Stop()
	assert.Equal(t, 1, socket.emits(realtime.EventNotificationsLeave))
	assert.Equal(t, 0, socket.liveHandlers(realtime.EventNotificationCount))
	assert.Equal(t, 0, socket.liveHandlers(realtime.EventNotificationNew))

	// Idempotent: a second Stop neither re-leaves nor panics.
	counter.Stop()
	assert.Equal(t, 1, socket.emits(realtime.EventNotificationsLeave))
}

func TestNotificationCounterEmptyUserIDDoesNothing(t *testing.T) {
	socket := newFakeSocket()
	counter := NewNotificationCounter(socket)

	counter.Start("")
	assert.Empty(t, socket.emitted)
	assert.Equal(t, 0, socket.liveHandlers(realtime.EventNotificationCount))

	counter.Stop()
	assert.Empty(t, socket.emitted)
}

func TestNotificationCounterInvalidCountResets(t *testing.T) {
	socket := newFakeSocket()
	counter := NewNotificationCounter(socket)
	counter.Start("user-1")

	socket.fire(t, realtime.EventNotificationCount, map[string]int{"count": 7})
	require.Equal(t, 7, counter.Count())

	// A malformed count payload resets to zero rather than keeping a guess.
	socket.fire(t, realtime.EventNotificationCount, map[string]string{"bogus": "x"})
	assert.Equal(t, 0, counter.Count())
}

func TestNotificationCounterNormalizesNewItems(t *testing.T) {
	socket := newFakeSocket()
	counter := NewNotificationCounter(socket)

	var received []*entity.Notification
	counter.OnNotification(func(n *entity.Notification) {
		received = append(received, n)
	})
	counter.Start("user-1")

	socket.fire(t, realtime.EventNotificationNew, map[string]interface{}{
		"data": map[string]interface{}{
			"notification": map[string]interface{}{"_id": "n1", "title": "New order"},
		},
	})
	require.Len(t, received, 1)
	assert.Equal(t, "n1", received[0].ID)
	assert.Equal(t, "New order", received[0].Title)
	assert.Equal(t, 1, counter.Count())

	// An unrecognizable payload still bumps the count; it only skips the
	// item callback.
	socket.fire(t, realtime.EventNotificationNew, map[string]interface{}{"noise": true})
	assert.Len(t, received, 1)
	assert.Equal(t, 2, counter.Count())
}

func TestNotificationCounterRejoinsOnReconnect(t *testing.T) {
	socket := newFakeSocket()
	counter := NewNotificationCounter(socket)
	counter.Start("user-1")
	require.Equal(t, 1, socket.emits(realtime.EventNotificationsJoin))

	// A new connection carries no room membership, so connect re-joins.
	socket.fire(t, realtime.EventConnect, nil)
	assert.Equal(t, 2, socket.emits(realtime.EventNotificationsJoin))

	counter.Stop()
	socket.fire(t, realtime.EventConnect, nil)
	assert.Equal(t, 2, socket.emits(realtime.EventNotificationsJoin))
}

func TestMessageCounterRejoinsAndReseedsOnReconnect(t *testing.T) {
	socket := newFakeSocket()
	fetcher := &fakeInbox{payload: map[string]interface{}{"totalUnread": float64(2)}}
	counter := NewMessageCounter(socket, fetcher)
	counter.Start(context.Background(), "user-1")

	require.Eventually(t, func() bool {
		return counter.Count() == 2
	}, time.Second, 10*time.Millisecond)
	require.Equal(t, 1, socket.emits(realtime.EventMessagesJoin))

	// Pushes missed while disconnected never arrive, so connect both
	// re-joins and re-seeds.
	socket.fire(t, realtime.EventConnect, nil)
	assert.Equal(t, 2, socket.emits(realtime.EventMessagesJoin))
	require.Eventually(t, func() bool {
		return fetcher.fetches() == 2
	}, time.Second, 10*time.Millisecond)

	counter.Stop()
	socket.fire(t, realtime.EventConnect, nil)
	assert.Equal(t, 2, socket.emits(realtime.EventMessagesJoin))
}

func TestMessageCounterSeedsFromInbox(t *testing.T) {
	socket := newFakeSocket()
	fetcher := &fakeInbox{payload: []interface{}{
		map[string]interface{}{
			"participants": []interface{}{
				map[string]interface{}{
					"user":        map[string]interface{}{"_id": "user-1"},
					"unreadCount": float64(2),
				},
			},
		},
	}}
	counter := NewMessageCounter(socket, fetcher)
	counter.Start(context.Background(), "user-1")
	defer counter.Stop()

	require.Eventually(t, func() bool { return counter.Count() == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, socket.emits(realtime.EventMessagesJoin))
}

func TestMessageCounterSeedScalarFallback(t *testing.T) {
	socket := newFakeSocket()
	fetcher := &fakeInbox{payload: map[string]interface{}{"totalUnread": float64(6)}}
	counter := NewMessageCounter(socket, fetcher)
	counter.Start(context.Background(), "user-1")
	defer counter.Stop()

	require.Eventually(t, func() bool { return counter.Count() == 6 }, time.Second, 5*time.Millisecond)
}

func TestMessageCounterSeedFailureKeepsPreviousValue(t *testing.T) {
	socket := newFakeSocket()
	fetcher := &fakeInbox{err: errors.New("boom")}
	counter := NewMessageCounter(socket, fetcher)
	counter.Start(context.Background(), "user-1")
	defer counter.Stop()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, counter.Count())
}

func TestMessageCounterSelfEchoSuppression(t *testing.T) {
	socket := newFakeSocket()
	counter := NewMessageCounter(socket, &fakeInbox{payload: []interface{}{}})
	counter.Start(context.Background(), "user-1")
	defer counter.Stop()

	// Own message: no bump.
	socket.fire(t, realtime.EventNewMessage, map[string]string{"senderId": "user-1"})
	assert.Equal(t, 0, counter.Count())

	// Someone else's message: exactly one bump.
	socket.fire(t, realtime.EventNewMessage, map[string]string{"senderId": "user-2"})
	assert.Equal(t, 1, counter.Count())

	// Unknown sender still bumps; only a confirmed self-echo is dropped.
	socket.fire(t, realtime.EventNewMessage, map[string]string{"text": "hi"})
	assert.Equal(t, 2, counter.Count())
}

func TestMessageCounterAuthoritativeCount(t *testing.T) {
	socket := newFakeSocket()
	counter := NewMessageCounter(socket, &fakeInbox{payload: []interface{}{}})
	counter.Start(context.Background(), "user-1")
	defer counter.Stop()

	socket.fire(t, realtime.EventNewMessage, map[string]string{"senderId": "user-2"})
	socket.fire(t, realtime.EventNewMessage, map[string]string{"senderId": "user-2"})
	require.Equal(t, 2, counter.Count())

	socket.fire(t, realtime.EventMessageCount, map[string]int{"count": 1})
	assert.Equal(t, 1, counter.Count())

	// Negative or non-numeric counts are ignored, unlike the notification
	// counter's reset-to-zero behavior.
	socket.fire(t, realtime.EventMessageCount, map[string]int{"count": -3})
	assert.Equal(t, 1, counter.Count())
}

func TestMessageCounterLateSeedDiscardedAfterStop(t *testing.T) {
	socket := newFakeSocket()
	fetcher := &fakeInbox{
		payload: map[string]interface{}{"totalUnread": float64(99)},
		delay:   30 * time.Millisecond,
	}
	counter := NewMessageCounter(socket, fetcher)
	counter.Start(context.Background(), "user-1")
	counter.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, counter.Count(), "seed completing after Stop must not update state")
}

func TestMessageCounterEmptyUserIDDoesNothing(t *testing.T) {
	socket := newFakeSocket()
	counter := NewMessageCounter(socket, &fakeInbox{payload: []interface{}{}})

	counter.Start(context.Background(), "")
	assert.Empty(t, socket.emitted)
	counter.Stop()
	assert.Empty(t, socket.emitted)
}

package inbox

import (
	"context"
	"encoding/json"
	"sync"

	"vendorpanel/internal/domain/entity"
	"vendorpanel/internal/realtime"
	"vendorpanel/pkg/logger"
)

// PushSocket is the slice of the realtime connection the counters need:
// emitting room membership events and subscribing to push events. The
// unsubscribe func returned by On must be safe to call more than once.
type PushSocket interface {
	Emit(event string, payload interface{}) error
	On(event string, fn realtime.Handler) func()
}

// InboxFetcher loads the raw inbox snapshot. The payload is returned as
// decoded JSON rather than typed structs because its shape varies across
// backend versions.
type InboxFetcher interface {
	InboxRaw(ctx context.Context) (interface{}, error)
}

func decodePayload(raw json.RawMessage) interface{} {
	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}
	return payload
}

// NotificationCounter tracks how many notifications addressed to the current
// user are unread. The count is seeded and corrected by authoritative
// notification:count pushes; notification:new pushes bump it optimistically
// in between.
type NotificationCounter struct {
	socket PushSocket

	mu       sync.Mutex
	count    int
	userID   string
	offs     []func()
	onChange func(int)
	onItem   func(*entity.Notification)
}

func NewNotificationCounter(socket PushSocket) *NotificationCounter {
	return &NotificationCounter{socket: socket}
}

// OnChange registers a callback invoked with the new count after every
// change. Must be called before Start.
func (c *NotificationCounter) OnChange(fn func(int)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// OnNotification registers a callback invoked with each normalized
// notification item delivered over push. Must be called before Start.
func (c *NotificationCounter) OnNotification(fn func(*entity.Notification)) {
	c.mu.Lock()
	c.onItem = fn
	c.mu.Unlock()
}

// Start joins the per-user notification room and subscribes to push events.
// An empty userID means the session has not resolved yet; Start does nothing
// and may be called again once the identifier is known.
func (c *NotificationCounter) Start(userID string) {
	if userID == "" {
		return
	}

	c.mu.Lock()
	if c.userID != "" {
		c.mu.Unlock()
		return
	}
	c.userID = userID
	c.mu.Unlock()

	c.socket.Emit(realtime.EventNotificationsJoin, userID)

	// Room membership lives on the connection, not the session: a reconnect
	// arrives with no rooms, so every connect re-joins.
	offConnect := c.socket.On(realtime.EventConnect, func(json.RawMessage) {
		c.socket.Emit(realtime.EventNotificationsJoin, userID)
	})

	offCount := c.socket.On(realtime.EventNotificationCount, func(raw json.RawMessage) {
		if n, ok := CountValue(decodePayload(raw)); ok {
			c.set(n)
		} else {
			c.set(0)
		}
	})
	offNew := c.socket.On(realtime.EventNotificationNew, func(raw json.RawMessage) {
		// Optimistic bump regardless of payload shape; the server follows
		// up with notification:count. Only the item callback needs a
		// recognizable notification.
		c.add(1)
		if item, ok := NormalizeNotification(decodePayload(raw)); ok {
			c.mu.Lock()
			fn := c.onItem
			c.mu.Unlock()
			if fn != nil {
				fn(item)
			}
		}
	})

	c.mu.Lock()
	c.offs = append(c.offs, offConnect, offCount, offNew)
	c.mu.Unlock()
}

// Stop unsubscribes the event handlers and leaves the room. Idempotent.
func (c *NotificationCounter) Stop() {
	c.mu.Lock()
	offs := c.offs
	userID := c.userID
	c.offs = nil
	c.userID = ""
	c.mu.Unlock()

	for _, off := range offs {
		off()
	}
	if userID != "" {
		c.socket.Emit(realtime.EventNotificationsLeave, userID)
	}
}

func (c *NotificationCounter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func (c *NotificationCounter) set(n int) {
	c.mu.Lock()
	c.count = n
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(n)
	}
}

func (c *NotificationCounter) add(delta int) {
	c.mu.Lock()
	c.count += delta
	n := c.count
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(n)
	}
}

// MessageCounter tracks unread conversation messages: seeded by deriving a
// count from the inbox snapshot, then kept in sync by message:count
// (authoritative) and newMessage (optimistic, self-echo suppressed) pushes.
type MessageCounter struct {
	socket  PushSocket
	fetcher InboxFetcher

	mu       sync.Mutex
	count    int
	userID   string
	gen      int
	offs     []func()
	onChange func(int)
}

func NewMessageCounter(socket PushSocket, fetcher InboxFetcher) *MessageCounter {
	return &MessageCounter{socket: socket, fetcher: fetcher}
}

func (c *MessageCounter) OnChange(fn func(int)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Start seeds the count from the inbox snapshot, joins the per-user messages
// room and subscribes to push events. Does nothing until userID is known.
func (c *MessageCounter) Start(ctx context.Context, userID string) {
	if userID == "" {
		return
	}

	c.mu.Lock()
	if c.userID != "" {
		c.mu.Unlock()
		return
	}
	c.userID = userID
	gen := c.gen
	c.mu.Unlock()

	go c.seed(ctx, userID, gen)

	c.socket.Emit(realtime.EventMessagesJoin, userID)

	// Reconnects start with no room membership, and pushes missed while
	// down never arrive, so every connect re-joins and re-seeds.
	offConnect := c.socket.On(realtime.EventConnect, func(json.RawMessage) {
		c.socket.Emit(realtime.EventMessagesJoin, userID)
		go c.seed(ctx, userID, gen)
	})

	offCount := c.socket.On(realtime.EventMessageCount, func(raw json.RawMessage) {
		if n, ok := CountValue(decodePayload(raw)); ok {
			c.set(gen, n)
		}
	})
	offNew := c.socket.On(realtime.EventNewMessage, func(raw json.RawMessage) {
		sender := MessageSenderID(decodePayload(raw))
		if sender != "" && sender == userID {
			return
		}
		c.add(gen, 1)
	})

	c.mu.Lock()
	c.offs = append(c.offs, offConnect, offCount, offNew)
	c.mu.Unlock()
}

// Reseed refetches the inbox snapshot and recomputes the count, keeping the
// previous value on failure.
func (c *MessageCounter) Reseed(ctx context.Context) {
	c.mu.Lock()
	userID := c.userID
	gen := c.gen
	c.mu.Unlock()
	if userID == "" {
		return
	}
	c.seed(ctx, userID, gen)
}

func (c *MessageCounter) seed(ctx context.Context, userID string, gen int) {
	payload, err := c.fetcher.InboxRaw(ctx)
	if err != nil {
		// Non-fatal: the previous value stands until the next push or reseed.
		logger.Error("Failed to load message count: %v", err)
		return
	}

	conversations := ExtractConversations(payload)
	fallback := ExtractUnreadCount(payload)

	if len(conversations) == 0 {
		c.set(gen, fallback)
		return
	}

	computed := ComputeUnread(conversations, userID)
	if computed == 0 {
		computed = fallback
	}
	c.set(gen, computed)
}

// Stop unsubscribes both event handlers and leaves the room. A seed still in
// flight when Stop is called is discarded via the generation check.
func (c *MessageCounter) Stop() {
	c.mu.Lock()
	offs := c.offs
	userID := c.userID
	c.offs = nil
	c.userID = ""
	c.gen++
	c.mu.Unlock()

	for _, off := range offs {
		off()
	}
	if userID != "" {
		c.socket.Emit(realtime.EventMessagesLeave, userID)
	}
}

func (c *MessageCounter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func (c *MessageCounter) set(gen, n int) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.count = n
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(n)
	}
}

func (c *MessageCounter) add(gen, delta int) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.count += delta
	n := c.count
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(n)
	}
}

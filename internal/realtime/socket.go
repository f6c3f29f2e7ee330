package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"vendorpanel/pkg/logger"
)

const (
	maxReconnectAttempts = 5
	reconnectDelay       = time.Second
	reconnectDelayMax    = 5 * time.Second
	maxPendingEmits      = 64
)

// frame is the wire format of the realtime channel: a named event with a
// JSON payload.
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type Handler func(payload json.RawMessage)

// Socket is one live duplex connection to the backend's realtime channel.
// Handlers run on the single read goroutine, so push events are processed
// strictly in delivery order. Emits issued while the connection is down are
// queued and flushed on (re)connect.
type Socket struct {
	url    string
	dialer *websocket.Dialer

	mu       sync.Mutex
	conn     *websocket.Conn
	handlers map[string]map[int]Handler
	nextID   int
	pending  [][]byte
	closed   bool

	done chan struct{}
}

// Dial starts connecting to url in the background and returns immediately.
// Connection failures are retried up to maxReconnectAttempts with a capped
// backoff; after that the socket stays disconnected until Close and a fresh
// Dial through the manager.
func Dial(url string) *Socket {
	s := &Socket{
		url:      url,
		dialer:   &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		handlers: make(map[string]map[int]Handler),
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *Socket) run() {
	attempts := 0
	for {
		if s.isClosed() {
			return
		}

		conn, _, err := s.dialer.Dial(s.url, nil)
		if err != nil {
			attempts++
			if attempts > maxReconnectAttempts {
				logger.Warn("Realtime connection gave up after %d attempts: %v", maxReconnectAttempts, err)
				return
			}
			delay := reconnectDelay * time.Duration(1<<uint(attempts-1))
			if delay > reconnectDelayMax {
				delay = reconnectDelayMax
			}
			select {
			case <-time.After(delay):
				continue
			case <-s.done:
				return
			}
		}
		attempts = 0

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			conn.Close()
			return
		}
		s.conn = conn
		queued := s.pending
		s.pending = nil
		// Flushed under the lock: Emit writes under s.mu too, and gorilla
		// conns do not tolerate concurrent writers.
		for _, msg := range queued {
			conn.WriteMessage(websocket.TextMessage, msg)
		}
		s.mu.Unlock()

		s.dispatch(EventConnect, nil)

		s.readLoop(conn)

		s.mu.Lock()
		s.conn = nil
		closed := s.closed
		s.mu.Unlock()
		conn.Close()
		if closed {
			return
		}
	}
}

func (s *Socket) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !s.isClosed() && websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("Realtime read error: %v", err)
			}
			return
		}

		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			// Unknown frames are dropped, not fatal.
			continue
		}
		s.dispatch(f.Event, f.Data)
	}
}

func (s *Socket) dispatch(event string, payload json.RawMessage) {
	s.mu.Lock()
	registered := s.handlers[event]
	ordered := make([]Handler, 0, len(registered))
	ids := make([]int, 0, len(registered))
	for id := range registered {
		ids = append(ids, id)
	}
	// Registration order: handler ids are monotonically increasing.
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[j] < ids[i] {
				ids[i], ids[j] = ids[j], ids[i]
			}
		}
	}
	for _, id := range ids {
		ordered = append(ordered, registered[id])
	}
	s.mu.Unlock()

	for _, fn := range ordered {
		fn(payload)
	}
}

// Emit sends a named event to the server. While disconnected the frame is
// queued (bounded) and flushed when the connection comes back.
func (s *Socket) Emit(event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg, err := json.Marshal(frame{Event: event, Data: data})
	if err != nil {
		return err
	}

	s.mu.Lock()
	conn := s.conn
	if conn == nil {
		if !s.closed && len(s.pending) < maxPendingEmits {
			s.pending = append(s.pending, msg)
		}
		s.mu.Unlock()
		return nil
	}
	err = conn.WriteMessage(websocket.TextMessage, msg)
	s.mu.Unlock()
	return err
}

// On registers a handler for event and returns its unsubscribe func, which is
// safe to call more than once.
func (s *Socket) On(event string, fn Handler) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	if s.handlers[event] == nil {
		s.handlers[event] = make(map[int]Handler)
	}
	s.handlers[event][id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.Off(event, id)
		})
	}
}

func (s *Socket) Off(event string, id int) {
	s.mu.Lock()
	if registered := s.handlers[event]; registered != nil {
		delete(registered, id)
		if len(registered) == 0 {
			delete(s.handlers, event)
		}
	}
	s.mu.Unlock()
}

func (s *Socket) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

func (s *Socket) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close tears the connection down and stops the reconnect loop.
func (s *Socket) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	conn := s.conn
	s.conn = nil
	s.pending = nil
	close(s.done)
	s.mu.Unlock()

	if conn != nil {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	}
}

package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoServer upgrades connections and reflects every frame back, recording
// what it saw.
type echoServer struct {
	mu     sync.Mutex
	frames []frame
}

func (e *echoServer) handler() http.HandlerFunc {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var f frame
			if json.Unmarshal(data, &f) == nil {
				e.mu.Lock()
				e.frames = append(e.frames, f)
				e.mu.Unlock()
			}
			conn.WriteMessage(websocket.TextMessage, data)
		}
	}
}

func (e *echoServer) received() []frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]frame, len(e.frames))
	copy(out, e.frames)
	return out
}

func startEcho(t *testing.T) (*echoServer, string) {
	t.Helper()
	echo := &echoServer{}
	server := httptest.NewServer(echo.handler())
	t.Cleanup(server.Close)
	return echo, server.URL
}

func TestSocketEmitAndDispatch(t *testing.T) {
	echo, base := startEcho(t)

	manager := NewManager(base)
	defer manager.Disconnect()
	socket := manager.Socket()

	got := make(chan string, 1)
	socket.On("greeting", func(payload json.RawMessage) {
		var s string
		json.Unmarshal(payload, &s)
		got <- s
	})

	require.NoError(t, socket.Emit("greeting", "hello"))

	select {
	case s := <-got:
		assert.Equal(t, "hello", s)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for echoed frame")
	}

	frames := echo.received()
	require.NotEmpty(t, frames)
	assert.Equal(t, "greeting", frames[0].Event)
}

func TestSocketQueuesEmitsUntilConnected(t *testing.T) {
	// Emit before the dial completes: the frame must still arrive.
	echo, base := startEcho(t)

	socket := Dial(WebsocketURL(base))
	defer socket.Close()
	require.NoError(t, socket.Emit("queued", "early"))

	require.Eventually(t, func() bool {
		for _, f := range echo.received() {
			if f.Event == "queued" {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSocketUnsubscribe(t *testing.T) {
	_, base := startEcho(t)

	manager := NewManager(base)
	defer manager.Disconnect()
	socket := manager.Socket()

	var mu sync.Mutex
	calls := 0
	off := socket.On("ping", func(json.RawMessage) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	require.NoError(t, socket.Emit("ping", 1))
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls == 1
	}, 2*time.Second, 10*time.Millisecond)

	off()
	off() // safe to call twice

	require.NoError(t, socket.Emit("ping", 2))
	time.Sleep(100 * time.Millisecond)
	mu.Lock()
	assert.Equal(t, 1, calls)
	mu.Unlock()
}

func TestManagerReusesAndRebuildsSocket(t *testing.T) {
	_, base := startEcho(t)

	manager := NewManager(base)
	first := manager.Socket()
	assert.Same(t, first, manager.Socket())

	manager.Disconnect()
	second := manager.Socket()
	defer manager.Disconnect()
	assert.NotSame(t, first, second)
}

func TestWebsocketURL(t *testing.T) {
	assert.Equal(t, "ws://localhost:5001/ws", WebsocketURL("http://localhost:5001"))
	assert.Equal(t, "wss://api.example.com/ws", WebsocketURL("https://api.example.com/"))
	assert.Equal(t, "ws://h/ws", WebsocketURL(" http://h "))
}

func TestSocketReconnectsAfterServerDrop(t *testing.T) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	var mu sync.Mutex
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		attempts++
		attempt := attempts
		mu.Unlock()

		// Attempt 1 never upgrades, so the handler below is registered
		// well before the first connection comes up during the backoff.
		if attempt == 1 {
			http.Error(w, "not yet", http.StatusServiceUnavailable)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		if attempt == 2 {
			// Drop straight away to force a redial.
			conn.Close()
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)

	socket := Dial(WebsocketURL(server.URL))
	defer socket.Close()

	connects := make(chan struct{}, 8)
	socket.On(EventConnect, func(json.RawMessage) {
		connects <- struct{}{}
	})

	// One connect per established connection: the dropped one and its
	// replacement.
	for i := 0; i < 2; i++ {
		select {
		case <-connects:
		case <-time.After(10 * time.Second):
			t.Fatalf("timed out waiting for connect %d", i+1)
		}
	}
	require.Eventually(t, socket.Connected, 5*time.Second, 10*time.Millisecond)
}

func TestSocketConcurrentEmitsDuringConnect(t *testing.T) {
	echo, base := startEcho(t)

	socket := Dial(WebsocketURL(base))
	defer socket.Close()

	// Some emits land in the pending queue, some race the flush on the
	// freshly published conn; all writes must stay serialized.
	const emits = 20
	var wg sync.WaitGroup
	for i := 0; i < emits; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			socket.Emit("burst", n)
		}(i)
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		seen := 0
		for _, f := range echo.received() {
			if f.Event == "burst" {
				seen++
			}
		}
		return seen == emits
	}, 5*time.Second, 10*time.Millisecond)
}

func TestSocketClosedStopsReconnect(t *testing.T) {
	socket := Dial("ws://127.0.0.1:1/ws")
	socket.Close()
	assert.False(t, socket.Connected())
	// Second close is a no-op.
	socket.Close()
}

package realtime

import (
	"strings"
	"sync"
)

// Manager owns the single shared realtime connection: created lazily on the
// first Socket call and reused by every subscriber until Disconnect.
type Manager struct {
	mu     sync.Mutex
	socket *Socket
	url    string
}

// NewManager builds a manager for the realtime endpoint derived from the
// backend base URL (http scheme swapped for ws, /ws path).
func NewManager(socketBaseURL string) *Manager {
	return &Manager{url: WebsocketURL(socketBaseURL)}
}

// Socket returns the live shared connection, dialing a new one if none
// exists or the previous one was torn down.
func (m *Manager) Socket() *Socket {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.socket != nil && !m.socket.isClosed() {
		return m.socket
	}
	m.socket = Dial(m.url)
	return m.socket
}

// Disconnect closes the current connection and clears the cached handle so a
// subsequent Socket call dials fresh.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	socket := m.socket
	m.socket = nil
	m.mu.Unlock()

	if socket != nil {
		socket.Close()
	}
}

// WebsocketURL converts an http(s) base URL into the ws(s) endpoint of the
// realtime channel.
func WebsocketURL(base string) string {
	u := strings.TrimRight(strings.TrimSpace(base), "/")
	switch {
	case strings.HasPrefix(u, "https://"):
		u = "wss://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		u = "ws://" + strings.TrimPrefix(u, "http://")
	}
	return u + "/ws"
}

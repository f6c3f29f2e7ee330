package stubserver

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"vendorpanel/internal/realtime"
	"vendorpanel/pkg/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *wsClient) send(event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	msg, err := json.Marshal(wsFrame{Event: event, Data: data})
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, msg)
}

// Hub tracks connected websocket clients and their room membership. Rooms
// follow the backend's convention: per-user notification and message rooms
// plus per-conversation rooms.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*wsClient]bool
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*wsClient]bool)}
}

func (h *Hub) join(room string, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*wsClient]bool)
	}
	h.rooms[room][c] = true
}

func (h *Hub) leave(room string, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if members := h.rooms[room]; members != nil {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

func (h *Hub) leaveAll(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// Push sends a named event to every member of room.
func (h *Hub) Push(room, event string, payload interface{}) {
	h.mu.RLock()
	members := make([]*wsClient, 0, len(h.rooms[room]))
	for c := range h.rooms[room] {
		members = append(members, c)
	}
	h.mu.RUnlock()

	for _, c := range members {
		if err := c.send(event, payload); err != nil {
			logger.Debug("push to room %s failed: %v", room, err)
		}
	}
}

func notificationRoom(userID string) string { return "notifications:" + userID }
func messageRoom(userID string) string      { return "messages:" + userID }
func conversationRoom(id string) string     { return "conversation:" + id }

// ServeWS upgrades the request and processes room membership events until the
// client goes away.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	client := &wsClient{conn: conn}
	defer func() {
		h.leaveAll(client)
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("websocket read: %v", err)
			}
			return nil
		}

		var f wsFrame
		if err := json.Unmarshal(data, &f); err != nil {
			continue
		}
		var id string
		if err := json.Unmarshal(f.Data, &id); err != nil {
			continue
		}

		switch f.Event {
		case realtime.EventNotificationsJoin:
			h.join(notificationRoom(id), client)
		case realtime.EventNotificationsLeave:
			h.leave(notificationRoom(id), client)
		case realtime.EventMessagesJoin:
			h.join(messageRoom(id), client)
		case realtime.EventMessagesLeave:
			h.leave(messageRoom(id), client)
		case realtime.EventJoinConversation:
			h.join(conversationRoom(id), client)
		case realtime.EventLeaveConversation:
			h.leave(conversationRoom(id), client)
		}
	}
}

// PushNotification delivers a notification:new event followed by the
// authoritative notification:count correction, mirroring the backend's
// behavior.
func (h *Hub) PushNotification(userID string, payload interface{}, count int) {
	h.Push(notificationRoom(userID), realtime.EventNotificationNew, payload)
	h.Push(notificationRoom(userID), realtime.EventNotificationCount, map[string]int{"count": count})
}

func (h *Hub) PushNotificationCount(userID string, count int) {
	h.Push(notificationRoom(userID), realtime.EventNotificationCount, map[string]int{"count": count})
}

func (h *Hub) PushNewMessage(userID string, payload interface{}) {
	h.Push(messageRoom(userID), realtime.EventNewMessage, payload)
}

func (h *Hub) PushMessageCount(userID string, count int) {
	h.Push(messageRoom(userID), realtime.EventMessageCount, map[string]int{"count": count})
}

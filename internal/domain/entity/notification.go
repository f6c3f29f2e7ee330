package entity

import "time"

const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
)

// Notification is created server-side and delivered over push; the client
// only ever flips Status, and only optimistically pending server confirmation.
type Notification struct {
	ID         string                 `json:"_id"`
	Recipient  string                 `json:"recipient"`
	Title      string                 `json:"title"`
	Message    string                 `json:"message"`
	Type       string                 `json:"type,omitempty"`
	EntityType string                 `json:"entityType,omitempty"`
	EntityID   string                 `json:"entityId,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
	Status     string                 `json:"status"`
	SentAt     time.Time              `json:"sentAt"`
	CreatedAt  *time.Time             `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time             `json:"updatedAt,omitempty"`
}

func (n *Notification) Unread() bool {
	return n.Status == NotificationUnread
}

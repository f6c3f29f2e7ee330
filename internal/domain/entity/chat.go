package entity

import "time"

// InboxUser is the trimmed user reference embedded in conversations and
// messages. Role is one of "ADMIN", "VENDOR", "CUSTOMER".
type InboxUser struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	Role         string `json:"role,omitempty"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// Participant links a user to their per-conversation read state. LastRead is
// absent until the user has opened the conversation at least once.
type Participant struct {
	User        InboxUser  `json:"user"`
	LastRead    *time.Time `json:"lastRead,omitempty"`
	UnreadCount int        `json:"unreadCount,omitempty"`
}

type LastMessage struct {
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	CreatedAt time.Time `json:"createdAt"`
}

type StoreRef struct {
	ID        string `json:"_id"`
	Name      string `json:"name,omitempty"`
	StoreLogo string `json:"storeLogo,omitempty"`
}

type Conversation struct {
	ID           string        `json:"_id"`
	Participants []Participant `json:"participants"`
	Store        *StoreRef     `json:"store,omitempty"`
	LastMessage  *LastMessage  `json:"lastMessage,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type MessageFile struct {
	URL      string `json:"url"`
	FileType string `json:"fileType"`
}

// Message is immutable once delivered.
type Message struct {
	ID        string        `json:"_id"`
	Sender    InboxUser     `json:"sender"`
	Text      string        `json:"text"`
	Files     []MessageFile `json:"files,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

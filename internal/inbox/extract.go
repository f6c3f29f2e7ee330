// Package inbox holds the unread-count reconciliation logic shared by the
// notification and message counters. The backend's payload shapes are not
// contractually fixed across producers, so every field access here goes
// through an ordered fallback cascade: first match wins, no match degrades to
// a zero value instead of an error.
package inbox

import (
	"encoding/json"
	"time"

	"vendorpanel/internal/domain/entity"
)

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func numberValue(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return s
}

// ParticipantID resolves the user identifier of a participant entry. The id
// may appear under user._id, user.id, userId or _id depending on how much the
// backend populated the reference.
func ParticipantID(participant interface{}) string {
	p := asMap(participant)
	if p == nil {
		return ""
	}
	if u := asMap(p["user"]); u != nil {
		if id := stringValue(u["_id"]); id != "" {
			return id
		}
		if id := stringValue(u["id"]); id != "" {
			return id
		}
	}
	if id := stringValue(p["userId"]); id != "" {
		return id
	}
	return stringValue(p["_id"])
}

var directUnreadKeys = []string{
	"unreadCount",
	"unreadMessages",
	"unread",
	"pendingCount",
	"messagesCount",
}

// pickDirectUnread returns the first explicit positive unread counter found on
// the participant or the conversation itself.
func pickDirectUnread(conv, participant map[string]interface{}) int {
	if participant != nil {
		if n, ok := numberValue(participant["unreadCount"]); ok && n > 0 {
			return int(n)
		}
	}
	if conv != nil {
		for _, key := range directUnreadKeys {
			if n, ok := numberValue(conv[key]); ok && n > 0 {
				return int(n)
			}
		}
	}
	return 0
}

// ParseTimestamp converts an RFC3339 string, an epoch value in milliseconds,
// or a time.Time into epoch milliseconds. Absent or unparseable values map to
// zero so timestamp comparisons degrade to "never read".
func ParseTimestamp(v interface{}) int64 {
	switch t := v.(type) {
	case string:
		if t == "" {
			return 0
		}
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil {
			return 0
		}
		return parsed.UnixMilli()
	case float64:
		return int64(t)
	case time.Time:
		return t.UnixMilli()
	}
	return 0
}

var unreadTotalKeys = []string{
	"totalUnread",
	"unreadCount",
	"unreadMessages",
	"unread",
	"count",
	"messagesCount",
}

// ExtractUnreadCount pulls a scalar unread total out of an inbox payload, for
// responses that carry the total directly instead of conversation data. It
// checks the known key names at the top level and then under meta.
func ExtractUnreadCount(payload interface{}) int {
	m := asMap(payload)
	if m == nil {
		return 0
	}
	for _, key := range unreadTotalKeys {
		if n, ok := numberValue(m[key]); ok && n >= 0 {
			return int(n)
		}
	}
	if meta := asMap(m["meta"]); meta != nil {
		for _, key := range unreadTotalKeys {
			if n, ok := numberValue(meta[key]); ok && n >= 0 {
				return int(n)
			}
		}
	}
	return 0
}

// ExtractConversations locates the conversation list inside an inbox payload:
// a bare array, or one nested under conversations, items or data.
func ExtractConversations(payload interface{}) []interface{} {
	if list, ok := payload.([]interface{}); ok {
		return list
	}
	m := asMap(payload)
	if m == nil {
		return nil
	}
	for _, key := range []string{"conversations", "items", "data"} {
		if list, ok := m[key].([]interface{}); ok {
			return list
		}
	}
	return nil
}

// MessageSenderID extracts the sender identifier from a newMessage push
// payload, which may carry the sender inline, nested, or under a data
// envelope.
func MessageSenderID(payload interface{}) string {
	m := asMap(payload)
	if m == nil {
		return ""
	}
	for _, key := range []string{"senderId", "from", "userId"} {
		if id := stringValue(m[key]); id != "" {
			return id
		}
	}
	if sender := asMap(m["sender"]); sender != nil {
		for _, key := range []string{"_id", "id", "userId"} {
			if id := stringValue(sender[key]); id != "" {
				return id
			}
		}
	}
	if data := asMap(m["data"]); data != nil {
		if id := stringValue(data["senderId"]); id != "" {
			return id
		}
		if sender := asMap(data["sender"]); sender != nil {
			if id := stringValue(sender["_id"]); id != "" {
				return id
			}
		}
	}
	return ""
}

// CountValue reads the authoritative counter out of a count push event.
// Only a non-negative numeric count field qualifies.
func CountValue(payload interface{}) (int, bool) {
	m := asMap(payload)
	if m == nil {
		return 0, false
	}
	if n, ok := numberValue(m["count"]); ok && n >= 0 {
		return int(n), true
	}
	return 0, false
}

// NormalizeNotification resolves the four payload shapes notification:new
// events arrive in: the item itself, { notification: item }, { data: item },
// or { data: { notification: item } }. A map with an _id counts as an item.
// Anything else is discarded.
func NormalizeNotification(payload interface{}) (*entity.Notification, bool) {
	item := pickNotificationMap(payload)
	if item == nil {
		return nil, false
	}
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, false
	}
	var n entity.Notification
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, false
	}
	return &n, true
}

func pickNotificationMap(payload interface{}) map[string]interface{} {
	m := asMap(payload)
	if m == nil {
		return nil
	}
	if stringValue(m["_id"]) != "" {
		return m
	}
	if item := asMap(m["notification"]); item != nil && stringValue(item["_id"]) != "" {
		return item
	}
	if data := asMap(m["data"]); data != nil {
		if stringValue(data["_id"]) != "" {
			return data
		}
		if item := asMap(data["notification"]); item != nil && stringValue(item["_id"]) != "" {
			return item
		}
	}
	return nil
}

package inbox

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func conversation(fields map[string]interface{}) map[string]interface{} {
	return fields
}

func participant(userID string, fields map[string]interface{}) map[string]interface{} {
	p := map[string]interface{}{
		"user": map[string]interface{}{"_id": userID},
	}
	for k, v := range fields {
		p[k] = v
	}
	return p
}

func TestComputeUnreadEmptyInput(t *testing.T) {
	assert.Equal(t, 0, ComputeUnread(nil, "user-1"))
	assert.Equal(t, 0, ComputeUnread([]interface{}{}, "user-1"))
	assert.Equal(t, 0, ComputeUnread([]interface{}{}, ""))
}

func TestComputeUnreadEmptyUserID(t *testing.T) {
	convs := []interface{}{
		conversation(map[string]interface{}{
			"participants": []interface{}{participant("user-1", map[string]interface{}{"unreadCount": float64(5)})},
		}),
	}
	assert.Equal(t, 0, ComputeUnread(convs, ""))
}

func TestComputeUnreadExplicitCounterWins(t *testing.T) {
	// Last message is older than the read mark, but the explicit counter
	// takes precedence over the timestamp comparison.
	convs := []interface{}{
		conversation(map[string]interface{}{
			"participants": []interface{}{
				participant("user-1", map[string]interface{}{
					"unreadCount": float64(3),
					"lastRead":    "2024-01-02T00:00:00Z",
				}),
			},
			"lastMessage": map[string]interface{}{"createdAt": "2024-01-01T00:00:00Z"},
		}),
	}
	assert.Equal(t, 3, ComputeUnread(convs, "user-1"))
}

func TestComputeUnreadTimestampFallbackUnread(t *testing.T) {
	convs := []interface{}{
		conversation(map[string]interface{}{
			"participants": []interface{}{
				participant("user-1", map[string]interface{}{"lastRead": "2024-01-01T00:00:00Z"}),
			},
			"lastMessage": map[string]interface{}{"createdAt": "2024-01-02T00:00:00Z"},
		}),
	}
	assert.Equal(t, 1, ComputeUnread(convs, "user-1"))
}

func TestComputeUnreadTimestampFallbackRead(t *testing.T) {
	convs := []interface{}{
		conversation(map[string]interface{}{
			"participants": []interface{}{
				participant("user-1", map[string]interface{}{"lastRead": "2024-01-01T00:00:00Z"}),
			},
			"lastMessage": map[string]interface{}{"createdAt": "2023-12-31T00:00:00Z"},
		}),
	}
	assert.Equal(t, 0, ComputeUnread(convs, "user-1"))
}

func TestComputeUnreadSumsAcrossConversations(t *testing.T) {
	convs := []interface{}{
		conversation(map[string]interface{}{
			"participants": []interface{}{
				participant("user-1", map[string]interface{}{"unreadCount": float64(2)}),
			},
		}),
		conversation(map[string]interface{}{
			"participants": []interface{}{
				participant("user-1", map[string]interface{}{"lastRead": "2024-01-01T00:00:00Z"}),
			},
			"lastMessage": map[string]interface{}{"createdAt": "2024-01-02T00:00:00Z"},
		}),
	}
	assert.Equal(t, 3, ComputeUnread(convs, "user-1"))
}

func TestComputeUnreadMissingParticipant(t *testing.T) {
	convs := []interface{}{
		conversation(map[string]interface{}{
			"participants": []interface{}{
				participant("someone-else", map[string]interface{}{"unreadCount": float64(4)}),
			},
		}),
	}
	// Another participant's counter never counts against user-1.
	assert.Equal(t, 0, ComputeUnread(convs, "user-1"))
}

func TestComputeUnreadConversationLevelCounter(t *testing.T) {
	convs := []interface{}{
		conversation(map[string]interface{}{
			"participants":   []interface{}{participant("user-1", nil)},
			"unreadMessages": float64(7),
		}),
	}
	assert.Equal(t, 7, ComputeUnread(convs, "user-1"))
}

func TestComputeUnreadTimestampFromUpdatedAt(t *testing.T) {
	// No lastMessage summary at all: updatedAt stands in for the latest
	// activity timestamp.
	convs := []interface{}{
		conversation(map[string]interface{}{
			"participants": []interface{}{
				participant("user-1", map[string]interface{}{"lastRead": "2024-01-01T00:00:00Z"}),
			},
			"updatedAt": "2024-01-03T00:00:00Z",
		}),
	}
	assert.Equal(t, 1, ComputeUnread(convs, "user-1"))
}

func TestComputeUnreadIgnoresMalformedEntries(t *testing.T) {
	convs := []interface{}{
		"not a conversation",
		float64(42),
		nil,
		conversation(map[string]interface{}{
			"participants": []interface{}{participant("user-1", map[string]interface{}{"unreadCount": float64(1)})},
		}),
	}
	assert.Equal(t, 1, ComputeUnread(convs, "user-1"))
}

func TestComputeUnreadNoTimestampsAtAll(t *testing.T) {
	convs := []interface{}{
		conversation(map[string]interface{}{
			"participants": []interface{}{participant("user-1", nil)},
		}),
	}
	assert.Equal(t, 0, ComputeUnread(convs, "user-1"))
}

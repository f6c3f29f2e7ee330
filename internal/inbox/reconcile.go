package inbox

// ComputeUnread derives the total unread message count from an inbox
// snapshot. Per conversation: an explicit unread counter on the matching
// participant or on the conversation wins outright; otherwise the latest
// message timestamp is compared against the participant's last-read mark and
// a strictly newer message contributes exactly 1.
//
// The timestamp fallback deliberately counts at most one unread item per
// conversation: when no explicit counter is present the snapshot does not say
// how many messages arrived after the read mark, so 1 is the only honest
// lower bound. The authoritative message:count push corrects any drift.
func ComputeUnread(conversations []interface{}, userID string) int {
	if userID == "" {
		return 0
	}

	total := 0
	for _, c := range conversations {
		conv := asMap(c)
		if conv == nil {
			continue
		}

		var participant map[string]interface{}
		if list, ok := conv["participants"].([]interface{}); ok {
			for _, p := range list {
				if ParticipantID(p) == userID {
					participant = asMap(p)
					break
				}
			}
		}

		if direct := pickDirectUnread(conv, participant); direct > 0 {
			total += direct
			continue
		}

		var lastRead int64
		if participant != nil {
			lastRead = ParseTimestamp(participant["lastRead"])
		}
		if lastRead == 0 {
			lastRead = ParseTimestamp(conv["lastRead"])
		}
		if lastRead == 0 {
			lastRead = ParseTimestamp(conv["lastSeen"])
		}

		var lastMessage int64
		if lm := asMap(conv["lastMessage"]); lm != nil {
			lastMessage = ParseTimestamp(lm["createdAt"])
		}
		if lastMessage == 0 {
			lastMessage = ParseTimestamp(conv["lastMessageAt"])
		}
		if lastMessage == 0 {
			lastMessage = ParseTimestamp(conv["updatedAt"])
		}

		if lastMessage > lastRead && lastMessage > 0 {
			total++
		}
	}

	return total
}

package realtime

// Event names exchanged with the backend's realtime channel. Client to
// server events join and leave per-user or per-conversation rooms; server to
// client events push new items and authoritative counter corrections.
const (
	EventNotificationsJoin  = "notifications:join"
	EventNotificationsLeave = "notifications:leave"
	EventMessagesJoin       = "messages:join"
	EventMessagesLeave      = "messages:leave"
	EventJoinConversation   = "joinConversation"
	EventLeaveConversation  = "leaveConversation"

	EventNotificationNew   = "notification:new"
	EventNotificationCount = "notification:count"
	EventNewMessage        = "newMessage"
	EventMessageCount      = "message:count"

	// EventConnect is a synthetic event dispatched locally whenever the
	// underlying connection is (re)established.
	EventConnect = "connect"
)

package client

import (
	"context"
	"encoding/json"
	"net/url"

	"vendorpanel/internal/domain/entity"
)

type ChatService struct {
	client *Client
}

func (s *ChatService) StartConversation(ctx context.Context, storeID string) (*entity.Conversation, error) {
	var conversation entity.Conversation
	body := map[string]string{"storeId": storeID}
	if err := s.client.post(ctx, "/chat/conversations", body, &conversation); err != nil {
		return nil, err
	}
	return &conversation, nil
}

// Inbox returns the typed conversation snapshot.
func (s *ChatService) Inbox(ctx context.Context) ([]entity.Conversation, error) {
	var conversations []entity.Conversation
	if err := s.client.get(ctx, "/chat/inbox", nil, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// InboxRaw returns the inbox payload as decoded JSON, preserving whatever
// shape the backend used. The unread reconciliation works on this form
// because the snapshot's field names drift across backend versions.
func (s *ChatService) InboxRaw(ctx context.Context) (interface{}, error) {
	var raw json.RawMessage
	if err := s.client.get(ctx, "/chat/inbox", nil, &raw); err != nil {
		return nil, err
	}
	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *ChatService) Messages(ctx context.Context, conversationID string) ([]entity.Message, error) {
	var messages []entity.Message
	path := "/chat/conversations/" + url.PathEscape(conversationID) + "/messages"
	if err := s.client.get(ctx, path, nil, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage posts a message as multipart: a text field plus zero or more
// chatFile attachments. The field names are fixed by the backend.
func (s *ChatService) SendMessage(ctx context.Context, conversationID, text string, files ...File) (*entity.Message, error) {
	f := &form{}
	f.addField("text", text)
	for _, file := range files {
		f.addFile("chatFile", file)
	}

	var message entity.Message
	path := "/chat/conversations/" + url.PathEscape(conversationID) + "/messages"
	if err := s.client.doMultipart(ctx, "POST", path, f, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (s *ChatService) DeleteConversations(ctx context.Context, conversationIDs []string) error {
	body := map[string]interface{}{"conversationIds": conversationIDs}
	return s.client.delete(ctx, "/chat/conversations", body, nil)
}

func (s *ChatService) MarkRead(ctx context.Context, conversationIDs []string) error {
	body := map[string]interface{}{"conversationIds": conversationIDs}
	return s.client.patch(ctx, "/chat/conversations/read", body, nil)
}

package client

import (
	"context"
	"net/url"

	"vendorpanel/internal/domain/entity"
	"vendorpanel/pkg/response"
)

type NotificationService struct {
	client *Client
}

type NotificationsPage struct {
	Notifications []entity.Notification `json:"notifications"`
	Pagination    *response.Pagination  `json:"pagination,omitempty"`
}

func (s *NotificationService) List(ctx context.Context) (*NotificationsPage, error) {
	var page NotificationsPage
	if err := s.client.get(ctx, "/notifications", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	return s.client.patch(ctx, "/notifications/mark-all", nil, nil)
}

type notificationStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=read unread"`
}

func (s *NotificationService) MarkStatus(ctx context.Context, id, status string) error {
	body := notificationStatusUpdate{Status: status}
	if err := s.client.validate.Struct(body); err != nil {
		return validationError(err)
	}
	return s.client.patch(ctx, "/notifications/"+url.PathEscape(id)+"/status", body, nil)
}

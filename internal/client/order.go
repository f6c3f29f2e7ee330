package client

import (
	"context"
	"net/url"

	"vendorpanel/internal/domain/entity"
	"vendorpanel/pkg/response"
)

type OrderService struct {
	client *Client
}

type orderPage struct {
	Items      []entity.Order      `json:"items"`
	Orders     []entity.Order      `json:"orders"`
	Pagination response.Pagination `json:"pagination"`
}

func (s *OrderService) List(ctx context.Context, page, limit int) ([]entity.Order, *response.Pagination, error) {
	var result orderPage
	if err := s.client.get(ctx, "/vendor/orders", pageQuery(page, limit), &result); err != nil {
		return nil, nil, err
	}
	items := result.Items
	if items == nil {
		items = result.Orders
	}
	return items, &result.Pagination, nil
}

type orderStatusUpdate struct {
	OrderStatus string `json:"orderStatus" validate:"required,oneof='items discounted' 'in progress' shipped delivered"`
}

func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*entity.Order, error) {
	body := orderStatusUpdate{OrderStatus: status}
	if err := s.client.validate.Struct(body); err != nil {
		return nil, validationError(err)
	}
	var order entity.Order
	if err := s.client.patch(ctx, "/vendor/"+url.PathEscape(id)+"/status", body, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

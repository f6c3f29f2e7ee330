package client

import (
	"context"

	"vendorpanel/internal/domain/entity"
	"vendorpanel/pkg/response"
)

type CustomerService struct {
	client *Client
}

type customerPage struct {
	Items      []entity.Customer   `json:"items"`
	Customers  []entity.Customer   `json:"customers"`
	Pagination response.Pagination `json:"pagination"`
}

func (s *CustomerService) List(ctx context.Context, page, limit int) ([]entity.Customer, *response.Pagination, error) {
	var result customerPage
	if err := s.client.get(ctx, "/vendor/customers", pageQuery(page, limit), &result); err != nil {
		return nil, nil, err
	}
	items := result.Items
	if items == nil {
		items = result.Customers
	}
	return items, &result.Pagination, nil
}

package client

import (
	"context"

	"vendorpanel/internal/domain/entity"
	"vendorpanel/pkg/response"
)

type CategoryService struct {
	client *Client
}

type categoryPage struct {
	Items      []entity.Category   `json:"items"`
	Categories []entity.Category   `json:"categories"`
	Pagination response.Pagination `json:"pagination"`
}

func (s *CategoryService) List(ctx context.Context, page, limit int) ([]entity.Category, *response.Pagination, error) {
	var result categoryPage
	if err := s.client.get(ctx, "/category", pageQuery(page, limit), &result); err != nil {
		return nil, nil, err
	}
	items := result.Items
	if items == nil {
		items = result.Categories
	}
	return items, &result.Pagination, nil
}

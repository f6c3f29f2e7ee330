package client

import (
	"context"

	"vendorpanel/internal/domain/entity"
	"vendorpanel/pkg/response"
)

type CommissionService struct {
	client *Client
}

type commissionPage struct {
	Items       []entity.Commission `json:"items"`
	Commissions []entity.Commission `json:"commissions"`
	Pagination  response.Pagination `json:"pagination"`
}

// My lists the commissions charged against the current vendor.
func (s *CommissionService) My(ctx context.Context, page, limit int) ([]entity.Commission, *response.Pagination, error) {
	var result commissionPage
	if err := s.client.get(ctx, "/commissions/my", pageQuery(page, limit), &result); err != nil {
		return nil, nil, err
	}
	items := result.Items
	if items == nil {
		items = result.Commissions
	}
	return items, &result.Pagination, nil
}

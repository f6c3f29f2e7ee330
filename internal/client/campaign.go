package client

import (
	"context"
	"net/url"

	"vendorpanel/internal/domain/entity"
	"vendorpanel/pkg/response"
)

type CampaignService struct {
	client *Client
}

type CampaignInput struct {
	Name          string   `json:"name,omitempty"`
	DiscountType  string   `json:"discountType" validate:"required,oneof=PERCENT FIXED"`
	DiscountValue float64  `json:"discountValue" validate:"required,gt=0"`
	StartAt       string   `json:"startAt" validate:"required"`
	EndAt         string   `json:"endAt" validate:"required"`
	Status        string   `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE EXPIRED"`
	ProductIDs    []string `json:"productIds,omitempty"`
}

// CampaignUpdate carries a partial update; nil fields are left untouched.
type CampaignUpdate struct {
	Name          *string  `json:"name,omitempty"`
	DiscountType  *string  `json:"discountType,omitempty" validate:"omitempty,oneof=PERCENT FIXED"`
	DiscountValue *float64 `json:"discountValue,omitempty" validate:"omitempty,gt=0"`
	StartAt       *string  `json:"startAt,omitempty"`
	EndAt         *string  `json:"endAt,omitempty"`
	Status        *string  `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE EXPIRED"`
}

type campaignPage struct {
	Items      []entity.Campaign   `json:"items"`
	Campaigns  []entity.Campaign   `json:"campaigns"`
	Pagination response.Pagination `json:"pagination"`
}

func (s *CampaignService) Create(ctx context.Context, input CampaignInput) (*entity.Campaign, error) {
	if err := s.client.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}
	var campaign entity.Campaign
	if err := s.client.post(ctx, "/vendor/big-save-campaigns", input, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (s *CampaignService) List(ctx context.Context, page, limit int, status string) ([]entity.Campaign, *response.Pagination, error) {
	q := pageQuery(page, limit)
	if status != "" {
		q.Set("status", status)
	}
	var result campaignPage
	if err := s.client.get(ctx, "/vendor/big-save-campaigns", q, &result); err != nil {
		return nil, nil, err
	}
	items := result.Items
	if items == nil {
		items = result.Campaigns
	}
	return items, &result.Pagination, nil
}

func (s *CampaignService) Get(ctx context.Context, id string) (*entity.Campaign, error) {
	var campaign entity.Campaign
	if err := s.client.get(ctx, "/vendor/big-save-campaigns/"+url.PathEscape(id), nil, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (s *CampaignService) Update(ctx context.Context, id string, input CampaignUpdate) (*entity.Campaign, error) {
	if err := s.client.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}
	var campaign entity.Campaign
	if err := s.client.patch(ctx, "/vendor/big-save-campaigns/"+url.PathEscape(id), input, &campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (s *CampaignService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/vendor/big-save-campaigns/"+url.PathEscape(id), nil, nil)
}

func (s *CampaignService) ActiveProducts(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := s.client.get(ctx, "/vendor/big-save-campaigns/active/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CampaignService) AttachProducts(ctx context.Context, id string, productIDs []string) error {
	body := map[string]interface{}{"productIds": productIDs}
	return s.client.post(ctx, "/vendor/big-save-campaigns/"+url.PathEscape(id)+"/products", body, nil)
}

func (s *CampaignService) RemoveProduct(ctx context.Context, id, productID string) error {
	path := "/vendor/big-save-campaigns/" + url.PathEscape(id) + "/products/" + url.PathEscape(productID)
	return s.client.delete(ctx, path, nil, nil)
}

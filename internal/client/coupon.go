package client

import (
	"context"
	"net/url"

	"vendorpanel/internal/domain/entity"
	"vendorpanel/pkg/response"
)

type CouponService struct {
	client *Client
}

type CouponInput struct {
	Code          string  `json:"code" validate:"required"`
	DiscountType  string  `json:"discountType,omitempty" validate:"omitempty,oneof=PERCENT FIXED"`
	DiscountValue float64 `json:"discountValue,omitempty"`
	ExpiresAt     string  `json:"expiresAt,omitempty"`

	// Image, when set, switches the request to multipart.
	Image *File `json:"-"`
}

func (c *CouponInput) form() *form {
	f := &form{}
	f.addField("code", c.Code)
	f.addOptionalField("discountType", c.DiscountType)
	if c.DiscountValue > 0 {
		f.addField("discountValue", marshalJSONField(c.DiscountValue))
	}
	f.addOptionalField("expiresAt", c.ExpiresAt)
	f.addFile("image", *c.Image)
	return f
}

type couponPage struct {
	Items      []entity.Coupon     `json:"items"`
	Promocodes []entity.Coupon     `json:"promocodes"`
	Pagination response.Pagination `json:"pagination"`
}

func (s *CouponService) List(ctx context.Context, page, limit int) ([]entity.Coupon, *response.Pagination, error) {
	var result couponPage
	if err := s.client.get(ctx, "/promocode", pageQuery(page, limit), &result); err != nil {
		return nil, nil, err
	}
	items := result.Items
	if items == nil {
		items = result.Promocodes
	}
	return items, &result.Pagination, nil
}

func (s *CouponService) Get(ctx context.Context, id string) (*entity.Coupon, error) {
	var coupon entity.Coupon
	if err := s.client.get(ctx, "/promocode/"+url.PathEscape(id), nil, &coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (s *CouponService) Create(ctx context.Context, input CouponInput) (*entity.Coupon, error) {
	if err := s.client.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}
	var coupon entity.Coupon
	if input.Image != nil {
		if err := s.client.doMultipart(ctx, "POST", "/promocode", input.form(), &coupon); err != nil {
			return nil, err
		}
		return &coupon, nil
	}
	if err := s.client.post(ctx, "/promocode", input, &coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (s *CouponService) Update(ctx context.Context, id string, input CouponInput) (*entity.Coupon, error) {
	if err := s.client.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}
	var coupon entity.Coupon
	if input.Image != nil {
		if err := s.client.doMultipart(ctx, "PUT", "/promocode/"+url.PathEscape(id), input.form(), &coupon); err != nil {
			return nil, err
		}
		return &coupon, nil
	}
	if err := s.client.put(ctx, "/promocode/"+url.PathEscape(id), input, &coupon); err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (s *CouponService) Delete(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/promocode/"+url.PathEscape(id), nil, nil)
}

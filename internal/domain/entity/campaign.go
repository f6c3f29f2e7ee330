package entity

import "time"

const (
	CampaignActive   = "ACTIVE"
	CampaignInactive = "INACTIVE"
	CampaignExpired  = "EXPIRED"

	DiscountPercent = "PERCENT"
	DiscountFixed   = "FIXED"
)

type Campaign struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name,omitempty"`
	DiscountType  string    `json:"discountType"`
	DiscountValue float64   `json:"discountValue"`
	StartAt       time.Time `json:"startAt"`
	EndAt         time.Time `json:"endAt"`
	Status        string    `json:"status,omitempty"`
	ProductIDs    []string  `json:"productIds,omitempty"`
	Products      []Product `json:"products,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Coupon struct {
	ID            string     `json:"_id"`
	Code          string     `json:"code"`
	DiscountType  string     `json:"discountType,omitempty"`
	DiscountValue float64    `json:"discountValue,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
	Active        bool       `json:"active,omitempty"`
}

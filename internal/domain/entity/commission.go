package entity

import "time"

// Commission rows come back loosely typed: rate and amount may be numbers or
// preformatted strings depending on the producing service.
type Commission struct {
	ID        string      `json:"_id"`
	Product   string      `json:"product,omitempty"`
	Sales     int         `json:"sales,omitempty"`
	Rate      interface{} `json:"rate,omitempty"`
	Amount    interface{} `json:"amount,omitempty"`
	Status    string      `json:"status,omitempty"`
	CreatedAt *time.Time  `json:"createdAt,omitempty"`
}

type Earnings struct {
	TotalEarnings   float64 `json:"totalEarnings"`
	PendingEarnings float64 `json:"pendingEarnings,omitempty"`
	PaidEarnings    float64 `json:"paidEarnings,omitempty"`
	Currency        string  `json:"currency,omitempty"`
}

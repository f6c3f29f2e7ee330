package entity

import "time"

// Order statuses as the backend spells them. The timeline on the dashboard
// collapses a few backend spellings onto the same step.
const (
	OrderItemsDiscounted = "items discounted"
	OrderInProgress      = "in progress"
	OrderShipped         = "shipped"
	OrderDelivered       = "delivered"
)

type Order struct {
	ID           string    `json:"_id"`
	ProductTitle string    `json:"productTitle"`
	CustomerName string    `json:"customerName"`
	TotalAmount  float64   `json:"totalAmount"`
	OrderStatus  string    `json:"orderStatus"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Customer struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	TotalOrders int        `json:"totalOrders,omitempty"`
	TotalSpent  float64    `json:"totalSpent,omitempty"`
	LastOrderAt *time.Time `json:"lastOrderAt,omitempty"`
}

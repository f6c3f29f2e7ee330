package entity

import "time"

type User struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role,omitempty"`
	ProfileImage string    `json:"profileImage,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Store        *StoreRef `json:"store,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Subscription struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Interval string  `json:"interval,omitempty"`
	Features []string `json:"features,omitempty"`
}

type DashboardOverview struct {
	TotalSales    float64 `json:"totalSales"`
	TotalOrders   int     `json:"totalOrders"`
	TotalProducts int     `json:"totalProducts"`
	TotalRevenue  float64 `json:"totalRevenue,omitempty"`
}

type OrderAnalyticsPoint struct {
	Period string  `json:"period"`
	Orders int     `json:"orders"`
	Sales  float64 `json:"sales,omitempty"`
}

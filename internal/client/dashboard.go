package client

import (
	"context"

	"vendorpanel/internal/domain/entity"
)

type DashboardService struct {
	client *Client
}

func (s *DashboardService) Overview(ctx context.Context) (*entity.DashboardOverview, error) {
	var overview entity.DashboardOverview
	if err := s.client.get(ctx, "/vendor/dashboard/overview", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (s *DashboardService) OrderAnalytics(ctx context.Context) ([]entity.OrderAnalyticsPoint, error) {
	var points []entity.OrderAnalyticsPoint
	if err := s.client.get(ctx, "/vendor/dashboard/analytics/orders", nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (s *DashboardService) Earnings(ctx context.Context) (*entity.Earnings, error) {
	var earnings entity.Earnings
	if err := s.client.get(ctx, "/vendor/earnings", nil, &earnings); err != nil {
		return nil, err
	}
	return &earnings, nil
}

func (s *DashboardService) Subscriptions(ctx context.Context) ([]entity.Subscription, error) {
	var subscriptions []entity.Subscription
	if err := s.client.get(ctx, "/subscription/get-all", nil, &subscriptions); err != nil {
		return nil, err
	}
	return subscriptions, nil
}

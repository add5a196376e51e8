package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shopsight/shopsight/internal/analytics/domain"
	saledomain "github.com/shopsight/shopsight/internal/sale/domain"
)

// DashboardStats computes the scalar summary block: totals, month-over-month
// revenue growth and average order value.
func (s *Service) DashboardStats(ctx context.Context) (domain.DashboardStats, error) {
	events, err := s.sales.ListAll(ctx, s.db)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	orders, err := s.orders.ListAll(ctx, s.db)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	totalCustomers, err := s.customers.Count(ctx, s.db)
	if err != nil {
		return domain.DashboardStats{}, err
	}
	totalProducts, err := s.products.Count(ctx, s.db)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	totalSales := decimal.Zero
	for _, ev := range events {
		totalSales = totalSales.Add(ev.Amount)
	}

	avgOrderValue := decimal.Zero
	if len(orders) > 0 {
		orderTotal := decimal.Zero
		for _, o := range orders {
			orderTotal = orderTotal.Add(o.Total)
		}
		avgOrderValue = orderTotal.Div(decimal.NewFromInt(int64(len(orders))))
	}

	stats := domain.DashboardStats{
		TotalSales:        totalSales.InexactFloat64(),
		TotalCustomers:    totalCustomers,
		TotalOrders:       int64(len(orders)),
		TotalProducts:     totalProducts,
		RevenueGrowth:     s.revenueGrowth(events),
		AverageOrderValue: avgOrderValue.InexactFloat64(),
	}
	return stats, nil
}

// revenueGrowth compares the running calendar month against the full
// preceding month. A zero previous-month total floors the denominator to 1
// so the ratio stays defined on fresh datasets.
func (s *Service) revenueGrowth(events []saledomain.SaleEvent) float64 {
	now := s.clock.Now().UTC()
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	previousStart := currentStart.AddDate(0, -1, 0)

	current := decimal.Zero
	previous := decimal.Zero
	for _, ev := range events {
		ts := ev.OccurredAt.UTC()
		switch {
		case !ts.Before(currentStart) && !ts.After(now):
			current = current.Add(ev.Amount)
		case !ts.Before(previousStart) && ts.Before(currentStart):
			previous = previous.Add(ev.Amount)
		}
	}

	denominator := previous
	if denominator.IsZero() {
		denominator = decimal.NewFromInt(1)
	}

	growth := current.Sub(previous).Div(denominator).Mul(decimal.NewFromInt(100))
	return growth.InexactFloat64()
}

package service

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/shopsight/shopsight/internal/analytics/domain"
	orderdomain "github.com/shopsight/shopsight/internal/order/domain"
)

const maxInsights = 3

const (
	inventoryConfidence = 0.95
	salesConfidence     = 0.90
	customersConfidence = 0.85
)

const topCategorySentinel = "N/A"

// Insights renders the fixed insight templates from precomputed aggregates:
// low-stock product count, top-selling category and customer retention rate.
func (s *Service) Insights(ctx context.Context, req domain.InsightsRequest) ([]domain.Insight, error) {
	count := req.Count
	if count < 0 {
		count = 0
	}
	if count > maxInsights {
		count = maxInsights
	}

	products, err := s.products.ListAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	totalCustomers, err := s.customers.Count(ctx, s.db)
	if err != nil {
		return nil, err
	}

	threshold := s.insights.Get().LowStockThreshold
	lowStock := 0
	for _, p := range products {
		if p.Stock < threshold {
			lowStock++
		}
	}

	topCategory := topSellingCategory(buildProductRows(products, orders))
	retention := retentionRate(orders, totalCustomers)

	insights := []domain.Insight{
		{
			Type:           domain.InsightInventory,
			Title:          fmt.Sprintf("%d Products Low in Stock", lowStock),
			Description:    fmt.Sprintf("You currently have %d products with inventory below %d units.", lowStock, threshold),
			Recommendation: "Consider restocking these items soon to avoid stockouts and lost sales.",
			Confidence:     inventoryConfidence,
		},
		{
			Type:           domain.InsightSales,
			Title:          fmt.Sprintf("%s is Your Top Performing Category", topCategory),
			Description:    fmt.Sprintf("Products in the %s category are generating the most sales.", topCategory),
			Recommendation: "Consider expanding your product line in this category or running promotions to boost sales further.",
			Confidence:     salesConfidence,
		},
		{
			Type:           domain.InsightCustomers,
			Title:          fmt.Sprintf("%.1f%% Customer Retention Rate", retention),
			Description:    fmt.Sprintf("Your repeat customer rate is %.1f%%. This is the percentage of customers who have made more than one purchase.", retention),
			Recommendation: "Implement a loyalty program to increase customer retention and lifetime value.",
			Confidence:     customersConfidence,
		},
	}

	return insights[:count], nil
}

// topSellingCategory picks the category with the highest matched-order count.
// Ties resolve to the first category encountered; an empty product set yields
// the sentinel.
func topSellingCategory(rows []productRow) string {
	if len(rows) == 0 {
		return topCategorySentinel
	}

	totals := make(map[string]int)
	order := make([]string, 0)
	for _, row := range rows {
		if _, ok := totals[row.product.Category]; !ok {
			order = append(order, row.product.Category)
		}
		totals[row.product.Category] += row.sales
	}

	top := order[0]
	for _, category := range order[1:] {
		if totals[category] > totals[top] {
			top = category
		}
	}
	return top
}

// retentionRate is the share of customers with more than one order. A store
// with no customers has a rate of 0.
func retentionRate(orders []orderdomain.Order, totalCustomers int64) float64 {
	if totalCustomers <= 0 {
		return 0
	}

	counts := make(map[snowflake.ID]int, totalCustomers)
	for _, o := range orders {
		counts[o.CustomerID]++
	}
	repeat := 0
	for _, n := range counts {
		if n > 1 {
			repeat++
		}
	}
	return float64(repeat) / float64(totalCustomers) * 100
}

package service

import (
	"context"
	"sort"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"github.com/shopsight/shopsight/internal/analytics/domain"
	customerdomain "github.com/shopsight/shopsight/internal/customer/domain"
	orderdomain "github.com/shopsight/shopsight/internal/order/domain"
	productdomain "github.com/shopsight/shopsight/internal/product/domain"
)

// sortAndLimit stably sorts rows with before and truncates to limit. The
// stable sort keeps encounter order as the tiebreak, so repeated calls on
// the same snapshot produce identical output.
func sortAndLimit[T any](rows []T, limit int, before func(a, b T) bool) []T {
	sort.SliceStable(rows, func(i, j int) bool { return before(rows[i], rows[j]) })
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

type productRow struct {
	product productdomain.Product
	sales   int
}

// buildProductRows left-outer joins products against orders. An order counts
// once per product it references, regardless of how many line items match.
func buildProductRows(products []productdomain.Product, orders []orderdomain.Order) []productRow {
	counts := make(map[snowflake.ID]int, len(products))
	for _, o := range orders {
		seen := make(map[snowflake.ID]struct{}, len(o.Items))
		for _, item := range o.Items {
			if _, ok := seen[item.ProductID]; ok {
				continue
			}
			seen[item.ProductID] = struct{}{}
			counts[item.ProductID]++
		}
	}

	rows := make([]productRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, productRow{product: p, sales: counts[p.ID]})
	}
	return rows
}

func productBefore(field domain.ProductSortField) func(a, b productRow) bool {
	switch field {
	case domain.ProductSortPrice:
		return func(a, b productRow) bool { return a.product.Price.GreaterThan(b.product.Price) }
	case domain.ProductSortStock:
		return func(a, b productRow) bool { return a.product.Stock > b.product.Stock }
	case domain.ProductSortName:
		return func(a, b productRow) bool { return a.product.Name > b.product.Name }
	default:
		return func(a, b productRow) bool { return a.sales > b.sales }
	}
}

// TopProducts ranks products by a derived field and truncates to the
// requested limit.
func (s *Service) TopProducts(ctx context.Context, req domain.TopProductsRequest) ([]domain.ProductSummary, error) {
	products, err := s.products.ListAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	rows := buildProductRows(products, orders)
	rows = sortAndLimit(rows, normalizeLimit(req.Limit), productBefore(req.SortBy))

	out := make([]domain.ProductSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.ProductSummary{
			ID:       row.product.ID.String(),
			Name:     row.product.Name,
			Price:    row.product.Price.InexactFloat64(),
			Stock:    row.product.Stock,
			Category: row.product.Category,
			Sales:    row.sales,
		})
	}
	return out, nil
}

type orderRow struct {
	order    orderdomain.Order
	customer customerdomain.Customer
}

// buildOrderRows joins orders against their customer. An order whose
// customer_id does not resolve is dropped, never faulted on.
func buildOrderRows(orders []orderdomain.Order, customers []customerdomain.Customer) []orderRow {
	byID := make(map[snowflake.ID]customerdomain.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		c, ok := byID[o.CustomerID]
		if !ok {
			continue
		}
		rows = append(rows, orderRow{order: o, customer: c})
	}
	return rows
}

func orderBefore(field domain.OrderSortField, direction domain.SortDirection) func(a, b orderRow) bool {
	var desc func(a, b orderRow) bool
	switch field {
	case domain.OrderSortTotal:
		desc = func(a, b orderRow) bool { return a.order.Total.GreaterThan(b.order.Total) }
	case domain.OrderSortStatus:
		desc = func(a, b orderRow) bool { return a.order.Status > b.order.Status }
	case domain.OrderSortItems:
		desc = func(a, b orderRow) bool { return len(a.order.Items) > len(b.order.Items) }
	default:
		desc = func(a, b orderRow) bool { return a.order.PlacedAt.After(b.order.PlacedAt) }
	}
	if direction == domain.SortAsc {
		return func(a, b orderRow) bool { return desc(b, a) }
	}
	return desc
}

// RecentOrders returns orders with their customer attached, sorted by the
// requested field and direction.
func (s *Service) RecentOrders(ctx context.Context, req domain.RecentOrdersRequest) ([]domain.OrderSummary, error) {
	orders, err := s.orders.ListAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.ListAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	rows := buildOrderRows(orders, customers)
	rows = sortAndLimit(rows, normalizeLimit(req.Limit), orderBefore(req.SortBy, req.Direction))

	out := make([]domain.OrderSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.OrderSummary{
			ID:           row.order.ID.String(),
			CustomerID:   row.customer.ID.String(),
			CustomerName: row.customer.Name,
			Date:         row.order.PlacedAt.UTC().Format(time.RFC3339),
			Total:        row.order.Total.InexactFloat64(),
			Status:       row.order.Status,
			Items:        len(row.order.Items),
		})
	}
	return out, nil
}

type customerRow struct {
	customer    customerdomain.Customer
	totalOrders int
	totalSpent  decimal.Decimal
	lastOrder   *time.Time
}

// buildCustomerRows left-outer joins customers against orders. Customers
// without orders are retained with zero aggregates and no last-order date.
func buildCustomerRows(customers []customerdomain.Customer, orders []orderdomain.Order) []customerRow {
	type agg struct {
		count int
		spent decimal.Decimal
		last  time.Time
	}
	aggs := make(map[snowflake.ID]*agg, len(customers))
	for _, o := range orders {
		a, ok := aggs[o.CustomerID]
		if !ok {
			a = &agg{}
			aggs[o.CustomerID] = a
		}
		a.count++
		a.spent = a.spent.Add(o.Total)
		if o.PlacedAt.After(a.last) {
			a.last = o.PlacedAt
		}
	}

	rows := make([]customerRow, 0, len(customers))
	for _, c := range customers {
		row := customerRow{customer: c, totalSpent: decimal.Zero}
		if a, ok := aggs[c.ID]; ok {
			row.totalOrders = a.count
			row.totalSpent = a.spent
			last := a.last
			row.lastOrder = &last
		}
		rows = append(rows, row)
	}
	return rows
}

func customerBefore(field domain.CustomerSortField) func(a, b customerRow) bool {
	switch field {
	case domain.CustomerSortTotalOrders:
		return func(a, b customerRow) bool { return a.totalOrders > b.totalOrders }
	case domain.CustomerSortLastOrderDate:
		return func(a, b customerRow) bool {
			switch {
			case a.lastOrder == nil:
				return false
			case b.lastOrder == nil:
				return true
			default:
				return a.lastOrder.After(*b.lastOrder)
			}
		}
	case domain.CustomerSortName:
		return func(a, b customerRow) bool { return a.customer.Name > b.customer.Name }
	default:
		return func(a, b customerRow) bool { return a.totalSpent.GreaterThan(b.totalSpent) }
	}
}

// TopCustomers ranks customers by order aggregates. LastOrderDate stays nil
// for customers that never ordered.
func (s *Service) TopCustomers(ctx context.Context, req domain.TopCustomersRequest) ([]domain.CustomerSummary, error) {
	customers, err := s.customers.ListAll(ctx, s.db)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.ListAll(ctx, s.db)
	if err != nil {
		return nil, err
	}

	rows := buildCustomerRows(customers, orders)
	rows = sortAndLimit(rows, normalizeLimit(req.Limit), customerBefore(req.SortBy))

	out := make([]domain.CustomerSummary, 0, len(rows))
	for _, row := range rows {
		summary := domain.CustomerSummary{
			ID:          row.customer.ID.String(),
			Name:        row.customer.Name,
			Email:       row.customer.Email,
			TotalOrders: row.totalOrders,
			TotalSpent:  row.totalSpent.InexactFloat64(),
		}
		if row.lastOrder != nil {
			formatted := row.lastOrder.UTC().Format(time.RFC3339)
			summary.LastOrderDate = &formatted
		}
		out = append(out, summary)
	}
	return out, nil
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopsight/shopsight/internal/analytics/domain"
	orderdomain "github.com/shopsight/shopsight/internal/order/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopProductsRanksBySales(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	customer := f.addCustomer(t, "Ava", "ava@example.com")
	mug := f.addProduct(t, "Mug", "12.00", 20, "Home")
	lamp := f.addProduct(t, "Lamp", "34.90", 5, "Home")

	// Lamp appears in two orders, mug in one. The mug order references the
	// mug on two line items, which still counts as a single sale.
	f.addOrder(t, customer.ID, now.AddDate(0, 0, -1), "24.00", orderdomain.StatusDelivered, mug.ID, mug.ID)
	f.addOrder(t, customer.ID, now.AddDate(0, 0, -2), "34.90", orderdomain.StatusDelivered, lamp.ID)
	f.addOrder(t, customer.ID, now.AddDate(0, 0, -3), "34.90", orderdomain.StatusShipped, lamp.ID)

	products, err := f.svc.TopProducts(context.Background(), domain.TopProductsRequest{SortBy: domain.ProductSortSales})
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "Lamp", products[0].Name)
	assert.Equal(t, 2, products[0].Sales)
	assert.Equal(t, "Mug", products[1].Name)
	assert.Equal(t, 1, products[1].Sales)
}

func TestTopProductsRetainsUnsoldProducts(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	f.addProduct(t, "Mat", "24.50", 64, "Fitness")

	products, err := f.svc.TopProducts(context.Background(), domain.TopProductsRequest{SortBy: domain.ProductSortSales})
	require.NoError(t, err)

	require.Len(t, products, 1)
	assert.Equal(t, 0, products[0].Sales)
}

func TestTopProductsLimit(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	f.addProduct(t, "A", "1.00", 1, "Misc")
	f.addProduct(t, "B", "2.00", 2, "Misc")
	f.addProduct(t, "C", "3.00", 3, "Misc")

	products, err := f.svc.TopProducts(context.Background(), domain.TopProductsRequest{
		Limit:  2,
		SortBy: domain.ProductSortPrice,
	})
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "C", products[0].Name)
	assert.Equal(t, "B", products[1].Name)
}

func TestTopProductsZeroLimitUsesDefault(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L"} {
		f.addProduct(t, name, "1.00", 1, "Misc")
	}

	products, err := f.svc.TopProducts(context.Background(), domain.TopProductsRequest{SortBy: domain.ProductSortSales})
	require.NoError(t, err)
	assert.Len(t, products, domain.DefaultLimit)
}

func TestTopProductsStableTieKeepsEncounterOrder(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	f.addProduct(t, "First", "5.00", 1, "Misc")
	f.addProduct(t, "Second", "5.00", 1, "Misc")

	products, err := f.svc.TopProducts(context.Background(), domain.TopProductsRequest{SortBy: domain.ProductSortPrice})
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "First", products[0].Name)
	assert.Equal(t, "Second", products[1].Name)
}

func TestRecentOrdersJoinsCustomer(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	customer := f.addCustomer(t, "Ava", "ava@example.com")
	product := f.addProduct(t, "Mug", "12.00", 20, "Home")

	older := f.addOrder(t, customer.ID, now.AddDate(0, 0, -5), "12.00", orderdomain.StatusDelivered, product.ID)
	newer := f.addOrder(t, customer.ID, now.AddDate(0, 0, -1), "24.00", orderdomain.StatusPending, product.ID)

	orders, err := f.svc.RecentOrders(context.Background(), domain.RecentOrdersRequest{
		SortBy:    domain.OrderSortDate,
		Direction: domain.SortDesc,
	})
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID.String(), orders[0].ID)
	assert.Equal(t, older.ID.String(), orders[1].ID)
	assert.Equal(t, "Ava", orders[0].CustomerName)
	assert.Equal(t, 1, orders[0].Items)
}

func TestRecentOrdersDropsDanglingCustomer(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	customer := f.addCustomer(t, "Ava", "ava@example.com")
	f.addOrder(t, customer.ID, now.AddDate(0, 0, -1), "10.00", orderdomain.StatusDelivered)
	f.addOrder(t, f.node.Generate(), now.AddDate(0, 0, -2), "20.00", orderdomain.StatusDelivered)

	orders, err := f.svc.RecentOrders(context.Background(), domain.RecentOrdersRequest{
		SortBy:    domain.OrderSortDate,
		Direction: domain.SortDesc,
	})
	require.NoError(t, err)

	require.Len(t, orders, 1)
	assert.Equal(t, customer.ID.String(), orders[0].CustomerID)
}

func TestRecentOrdersAscendingDirection(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	customer := f.addCustomer(t, "Ava", "ava@example.com")
	f.addOrder(t, customer.ID, now.AddDate(0, 0, -1), "50.00", orderdomain.StatusDelivered)
	f.addOrder(t, customer.ID, now.AddDate(0, 0, -2), "10.00", orderdomain.StatusDelivered)

	orders, err := f.svc.RecentOrders(context.Background(), domain.RecentOrdersRequest{
		SortBy:    domain.OrderSortTotal,
		Direction: domain.SortAsc,
	})
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.InDelta(t, 10.0, orders[0].Total, 1e-9)
	assert.InDelta(t, 50.0, orders[1].Total, 1e-9)
}

func TestTopCustomersAggregates(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	ava := f.addCustomer(t, "Ava", "ava@example.com")
	noah := f.addCustomer(t, "Noah", "noah@example.com")

	f.addOrder(t, ava.ID, now.AddDate(0, 0, -5), "30.00", orderdomain.StatusDelivered)
	f.addOrder(t, ava.ID, now.AddDate(0, 0, -1), "70.00", orderdomain.StatusDelivered)
	f.addOrder(t, noah.ID, now.AddDate(0, 0, -3), "40.00", orderdomain.StatusDelivered)

	customers, err := f.svc.TopCustomers(context.Background(), domain.TopCustomersRequest{SortBy: domain.CustomerSortTotalSpent})
	require.NoError(t, err)

	require.Len(t, customers, 2)
	assert.Equal(t, "Ava", customers[0].Name)
	assert.Equal(t, 2, customers[0].TotalOrders)
	assert.InDelta(t, 100.0, customers[0].TotalSpent, 1e-9)
	require.NotNil(t, customers[0].LastOrderDate)
	assert.Equal(t, now.AddDate(0, 0, -1).Format(time.RFC3339), *customers[0].LastOrderDate)
}

func TestTopCustomersRetainsCustomersWithoutOrders(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	ava := f.addCustomer(t, "Ava", "ava@example.com")
	quiet := f.addCustomer(t, "Quiet", "quiet@example.com")
	f.addOrder(t, ava.ID, now.AddDate(0, 0, -1), "10.00", orderdomain.StatusDelivered)

	customers, err := f.svc.TopCustomers(context.Background(), domain.TopCustomersRequest{SortBy: domain.CustomerSortLastOrderDate})
	require.NoError(t, err)

	require.Len(t, customers, 2)
	// The customer with no orders sorts last and carries zero aggregates.
	assert.Equal(t, quiet.ID.String(), customers[1].ID)
	assert.Equal(t, 0, customers[1].TotalOrders)
	assert.Equal(t, float64(0), customers[1].TotalSpent)
	assert.Nil(t, customers[1].LastOrderDate)
}

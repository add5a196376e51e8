package service

import (
	"context"
	"testing"
	"time"

	orderdomain "github.com/shopsight/shopsight/internal/order/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsEmptyStore(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	stats, err := f.svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(0), stats.TotalSales)
	assert.Equal(t, int64(0), stats.TotalCustomers)
	assert.Equal(t, int64(0), stats.TotalOrders)
	assert.Equal(t, int64(0), stats.TotalProducts)
	assert.Equal(t, float64(0), stats.RevenueGrowth)
	assert.Equal(t, float64(0), stats.AverageOrderValue)
}

func TestDashboardStatsTotalsAndAverage(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	customer := f.addCustomer(t, "Ava", "ava@example.com")
	f.addProduct(t, "Mug", "12.00", 20, "Home")

	f.addOrder(t, customer.ID, now.AddDate(0, 0, -2), "30.00", orderdomain.StatusDelivered)
	f.addOrder(t, customer.ID, now.AddDate(0, 0, -1), "50.00", orderdomain.StatusPending)

	f.addSale(t, "100.00", now.AddDate(0, 0, -3))
	f.addSale(t, "25.50", now.AddDate(0, 0, -1))

	stats, err := f.svc.DashboardStats(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 125.50, stats.TotalSales, 1e-9)
	assert.Equal(t, int64(1), stats.TotalCustomers)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.TotalProducts)
	assert.InDelta(t, 40.0, stats.AverageOrderValue, 1e-9)
}

func TestRevenueGrowthZeroPreviousMonth(t *testing.T) {
	// No previous-month revenue: the denominator floors to 1, so 50 of
	// current-month revenue reads as 5000 percent growth.
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	f.addSale(t, "50.00", time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))

	stats, err := f.svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 5000.0, stats.RevenueGrowth, 1e-9)
}

func TestRevenueGrowthMonthOverMonth(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	f.addSale(t, "100.00", time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC))
	f.addSale(t, "150.00", time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC))

	stats, err := f.svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 50.0, stats.RevenueGrowth, 1e-9)
}

func TestRevenueGrowthIgnoresOlderEvents(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	f := setupService(t, now)

	// January revenue sits outside both comparison windows.
	f.addSale(t, "999.00", time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC))
	f.addSale(t, "100.00", time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC))
	f.addSale(t, "80.00", time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))

	stats, err := f.svc.DashboardStats(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, -20.0, stats.RevenueGrowth, 1e-9)
}

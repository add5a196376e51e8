package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopsight/shopsight/internal/analytics/domain"
	"go.uber.org/zap"
)

// GetDashboardStats serves GET /api/dashboard/stats.
func (s *Server) GetDashboardStats(c *gin.Context) {
	start := time.Now()

	stats, err := s.analyticsSvc.DashboardStats(c.Request.Context())
	if err != nil {
		s.failQuery(c, "stats", err)
		return
	}

	s.obsMetrics.RecordQuery(c.Request.Context(), "stats", time.Since(start))
	respondData(c, stats)
}

// GetSalesTimeSeries serves GET /api/dashboard/sales-time-series.
func (s *Server) GetSalesTimeSeries(c *gin.Context) {
	start := time.Now()

	req := domain.TimeSeriesRequest{
		Period: c.Query("period"),
	}

	points, err := s.analyticsSvc.SalesTimeSeries(c.Request.Context(), req)
	if err != nil {
		s.failQuery(c, "sales_time_series", err)
		return
	}

	s.obsMetrics.RecordQuery(c.Request.Context(), "sales_time_series", time.Since(start))
	respondData(c, points)
}

// GetTopProducts serves GET /api/dashboard/products.
func (s *Server) GetTopProducts(c *gin.Context) {
	start := time.Now()

	req := domain.TopProductsRequest{
		Limit:  queryInt(c, "limit", domain.DefaultLimit),
		SortBy: domain.ParseProductSortField(c.Query("sort")),
	}

	products, err := s.analyticsSvc.TopProducts(c.Request.Context(), req)
	if err != nil {
		s.failQuery(c, "top_products", err)
		return
	}

	s.obsMetrics.RecordQuery(c.Request.Context(), "top_products", time.Since(start))
	respondData(c, products)
}

// GetRecentOrders serves GET /api/dashboard/orders.
func (s *Server) GetRecentOrders(c *gin.Context) {
	start := time.Now()

	req := domain.RecentOrdersRequest{
		Limit:     queryInt(c, "limit", domain.DefaultLimit),
		SortBy:    domain.ParseOrderSortField(c.Query("sort")),
		Direction: domain.ParseSortDirection(c.Query("direction")),
	}

	orders, err := s.analyticsSvc.RecentOrders(c.Request.Context(), req)
	if err != nil {
		s.failQuery(c, "recent_orders", err)
		return
	}

	s.obsMetrics.RecordQuery(c.Request.Context(), "recent_orders", time.Since(start))
	respondData(c, orders)
}

// GetTopCustomers serves GET /api/dashboard/customers.
func (s *Server) GetTopCustomers(c *gin.Context) {
	start := time.Now()

	req := domain.TopCustomersRequest{
		Limit:  queryInt(c, "limit", domain.DefaultLimit),
		SortBy: domain.ParseCustomerSortField(c.Query("sort")),
	}

	customers, err := s.analyticsSvc.TopCustomers(c.Request.Context(), req)
	if err != nil {
		s.failQuery(c, "top_customers", err)
		return
	}

	s.obsMetrics.RecordQuery(c.Request.Context(), "top_customers", time.Since(start))
	respondData(c, customers)
}

// GetInsights serves GET /api/dashboard/ai-insights.
func (s *Server) GetInsights(c *gin.Context) {
	start := time.Now()

	req := domain.InsightsRequest{
		Count: queryInt(c, "count", maxInsightCount),
	}

	insights, err := s.analyticsSvc.Insights(c.Request.Context(), req)
	if err != nil {
		s.failQuery(c, "insights", err)
		return
	}

	s.obsMetrics.RecordQuery(c.Request.Context(), "insights", time.Since(start))
	respondData(c, insights)
}

const maxInsightCount = 3

func (s *Server) failQuery(c *gin.Context, operation string, err error) {
	s.obsMetrics.RecordError(c.Request.Context(), operation)
	s.log.Error("dashboard query failed",
		zap.String("operation", operation),
		zap.Error(err),
	)
	respondError(c, http.StatusInternalServerError, err)
}

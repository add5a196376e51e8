package domain

// DashboardStats is the scalar summary block for the dashboard header.
type DashboardStats struct {
	TotalSales        float64 `json:"totalSales"`
	TotalCustomers    int64   `json:"totalCustomers"`
	TotalOrders       int64   `json:"totalOrders"`
	TotalProducts     int64   `json:"totalProducts"`
	RevenueGrowth     float64 `json:"revenueGrowth"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// TimeSeriesPoint is one calendar-day revenue bucket. Days without sales are
// not emitted.
type TimeSeriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ProductSummary is a product row enriched with its matched-order count.
type ProductSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
	Sales    int     `json:"sales"`
}

// OrderSummary is an order row enriched with its customer.
type OrderSummary struct {
	ID           string  `json:"id"`
	CustomerID   string  `json:"customerId"`
	CustomerName string  `json:"customerName"`
	Date         string  `json:"date"`
	Total        float64 `json:"total"`
	Status       string  `json:"status"`
	Items        int     `json:"items"`
}

// CustomerSummary is a customer row enriched with order aggregates.
// LastOrderDate is nil for customers that never ordered.
type CustomerSummary struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	TotalOrders   int     `json:"totalOrders"`
	TotalSpent    float64 `json:"totalSpent"`
	LastOrderDate *string `json:"lastOrderDate"`
}

type InsightType string

const (
	InsightInventory InsightType = "inventory"
	InsightSales     InsightType = "sales"
	InsightCustomers InsightType = "customers"
)

// Insight is a templated recommendation derived from precomputed metrics.
type Insight struct {
	Type           InsightType `json:"type"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Recommendation string      `json:"recommendation"`
	Confidence     float64     `json:"confidence"`
}

package domain

import (
	"context"
	"strings"
)

const DefaultLimit = 10

// Sort tokens are a closed set per operation. Unrecognized tokens fall back
// to the operation's default field instead of passing through to the query.

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func ParseSortDirection(raw string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(raw), string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

type ProductSortField string

const (
	ProductSortSales ProductSortField = "sales"
	ProductSortPrice ProductSortField = "price"
	ProductSortStock ProductSortField = "stock"
	ProductSortName  ProductSortField = "name"
)

func ParseProductSortField(raw string) ProductSortField {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(ProductSortPrice):
		return ProductSortPrice
	case string(ProductSortStock):
		return ProductSortStock
	case string(ProductSortName):
		return ProductSortName
	default:
		return ProductSortSales
	}
}

type OrderSortField string

const (
	OrderSortDate   OrderSortField = "date"
	OrderSortTotal  OrderSortField = "total"
	OrderSortStatus OrderSortField = "status"
	OrderSortItems  OrderSortField = "items"
)

func ParseOrderSortField(raw string) OrderSortField {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(OrderSortTotal):
		return OrderSortTotal
	case string(OrderSortStatus):
		return OrderSortStatus
	case string(OrderSortItems):
		return OrderSortItems
	default:
		return OrderSortDate
	}
}

type CustomerSortField string

const (
	CustomerSortTotalSpent    CustomerSortField = "totalSpent"
	CustomerSortTotalOrders   CustomerSortField = "totalOrders"
	CustomerSortLastOrderDate CustomerSortField = "lastOrderDate"
	CustomerSortName          CustomerSortField = "name"
)

func ParseCustomerSortField(raw string) CustomerSortField {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case strings.ToLower(string(CustomerSortTotalOrders)):
		return CustomerSortTotalOrders
	case strings.ToLower(string(CustomerSortLastOrderDate)):
		return CustomerSortLastOrderDate
	case string(CustomerSortName):
		return CustomerSortName
	default:
		return CustomerSortTotalSpent
	}
}

type TimeSeriesRequest struct {
	Period string
}

type TopProductsRequest struct {
	Limit  int
	SortBy ProductSortField
}

type RecentOrdersRequest struct {
	Limit     int
	SortBy    OrderSortField
	Direction SortDirection
}

type TopCustomersRequest struct {
	Limit  int
	SortBy CustomerSortField
}

type InsightsRequest struct {
	Count int
}

// Service is the reporting engine contract. Every operation is a read-only
// reduction over a snapshot of the record store; degenerate inputs (empty
// collections, zero denominators) resolve to defined defaults, never errors.
type Service interface {
	DashboardStats(ctx context.Context) (DashboardStats, error)
	SalesTimeSeries(ctx context.Context, req TimeSeriesRequest) ([]TimeSeriesPoint, error)
	TopProducts(ctx context.Context, req TopProductsRequest) ([]ProductSummary, error)
	RecentOrders(ctx context.Context, req RecentOrdersRequest) ([]OrderSummary, error)
	TopCustomers(ctx context.Context, req TopCustomersRequest) ([]CustomerSummary, error)
	Insights(ctx context.Context, req InsightsRequest) ([]Insight, error)
}

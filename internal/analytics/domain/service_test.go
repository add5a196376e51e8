package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortDirection(t *testing.T) {
	assert.Equal(t, SortAsc, ParseSortDirection("asc"))
	assert.Equal(t, SortAsc, ParseSortDirection(" ASC "))
	assert.Equal(t, SortDesc, ParseSortDirection("desc"))
	assert.Equal(t, SortDesc, ParseSortDirection(""))
	assert.Equal(t, SortDesc, ParseSortDirection("sideways"))
}

func TestParseProductSortField(t *testing.T) {
	assert.Equal(t, ProductSortPrice, ParseProductSortField("price"))
	assert.Equal(t, ProductSortStock, ParseProductSortField("Stock"))
	assert.Equal(t, ProductSortName, ParseProductSortField("name"))
	assert.Equal(t, ProductSortSales, ParseProductSortField(""))
	assert.Equal(t, ProductSortSales, ParseProductSortField("bogus"))
}

func TestParseOrderSortField(t *testing.T) {
	assert.Equal(t, OrderSortTotal, ParseOrderSortField("total"))
	assert.Equal(t, OrderSortStatus, ParseOrderSortField("status"))
	assert.Equal(t, OrderSortItems, ParseOrderSortField("items"))
	assert.Equal(t, OrderSortDate, ParseOrderSortField("date"))
	assert.Equal(t, OrderSortDate, ParseOrderSortField("bogus"))
}

func TestParseCustomerSortField(t *testing.T) {
	assert.Equal(t, CustomerSortTotalOrders, ParseCustomerSortField("totalOrders"))
	assert.Equal(t, CustomerSortTotalOrders, ParseCustomerSortField("totalorders"))
	assert.Equal(t, CustomerSortLastOrderDate, ParseCustomerSortField("lastOrderDate"))
	assert.Equal(t, CustomerSortName, ParseCustomerSortField("name"))
	assert.Equal(t, CustomerSortTotalSpent, ParseCustomerSortField("bogus"))
	assert.Equal(t, CustomerSortTotalSpent, ParseCustomerSortField(""))
}

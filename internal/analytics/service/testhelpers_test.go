package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/shopsight/shopsight/internal/clock"
	"github.com/shopsight/shopsight/internal/config"
	customerdomain "github.com/shopsight/shopsight/internal/customer/domain"
	customerrepo "github.com/shopsight/shopsight/internal/customer/repository"
	orderdomain "github.com/shopsight/shopsight/internal/order/domain"
	orderrepo "github.com/shopsight/shopsight/internal/order/repository"
	productdomain "github.com/shopsight/shopsight/internal/product/domain"
	productrepo "github.com/shopsight/shopsight/internal/product/repository"
	saledomain "github.com/shopsight/shopsight/internal/sale/domain"
	salerepo "github.com/shopsight/shopsight/internal/sale/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc  *Service
	db   *gorm.DB
	clk  *clock.FakeClock
	node *snowflake.Node
}

func mustNode(t *testing.T) *snowflake.Node {
	t.Helper()
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	return node
}

func setupService(t *testing.T, now time.Time) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	err = conn.AutoMigrate(
		&customerdomain.Customer{},
		&productdomain.Product{},
		&orderdomain.Order{},
		&orderdomain.OrderItem{},
		&saledomain.SaleEvent{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	clk := clock.NewFakeClock(now)
	svc := &Service{
		db:        conn,
		log:       zap.NewNop(),
		clock:     clk,
		insights:  config.NewStaticInsightsHolder(config.DefaultInsightsConfig()),
		customers: customerrepo.Provide(),
		orders:    orderrepo.Provide(),
		products:  productrepo.Provide(),
		sales:     salerepo.Provide(),
	}

	return &fixture{svc: svc, db: conn, clk: clk, node: mustNode(t)}
}

func (f *fixture) addCustomer(t *testing.T, name, email string) customerdomain.Customer {
	t.Helper()
	record := customerdomain.Customer{ID: f.node.Generate(), Name: name, Email: email}
	if err := f.db.Create(&record).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return record
}

func (f *fixture) addProduct(t *testing.T, name, price string, stock int, category string) productdomain.Product {
	t.Helper()
	record := productdomain.Product{
		ID:       f.node.Generate(),
		Name:     name,
		Price:    mustDecimal(t, price),
		Stock:    stock,
		Category: category,
	}
	if err := f.db.Create(&record).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return record
}

func (f *fixture) addOrder(t *testing.T, customerID snowflake.ID, placedAt time.Time, total, status string, productIDs ...snowflake.ID) orderdomain.Order {
	t.Helper()
	record := orderdomain.Order{
		ID:         f.node.Generate(),
		CustomerID: customerID,
		PlacedAt:   placedAt,
		Total:      mustDecimal(t, total),
		Status:     status,
	}
	for _, productID := range productIDs {
		record.Items = append(record.Items, orderdomain.OrderItem{
			ID:        f.node.Generate(),
			ProductID: productID,
			Qty:       1,
		})
	}
	if err := f.db.Create(&record).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return record
}

func (f *fixture) addSale(t *testing.T, amount string, occurredAt time.Time) saledomain.SaleEvent {
	t.Helper()
	record := saledomain.SaleEvent{
		ID:         f.node.Generate(),
		Amount:     mustDecimal(t, amount),
		OccurredAt: occurredAt,
	}
	if err := f.db.Create(&record).Error; err != nil {
		t.Fatalf("seed sale event: %v", err)
	}
	return record
}

func mustDecimal(t *testing.T, raw string) decimal.Decimal {
	t.Helper()
	value, err := decimal.NewFromString(raw)
	if err != nil {
		t.Fatalf("parse decimal %q: %v", raw, err)
	}
	return value
}

package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	customerdomain "github.com/shopsight/shopsight/internal/customer/domain"
	orderdomain "github.com/shopsight/shopsight/internal/order/domain"
	productdomain "github.com/shopsight/shopsight/internal/product/domain"
	saledomain "github.com/shopsight/shopsight/internal/sale/domain"
	"github.com/shopsight/shopsight/pkg/db"
	"gorm.io/gorm"
)

type sampleCustomer struct {
	name  string
	email string
}

type sampleProduct struct {
	name     string
	price    string
	stock    int
	category string
}

var sampleCustomers = []sampleCustomer{
	{name: "Ava Thompson", email: "ava.thompson@example.com"},
	{name: "Noah Patel", email: "noah.patel@example.com"},
	{name: "Mia Chen", email: "mia.chen@example.com"},
	{name: "Liam Garcia", email: "liam.garcia@example.com"},
	{name: "Sofia Almeida", email: "sofia.almeida@example.com"},
}

var sampleProducts = []sampleProduct{
	{name: "Wireless Earbuds", price: "59.99", stock: 42, category: "Electronics"},
	{name: "Smart Watch", price: "129.00", stock: 8, category: "Electronics"},
	{name: "Yoga Mat", price: "24.50", stock: 64, category: "Fitness"},
	{name: "Ceramic Mug", price: "12.00", stock: 5, category: "Home"},
	{name: "Desk Lamp", price: "34.90", stock: 27, category: "Home"},
}

// EnsureSampleData populates a handful of demo customers, products, orders
// and sale events so the dashboard renders something on first boot. It is
// idempotent: reruns skip rows that already exist.
func EnsureSampleData(conn *gorm.DB, node *snowflake.Node) error {
	if conn == nil {
		return errors.New("seed database handle is required")
	}
	if node == nil {
		var err error
		node, err = snowflake.NewNode(1)
		if err != nil {
			return err
		}
	}

	ctx := context.Background()
	return conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customers, err := ensureCustomersTx(ctx, tx, node)
		if err != nil {
			return err
		}
		products, err := ensureProductsTx(ctx, tx, node)
		if err != nil {
			return err
		}
		if err := ensureOrdersTx(ctx, tx, node, customers, products); err != nil {
			return err
		}
		return ensureSaleEventsTx(ctx, tx, node)
	})
}

func ensureCustomersTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) ([]customerdomain.Customer, error) {
	out := make([]customerdomain.Customer, 0, len(sampleCustomers))
	for _, sample := range sampleCustomers {
		var existing customerdomain.Customer
		err := tx.WithContext(ctx).
			Where("email = ?", sample.email).
			First(&existing).Error
		if err == nil {
			out = append(out, existing)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		record := customerdomain.Customer{
			ID:    node.Generate(),
			Name:  sample.name,
			Email: sample.email,
		}
		if err := tx.WithContext(ctx).Create(&record).Error; err != nil {
			// Concurrent boot can race the existence check.
			if db.IsDuplicateKeyErr(err) {
				if err := tx.WithContext(ctx).Where("email = ?", sample.email).First(&record).Error; err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		out = append(out, record)
	}
	return out, nil
}

func ensureProductsTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) ([]productdomain.Product, error) {
	out := make([]productdomain.Product, 0, len(sampleProducts))
	for _, sample := range sampleProducts {
		var existing productdomain.Product
		err := tx.WithContext(ctx).
			Where("name = ?", sample.name).
			First(&existing).Error
		if err == nil {
			out = append(out, existing)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		price, err := decimal.NewFromString(sample.price)
		if err != nil {
			return nil, err
		}
		record := productdomain.Product{
			ID:       node.Generate(),
			Name:     sample.name,
			Price:    price,
			Stock:    sample.stock,
			Category: sample.category,
		}
		if err := tx.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	return out, nil
}

func ensureOrdersTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, customers []customerdomain.Customer, products []productdomain.Product) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&orderdomain.Order{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || len(customers) == 0 || len(products) == 0 {
		return nil
	}

	now := time.Now().UTC()
	statuses := []string{
		orderdomain.StatusDelivered,
		orderdomain.StatusShipped,
		orderdomain.StatusPending,
		orderdomain.StatusDelivered,
		orderdomain.StatusCancelled,
		orderdomain.StatusDelivered,
	}

	for i, status := range statuses {
		customer := customers[i%len(customers)]
		product := products[i%len(products)]
		qty := 1 + i%3

		order := orderdomain.Order{
			ID:         node.Generate(),
			CustomerID: customer.ID,
			PlacedAt:   now.AddDate(0, 0, -(i*4 + 1)),
			Total:      product.Price.Mul(decimal.NewFromInt(int64(qty))),
			Status:     status,
			Items: []orderdomain.OrderItem{
				{
					ID:        node.Generate(),
					ProductID: product.ID,
					Qty:       qty,
				},
			},
		}
		if err := tx.WithContext(ctx).Create(&order).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureSaleEventsTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&saledomain.SaleEvent{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	amounts := []string{"120.00", "89.50", "240.75", "45.00", "310.20", "150.00", "72.30"}

	for i, raw := range amounts {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return err
		}
		event := saledomain.SaleEvent{
			ID:         node.Generate(),
			Amount:     amount,
			OccurredAt: now.AddDate(0, 0, -(i * 3)),
		}
		if err := tx.WithContext(ctx).Create(&event).Error; err != nil {
			return err
		}
	}
	return nil
}

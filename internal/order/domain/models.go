package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

type Order struct {
	ID         snowflake.ID    `gorm:"primaryKey" json:"id"`
	CustomerID snowflake.ID    `gorm:"not null;index" json:"customer_id"`
	PlacedAt   time.Time       `gorm:"not null;index" json:"placed_at"`
	Total      decimal.Decimal `gorm:"type:numeric;not null" json:"total"`
	Status     string          `gorm:"not null" json:"status"`
	Items      []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt  time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

type OrderItem struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	OrderID   snowflake.ID `gorm:"not null;index" json:"order_id"`
	ProductID snowflake.ID `gorm:"not null;index" json:"product_id"`
	Qty       int          `gorm:"not null" json:"qty"`
}

package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// SaleEvent is an atomic revenue event.
type SaleEvent struct {
	ID         snowflake.ID    `gorm:"primaryKey" json:"id"`
	Amount     decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	OccurredAt time.Time       `gorm:"not null;index" json:"occurred_at"`
}

func (SaleEvent) TableName() string { return "sale_events" }

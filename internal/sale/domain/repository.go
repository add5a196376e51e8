package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Repository is the read-only access contract for sale events.
type Repository interface {
	ListAll(ctx context.Context, db *gorm.DB) ([]SaleEvent, error)
	// ListBetween returns events with from <= occurred_at <= to.
	ListBetween(ctx context.Context, db *gorm.DB, from, to time.Time) ([]SaleEvent, error)
}

package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the read-only access contract for order records.
// ListAll returns orders with line items attached.
type Repository interface {
	ListAll(ctx context.Context, db *gorm.DB) ([]Order, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

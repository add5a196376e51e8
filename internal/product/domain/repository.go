package domain

import (
	"context"

	"gorm.io/gorm"
)

// Repository is the read-only access contract for product records.
type Repository interface {
	ListAll(ctx context.Context, db *gorm.DB) ([]Product, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

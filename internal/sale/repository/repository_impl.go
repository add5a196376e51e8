package repository

import (
	"context"
	"time"

	"github.com/shopsight/shopsight/internal/sale/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListAll(ctx context.Context, db *gorm.DB) ([]domain.SaleEvent, error) {
	var events []domain.SaleEvent
	err := db.WithContext(ctx).
		Model(&domain.SaleEvent{}).
		Order("occurred_at asc, id asc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repo) ListBetween(ctx context.Context, db *gorm.DB, from, to time.Time) ([]domain.SaleEvent, error) {
	var events []domain.SaleEvent
	err := db.WithContext(ctx).
		Model(&domain.SaleEvent{}).
		Where("occurred_at >= ? AND occurred_at <= ?", from, to).
		Order("occurred_at asc, id asc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

package repository

import (
	"context"

	"gans/internal/models"

	"gorm.io/gorm"
)

type FetchLogRepository interface {
	Create(ctx context.Context, log *models.FetchLog) error
	Count(ctx context.Context) (int64, error)
}

type fetchLogRepository struct {
	db *gorm.DB
}

func NewFetchLogRepository(db *gorm.DB) FetchLogRepository {
	return &fetchLogRepository{db: db}
}

func (r *fetchLogRepository) Create(ctx context.Context, log *models.FetchLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *fetchLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.FetchLog{}).Count(&count).Error
	return count, err
}

package repository

import (
	"context"

	"gans/internal/models"

	"gorm.io/gorm"
)

type ArrivalRepository interface {
	Append(ctx context.Context, arrivals []models.Arrival) error
	GetLastN(ctx context.Context, n int) ([]models.Arrival, error)
	Count(ctx context.Context) (int64, error)
}

type arrivalRepository struct {
	db *gorm.DB
}

func NewArrivalRepository(db *gorm.DB) ArrivalRepository {
	return &arrivalRepository{db: db}
}

func (r *arrivalRepository) Append(ctx context.Context, arrivals []models.Arrival) error {
	if len(arrivals) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&arrivals).Error
}

func (r *arrivalRepository) GetLastN(ctx context.Context, n int) ([]models.Arrival, error) {
	var arrivals []models.Arrival
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(n).
		Find(&arrivals).
		Error
	return arrivals, err
}

func (r *arrivalRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Arrival{}).Count(&count).Error
	return count, err
}

package repository

import (
	"context"

	"gans/internal/models"

	"gorm.io/gorm"
)

type AirportRepository interface {
	Append(ctx context.Context, airports []models.Airport) error
	GetAll(ctx context.Context) ([]models.Airport, error)
	Count(ctx context.Context) (int64, error)
}

type airportRepository struct {
	db *gorm.DB
}

func NewAirportRepository(db *gorm.DB) AirportRepository {
	return &airportRepository{db: db}
}

func (r *airportRepository) Append(ctx context.Context, airports []models.Airport) error {
	if len(airports) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&airports).Error
}

func (r *airportRepository) GetAll(ctx context.Context) ([]models.Airport, error) {
	var airports []models.Airport
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&airports).
		Error
	return airports, err
}

func (r *airportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Airport{}).Count(&count).Error
	return count, err
}

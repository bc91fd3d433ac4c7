package repository

import (
	"context"

	"gans/internal/models"

	"gorm.io/gorm"
)

type CityRepository interface {
	Append(ctx context.Context, cities []models.City) error
	AppendInfo(ctx context.Context, infos []models.CityInfo) error
	GetAll(ctx context.Context) ([]models.City, error)
	GetAllInfo(ctx context.Context) ([]models.CityInfo, error)
	Count(ctx context.Context) (int64, error)
}

type cityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) Append(ctx context.Context, cities []models.City) error {
	if len(cities) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&cities).Error
}

func (r *cityRepository) AppendInfo(ctx context.Context, infos []models.CityInfo) error {
	if len(infos) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&infos).Error
}

func (r *cityRepository) GetAll(ctx context.Context) ([]models.City, error) {
	var cities []models.City
	err := r.db.WithContext(ctx).
		Order("city_id").
		Find(&cities).
		Error
	return cities, err
}

func (r *cityRepository) GetAllInfo(ctx context.Context) ([]models.CityInfo, error) {
	var infos []models.CityInfo
	err := r.db.WithContext(ctx).
		Order("city_id").
		Find(&infos).
		Error
	return infos, err
}

func (r *cityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.City{}).Count(&count).Error
	return count, err
}

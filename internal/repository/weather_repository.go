package repository

import (
	"context"

	"gans/internal/models"

	"gorm.io/gorm"
)

// WeatherRepository только добавляет строки: таблица cities_weather -
// накопительный журнал, повторная вставка тех же строк дает дубликаты.
type WeatherRepository interface {
	Append(ctx context.Context, records []models.CityWeather) error
	GetLastN(ctx context.Context, n int) ([]models.CityWeather, error)
	Count(ctx context.Context) (int64, error)
}

type weatherRepository struct {
	db *gorm.DB
}

func NewWeatherRepository(db *gorm.DB) WeatherRepository {
	return &weatherRepository{db: db}
}

func (r *weatherRepository) Append(ctx context.Context, records []models.CityWeather) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&records).Error
}

func (r *weatherRepository) GetLastN(ctx context.Context, n int) ([]models.CityWeather, error) {
	var records []models.CityWeather
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(n).
		Find(&records).
		Error
	return records, err
}

func (r *weatherRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.CityWeather{}).Count(&count).Error
	return count, err
}

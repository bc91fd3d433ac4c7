package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gans/internal/clients"
	"gans/internal/models"
	"gans/internal/repository"

	"github.com/google/uuid"
)

type WeatherService interface {
	FetchAndStoreForecasts(ctx context.Context) error
	GetLatest(ctx context.Context, limit int) ([]models.CityWeather, error)
}

type weatherService struct {
	repo      repository.WeatherRepository
	logRepo   repository.FetchLogRepository
	cacheRepo repository.CacheRepository
	client    clients.WeatherClient
	cities    []string
	cityIDs   map[string]int
	loc       *time.Location
	interval  time.Duration
}

type WeatherServiceConfig struct {
	Cities   []string
	CityIDs  map[string]int
	Location *time.Location
	Interval time.Duration
}

func NewWeatherService(
	repo repository.WeatherRepository,
	logRepo repository.FetchLogRepository,
	cacheRepo repository.CacheRepository,
	client clients.WeatherClient,
	config WeatherServiceConfig,
) WeatherService {
	return &weatherService{
		repo:      repo,
		logRepo:   logRepo,
		cacheRepo: cacheRepo,
		client:    client,
		cities:    config.Cities,
		cityIDs:   config.CityIDs,
		loc:       config.Location,
		interval:  config.Interval,
	}
}

func (s *weatherService) FetchAndStoreForecasts(ctx context.Context) error {
	// Проверяем, не выполнялся ли запуск недавно: append-only таблица
	// не защищена от дублей, поэтому двойной запуск внутри одного
	// интервала просто задвоил бы строки.
	cacheKey := "weather:last_fetch"
	if cached, err := s.cacheRepo.Get(ctx, cacheKey); err == nil && cached != "" {
		log.Println("Weather forecasts fetched recently, skipping")
		return nil
	}

	log.Printf("Fetching weather forecasts for %d cities...", len(s.cities))

	batchID := uuid.New()
	records := s.collect(ctx, batchID)
	if len(records) == 0 {
		return fmt.Errorf("no forecasts collected")
	}

	if err := s.repo.Append(ctx, records); err != nil {
		return fmt.Errorf("failed to save weather records: %w", err)
	}

	s.cacheRepo.Set(ctx, cacheKey, "1", s.interval/2)
	log.Printf("Weather batch %s stored: %d rows", batchID, len(records))
	return nil
}

// collect выполняет по одному запросу на город и разворачивает каждый шаг
// прогноза в строку cities_weather. Все строки одного запуска получают
// общий information_retrieved_at. Ошибка одного города не мешает остальным.
func (s *weatherService) collect(ctx context.Context, batchID uuid.UUID) []models.CityWeather {
	now := time.Now().In(s.loc)
	retrievedAt := now.Format("02/01/2006 15:04:05")

	var records []models.CityWeather

	for _, city := range s.cities {
		forecast, err := s.client.FetchForecast(ctx, city)
		if err != nil {
			log.Printf("Weather for %q skipped: %v", city, err)
			continue
		}

		s.auditPayload(ctx, batchID, "openweathermap:"+city, forecast)

		// города вне явной карты получают сентинель 0
		cityID := s.cityIDs[city]

		for _, entry := range forecast.List {
			record := models.CityWeather{
				CityID:                 cityID,
				Country:                forecast.City.Country,
				ForecastTime:           entry.DtTxt,
				Temperature:            entry.Main.Temp,
				TemperatureFeelsLike:   entry.Main.FeelsLike,
				Clouds:                 entry.Clouds.All,
				WindSpeed:              entry.Wind.Speed,
				Humidity:               entry.Main.Humidity,
				Pressure:               entry.Main.Pressure,
				InformationRetrievedAt: retrievedAt,
			}

			if len(entry.Weather) > 0 {
				record.Weather = entry.Weather[0].Main
			}

			// отсутствующие осадки означают ноль, а не NULL
			if entry.Rain != nil {
				record.Rain = entry.Rain.ThreeHour
			}
			if entry.Snow != nil {
				record.Snow = entry.Snow.ThreeHour
			}

			records = append(records, record)
		}
	}

	return records
}

func (s *weatherService) auditPayload(ctx context.Context, batchID uuid.UUID, source string, payload interface{}) {
	if s.logRepo == nil {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}

	entry := &models.FetchLog{
		BatchID:   batchID,
		Source:    source,
		FetchedAt: time.Now().UTC(),
		Payload:   raw,
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		log.Printf("Failed to audit payload for %s: %v", source, err)
	}
}

func (s *weatherService) GetLatest(ctx context.Context, limit int) ([]models.CityWeather, error) {
	if limit < 1 || limit > 1000 {
		limit = 100
	}
	return s.repo.GetLastN(ctx, limit)
}

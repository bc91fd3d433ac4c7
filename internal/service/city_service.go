package service

import (
	"context"
	"fmt"
	"log"

	"gans/internal/clients"
	"gans/internal/models"
	"gans/internal/repository"
	"gans/internal/utils"
)

type CityService interface {
	SeedCities(ctx context.Context) error
	GetCities(ctx context.Context) ([]models.City, error)
	GetCitiesInfo(ctx context.Context) ([]models.CityInfo, error)
}

type cityService struct {
	repo   repository.CityRepository
	client clients.WikiClient
	cities []string
}

func NewCityService(repo repository.CityRepository, client clients.WikiClient, cities []string) CityService {
	return &cityService{
		repo:   repo,
		client: client,
		cities: cities,
	}
}

// SeedCities заполняет статические таблицы cities и cities_info один раз.
// При повторном старте сервиса таблицы уже не пустые и скрапинг не выполняется.
func (s *cityService) SeedCities(ctx context.Context) error {
	if count, err := s.repo.Count(ctx); err == nil && count > 0 {
		log.Printf("Cities already seeded (%d rows), skipping scrape", count)
		return nil
	}

	log.Printf("Scraping %d city pages...", len(s.cities))

	infos := s.collect(ctx)
	if len(infos) == 0 {
		return fmt.Errorf("no city pages could be scraped")
	}

	if err := s.repo.AppendInfo(ctx, infos); err != nil {
		return fmt.Errorf("failed to save cities_info: %w", err)
	}

	cities := make([]models.City, 0, len(infos))
	for _, info := range infos {
		cities = append(cities, models.City{
			CityID:  info.CityID,
			City:    info.City,
			Country: info.Country,
		})
	}
	if err := s.repo.Append(ctx, cities); err != nil {
		return fmt.Errorf("failed to save cities: %w", err)
	}

	log.Printf("City reference data seeded: %d of %d cities", len(infos), len(s.cities))
	return nil
}

// collect скрапит по одной записи на город. Идентификаторы строго
// позиционные: первый город списка получает id 1, даже если соседние
// города не удалось обработать.
func (s *cityService) collect(ctx context.Context) []models.CityInfo {
	var infos []models.CityInfo

	for i, name := range s.cities {
		page, err := s.client.FetchCityPage(ctx, name)
		if err != nil {
			log.Printf("City %q skipped: %v", name, err)
			continue
		}

		lat, err := utils.ParseDMS(page.Latitude)
		if err != nil {
			log.Printf("City %q skipped: %v", name, err)
			continue
		}
		lon, err := utils.ParseDMS(page.Longitude)
		if err != nil {
			log.Printf("City %q skipped: %v", name, err)
			continue
		}

		info := models.CityInfo{
			CityID:    i + 1,
			City:      page.Title,
			Country:   page.Country,
			Latitude:  lat,
			Longitude: lon,
		}

		// население опционально: его отсутствие не роняет остальные города
		if page.Population != "" {
			if pop, err := utils.ParsePopulation(page.Population); err != nil {
				log.Printf("City %q: population left empty: %v", name, err)
			} else {
				info.Population = &pop
			}
		}

		infos = append(infos, info)
	}

	return infos
}

func (s *cityService) GetCities(ctx context.Context) ([]models.City, error) {
	return s.repo.GetAll(ctx)
}

func (s *cityService) GetCitiesInfo(ctx context.Context) ([]models.CityInfo, error) {
	return s.repo.GetAllInfo(ctx)
}

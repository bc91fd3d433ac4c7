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

type AirportService interface {
	SeedAirports(ctx context.Context) error
	LocateAirports(ctx context.Context, lats, lons []float64) ([]models.Airport, error)
	GetAirports(ctx context.Context) ([]models.Airport, error)
}

type airportService struct {
	repo     repository.AirportRepository
	cityRepo repository.CityRepository
	client   clients.AeroClient
}

func NewAirportService(
	repo repository.AirportRepository,
	cityRepo repository.CityRepository,
	client clients.AeroClient,
) AirportService {
	return &airportService{
		repo:     repo,
		cityRepo: cityRepo,
		client:   client,
	}
}

// SeedAirports заполняет статическую таблицу cities_airports один раз.
// Координаты берутся из cities_info, а не из рукописных констант -
// так поиск аэропортов не может разойтись со справочником городов.
func (s *airportService) SeedAirports(ctx context.Context) error {
	if count, err := s.repo.Count(ctx); err == nil && count > 0 {
		log.Printf("Airports already seeded (%d rows), skipping search", count)
		return nil
	}

	infos, err := s.cityRepo.GetAllInfo(ctx)
	if err != nil {
		return fmt.Errorf("failed to load city coordinates: %w", err)
	}
	if len(infos) == 0 {
		return fmt.Errorf("cities_info is empty, seed cities first")
	}

	lats := make([]float64, 0, len(infos))
	lons := make([]float64, 0, len(infos))
	for _, info := range infos {
		lats = append(lats, info.Latitude)
		lons = append(lons, info.Longitude)
	}

	airports, err := s.LocateAirports(ctx, lats, lons)
	if err != nil {
		return err
	}
	if len(airports) == 0 {
		return fmt.Errorf("no airports found near the configured cities")
	}

	if err := s.repo.Append(ctx, airports); err != nil {
		return fmt.Errorf("failed to save airports: %w", err)
	}

	log.Printf("Airport reference data seeded: %d rows", len(airports))
	return nil
}

// LocateAirports ищет аэропорты с регулярными рейсами в радиусе 100 км от
// каждой пары координат. Результаты склеиваются в порядке входа; аэропорт в
// пересекающихся радиусах двух городов попадает в выдачу дважды.
func (s *airportService) LocateAirports(ctx context.Context, lats, lons []float64) ([]models.Airport, error) {
	// несовпадение длин - фатальная ошибка до единого запроса
	if len(lats) != len(lons) {
		return nil, &ConstraintError{
			Message: fmt.Sprintf("latitude/longitude length mismatch: %d vs %d", len(lats), len(lons)),
		}
	}

	var airports []models.Airport

	for i := range lats {
		resp, err := s.client.SearchAirports(ctx, lats[i], lons[i])
		if err != nil {
			log.Printf("Airport search at (%v, %v) skipped: %v", lats[i], lons[i], err)
			continue
		}

		for _, item := range resp.Items {
			airports = append(airports, models.Airport{
				AirportICAO: item.ICAO,
				AirportName: item.Name,
				CountryCode: item.CountryCode,
				Latitude:    utils.Round2(item.Location.Lat),
				Longitude:   utils.Round2(item.Location.Lon),
			})
		}
	}

	return airports, nil
}

func (s *airportService) GetAirports(ctx context.Context) ([]models.Airport, error) {
	return s.repo.GetAll(ctx)
}

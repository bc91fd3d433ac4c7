package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"gans/internal/clients"
	"gans/internal/models"
	"gans/internal/repository"

	"github.com/google/uuid"
)

// Два полудневных окна, которыми покрывается завтрашний день.
var arrivalWindows = [2][2]string{
	{"00:00", "11:59"},
	{"12:00", "23:59"},
}

type ArrivalService interface {
	FetchAndStoreArrivals(ctx context.Context) error
	GetLatest(ctx context.Context, limit int) ([]models.Arrival, error)
}

type arrivalService struct {
	repo        repository.ArrivalRepository
	airportRepo repository.AirportRepository
	logRepo     repository.FetchLogRepository
	cacheRepo   repository.CacheRepository
	client      clients.AeroClient
	loc         *time.Location
	interval    time.Duration
}

type ArrivalServiceConfig struct {
	Location *time.Location
	Interval time.Duration
}

func NewArrivalService(
	repo repository.ArrivalRepository,
	airportRepo repository.AirportRepository,
	logRepo repository.FetchLogRepository,
	cacheRepo repository.CacheRepository,
	client clients.AeroClient,
	config ArrivalServiceConfig,
) ArrivalService {
	return &arrivalService{
		repo:        repo,
		airportRepo: airportRepo,
		logRepo:     logRepo,
		cacheRepo:   cacheRepo,
		client:      client,
		loc:         config.Location,
		interval:    config.Interval,
	}
}

func (s *arrivalService) FetchAndStoreArrivals(ctx context.Context) error {
	cacheKey := "arrivals:last_fetch"
	if cached, err := s.cacheRepo.Get(ctx, cacheKey); err == nil && cached != "" {
		log.Println("Arrivals fetched recently, skipping")
		return nil
	}

	airports, err := s.airportRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load airports: %w", err)
	}

	// таблица аэропортов может содержать дубликаты из пересекающихся
	// радиусов, по каждому ICAO спрашиваем прилеты один раз
	icaos := distinctICAOs(airports)
	if len(icaos) == 0 {
		return fmt.Errorf("cities_airports is empty, seed airports first")
	}

	log.Printf("Fetching arrivals for %d airports...", len(icaos))

	batchID := uuid.New()
	records := s.collect(ctx, batchID, icaos)
	if len(records) == 0 {
		return fmt.Errorf("no arrivals collected")
	}

	if err := s.repo.Append(ctx, records); err != nil {
		return fmt.Errorf("failed to save arrivals: %w", err)
	}

	s.cacheRepo.Set(ctx, cacheKey, "1", s.interval/2)
	log.Printf("Arrivals batch %s stored: %d rows", batchID, len(records))
	return nil
}

// collect опрашивает каждый аэропорт по двум окнам завтрашнего дня.
// Ошибка одной комбинации аэропорт/окно не мешает остальным; все строки
// одного запуска делят общую дату выгрузки.
func (s *arrivalService) collect(ctx context.Context, batchID uuid.UUID, icaos []string) []models.Arrival {
	now := time.Now().In(s.loc)
	day := now.AddDate(0, 0, 1).Format("2006-01-02")
	retrievedOn := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	var records []models.Arrival

	for _, icao := range icaos {
		for _, window := range arrivalWindows {
			from, err := time.ParseInLocation("2006-01-02 15:04", day+" "+window[0], s.loc)
			if err != nil {
				log.Printf("Arrivals %s window %v skipped: %v", icao, window, err)
				continue
			}
			to, err := time.ParseInLocation("2006-01-02 15:04", day+" "+window[1], s.loc)
			if err != nil {
				log.Printf("Arrivals %s window %v skipped: %v", icao, window, err)
				continue
			}

			resp, err := s.client.FetchArrivals(ctx, icao, from, to)
			if err != nil {
				log.Printf("Arrivals %s window %s-%s skipped: %v", icao, window[0], window[1], err)
				continue
			}

			s.auditPayload(ctx, batchID, fmt.Sprintf("aerodatabox:%s:%s", icao, window[0]), resp)

			for _, item := range resp.Arrivals {
				arrivalTime, err := parseLocalTime(item.Arrival.ScheduledTimeLocal)
				if err != nil {
					// строка либо парсится целиком, либо выбрасывается
					log.Printf("Arrival %s at %s dropped: %v", item.Number, icao, err)
					continue
				}

				records = append(records, models.Arrival{
					ArrivalAirportICAO:   icao,
					FlightNumber:         item.Number,
					Airline:              item.Airline.Name,
					ArrivalTime:          arrivalTime,
					DepartureCity:        item.Departure.Airport.Name,
					DepartureAirportICAO: item.Departure.Airport.ICAO,
					DataRetrievedOn:      retrievedOn,
				})
			}
		}
	}

	return records
}

// parseLocalTime отрезает хвостовое смещение UTC ("2023-03-07 11:45+01:00")
// и разбирает остаток как местное время.
func parseLocalTime(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if i := strings.IndexAny(s, "+Z"); i > 0 {
		s = s[:i]
	}
	// отрицательное смещение начинается после компоненты времени
	if i := strings.LastIndex(s, "-"); i > 10 {
		s = s[:i]
	}
	return time.Parse("2006-01-02 15:04", strings.TrimSpace(s))
}

func distinctICAOs(airports []models.Airport) []string {
	seen := make(map[string]bool, len(airports))
	var icaos []string
	for _, airport := range airports {
		if airport.AirportICAO == "" || seen[airport.AirportICAO] {
			continue
		}
		seen[airport.AirportICAO] = true
		icaos = append(icaos, airport.AirportICAO)
	}
	return icaos
}

func (s *arrivalService) auditPayload(ctx context.Context, batchID uuid.UUID, source string, payload interface{}) {
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

func (s *arrivalService) GetLatest(ctx context.Context, limit int) ([]models.Arrival, error) {
	if limit < 1 || limit > 1000 {
		limit = 100
	}
	return s.repo.GetLastN(ctx, limit)
}

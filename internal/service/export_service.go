package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gans/internal/repository"
	"gans/internal/utils"
)

const exportRowLimit = 5000

type ExportService interface {
	ExportWeather(ctx context.Context) (string, error)
}

type exportService struct {
	weatherRepo repository.WeatherRepository
	arrivalRepo repository.ArrivalRepository
	outputDir   string
}

func NewExportService(
	weatherRepo repository.WeatherRepository,
	arrivalRepo repository.ArrivalRepository,
	outputDir string,
) ExportService {
	return &exportService{
		weatherRepo: weatherRepo,
		arrivalRepo: arrivalRepo,
		outputDir:   outputDir,
	}
}

// ExportWeather собирает последние строки двух динамических таблиц
// в один xlsx файл и возвращает путь к нему.
func (s *exportService) ExportWeather(ctx context.Context) (string, error) {
	weather, err := s.weatherRepo.GetLastN(ctx, exportRowLimit)
	if err != nil {
		return "", fmt.Errorf("failed to load weather rows: %w", err)
	}

	arrivals, err := s.arrivalRepo.GetLastN(ctx, exportRowLimit)
	if err != nil {
		return "", fmt.Errorf("failed to load arrival rows: %w", err)
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	path := filepath.Join(s.outputDir,
		fmt.Sprintf("gans_export_%s.xlsx", time.Now().Format("20060102_150405")))

	if err := utils.CreateExcelFile(path, weather, arrivals); err != nil {
		return "", fmt.Errorf("failed to write excel file: %w", err)
	}

	return path, nil
}

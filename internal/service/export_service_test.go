package service

import (
	"context"
	"os"
	"testing"
	"time"

	"gans/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWeatherWritesFile(t *testing.T) {
	weatherRepo := &fakeWeatherRepo{records: []models.CityWeather{
		{CityID: 1, Country: "DE", ForecastTime: "2023-03-08 15:00:00", Temperature: 5.4},
	}}
	arrivalRepo := &fakeArrivalRepo{arrivals: []models.Arrival{
		{ArrivalAirportICAO: "EDDB", FlightNumber: "LH 1954", ArrivalTime: time.Now()},
	}}

	svc := NewExportService(weatherRepo, arrivalRepo, t.TempDir())

	path, err := svc.ExportWeather(context.Background())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Greater(t, info.Size(), int64(0))
}

package service

import (
	"context"
	"testing"

	"gans/internal/clients"
	"gans/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func airportSearchFixture(items ...clients.AirportItem) *clients.AirportSearchResponse {
	return &clients.AirportSearchResponse{Items: items}
}

func airportItem(icao, name, country string, lat, lon float64) clients.AirportItem {
	item := clients.AirportItem{ICAO: icao, Name: name, CountryCode: country}
	item.Location.Lat = lat
	item.Location.Lon = lon
	return item
}

func TestLocateAirportsLengthMismatch(t *testing.T) {
	client := &fakeAeroClient{}
	svc := NewAirportService(&fakeAirportRepo{}, &fakeCityRepo{}, client)

	_, err := svc.LocateAirports(context.Background(), []float64{52.31, 51.51}, []float64{13.24})
	require.Error(t, err)

	var constraintErr *ConstraintError
	assert.ErrorAs(t, err, &constraintErr)

	// ошибка поднимается до единого запроса к API
	assert.Zero(t, client.searchCalls)
}

func TestLocateAirportsKeepsDuplicates(t *testing.T) {
	// один и тот же аэропорт попадает в радиусы двух городов
	shared := airportItem("EHAM", "Amsterdam Schiphol", "NL", 52.30806, 4.76417)

	client := &fakeAeroClient{searches: map[string]*clients.AirportSearchResponse{
		"52.37,4.9":  airportSearchFixture(shared),
		"52.16,4.49": airportSearchFixture(shared),
	}}
	svc := NewAirportService(&fakeAirportRepo{}, &fakeCityRepo{}, client)

	airports, err := svc.LocateAirports(context.Background(),
		[]float64{52.37, 52.16}, []float64{4.9, 4.49})
	require.NoError(t, err)

	// дубликаты сохраняются, координаты округлены до 2 знаков
	require.Len(t, airports, 2)
	assert.Equal(t, airports[0].AirportICAO, airports[1].AirportICAO)
	assert.Equal(t, 52.31, airports[0].Latitude)
	assert.Equal(t, 4.76, airports[0].Longitude)
}

func TestLocateAirportsSkipsFailedPair(t *testing.T) {
	client := &fakeAeroClient{searches: map[string]*clients.AirportSearchResponse{
		"52.31,13.24": airportSearchFixture(
			airportItem("EDDB", "Berlin Brandenburg", "DE", 52.35139, 13.49389),
		),
		// вторая пара координат вернет ошибку
	}}
	svc := NewAirportService(&fakeAirportRepo{}, &fakeCityRepo{}, client)

	airports, err := svc.LocateAirports(context.Background(),
		[]float64{52.31, 0}, []float64{13.24, 0})
	require.NoError(t, err)

	require.Len(t, airports, 1)
	assert.Equal(t, "EDDB", airports[0].AirportICAO)
}

func TestSeedAirportsReadsCoordinatesFromCitiesInfo(t *testing.T) {
	cityRepo := &fakeCityRepo{infos: []models.CityInfo{
		{CityID: 1, City: "Berlin", Latitude: 52.31, Longitude: 13.24},
	}}
	client := &fakeAeroClient{searches: map[string]*clients.AirportSearchResponse{
		"52.31,13.24": airportSearchFixture(
			airportItem("EDDB", "Berlin Brandenburg", "DE", 52.35139, 13.49389),
		),
	}}
	repo := &fakeAirportRepo{}

	svc := NewAirportService(repo, cityRepo, client)
	require.NoError(t, svc.SeedAirports(context.Background()))

	require.Len(t, repo.airports, 1)
	assert.Equal(t, "EDDB", repo.airports[0].AirportICAO)
	assert.Equal(t, "DE", repo.airports[0].CountryCode)
}

func TestSeedAirportsSkipsWhenAlreadySeeded(t *testing.T) {
	repo := &fakeAirportRepo{airports: []models.Airport{{AirportICAO: "EDDB"}}}
	client := &fakeAeroClient{}

	svc := NewAirportService(repo, &fakeCityRepo{}, client)
	require.NoError(t, svc.SeedAirports(context.Background()))

	assert.Zero(t, client.searchCalls)
}

func TestSeedAirportsFailsWithoutCities(t *testing.T) {
	svc := NewAirportService(&fakeAirportRepo{}, &fakeCityRepo{}, &fakeAeroClient{})
	err := svc.SeedAirports(context.Background())
	assert.Error(t, err)
}

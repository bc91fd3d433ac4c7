package service

import (
	"context"
	"fmt"
	"time"

	"gans/internal/clients"
	"gans/internal/models"
)

// fakeWikiClient отдает заранее заготовленные страницы по имени города.
type fakeWikiClient struct {
	pages map[string]*clients.CityPage
	calls []string
}

func (f *fakeWikiClient) FetchCityPage(_ context.Context, city string) (*clients.CityPage, error) {
	f.calls = append(f.calls, city)
	page, ok := f.pages[city]
	if !ok {
		return nil, fmt.Errorf("no such page: %s", city)
	}
	return page, nil
}

type fakeWeatherClient struct {
	forecasts map[string]*clients.ForecastResponse
	calls     []string
}

func (f *fakeWeatherClient) FetchForecast(_ context.Context, city string) (*clients.ForecastResponse, error) {
	f.calls = append(f.calls, city)
	forecast, ok := f.forecasts[city]
	if !ok {
		return nil, fmt.Errorf("city not found: %s", city)
	}
	return forecast, nil
}

type fakeAeroClient struct {
	searches map[string]*clients.AirportSearchResponse
	arrivals map[string]*clients.ArrivalsResponse

	searchCalls  int
	arrivalCalls []string
	windows      [][2]time.Time
}

func (f *fakeAeroClient) SearchAirports(_ context.Context, lat, lon float64) (*clients.AirportSearchResponse, error) {
	f.searchCalls++
	key := fmt.Sprintf("%v,%v", lat, lon)
	resp, ok := f.searches[key]
	if !ok {
		return nil, fmt.Errorf("no airports near %s", key)
	}
	return resp, nil
}

func (f *fakeAeroClient) FetchArrivals(_ context.Context, icao string, from, to time.Time) (*clients.ArrivalsResponse, error) {
	f.arrivalCalls = append(f.arrivalCalls, icao)
	f.windows = append(f.windows, [2]time.Time{from, to})
	resp, ok := f.arrivals[icao]
	if !ok {
		return nil, fmt.Errorf("unknown airport: %s", icao)
	}
	return resp, nil
}

type fakeCityRepo struct {
	cities []models.City
	infos  []models.CityInfo
}

func (f *fakeCityRepo) Append(_ context.Context, cities []models.City) error {
	f.cities = append(f.cities, cities...)
	return nil
}

func (f *fakeCityRepo) AppendInfo(_ context.Context, infos []models.CityInfo) error {
	f.infos = append(f.infos, infos...)
	return nil
}

func (f *fakeCityRepo) GetAll(_ context.Context) ([]models.City, error) {
	return f.cities, nil
}

func (f *fakeCityRepo) GetAllInfo(_ context.Context) ([]models.CityInfo, error) {
	return f.infos, nil
}

func (f *fakeCityRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.cities)), nil
}

type fakeWeatherRepo struct {
	records []models.CityWeather
}

func (f *fakeWeatherRepo) Append(_ context.Context, records []models.CityWeather) error {
	f.records = append(f.records, records...)
	return nil
}

func (f *fakeWeatherRepo) GetLastN(_ context.Context, n int) ([]models.CityWeather, error) {
	if n > len(f.records) {
		n = len(f.records)
	}
	return f.records[len(f.records)-n:], nil
}

func (f *fakeWeatherRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.records)), nil
}

type fakeAirportRepo struct {
	airports []models.Airport
}

func (f *fakeAirportRepo) Append(_ context.Context, airports []models.Airport) error {
	f.airports = append(f.airports, airports...)
	return nil
}

func (f *fakeAirportRepo) GetAll(_ context.Context) ([]models.Airport, error) {
	return f.airports, nil
}

func (f *fakeAirportRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.airports)), nil
}

type fakeArrivalRepo struct {
	arrivals []models.Arrival
}

func (f *fakeArrivalRepo) Append(_ context.Context, arrivals []models.Arrival) error {
	f.arrivals = append(f.arrivals, arrivals...)
	return nil
}

func (f *fakeArrivalRepo) GetLastN(_ context.Context, n int) ([]models.Arrival, error) {
	if n > len(f.arrivals) {
		n = len(f.arrivals)
	}
	return f.arrivals[len(f.arrivals)-n:], nil
}

func (f *fakeArrivalRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.arrivals)), nil
}

// fakeCache повторяет контракт redis-репозитория без TTL.
type fakeCache struct {
	values map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string]string)}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.values[key] = fmt.Sprintf("%v", value)
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeCache) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.values[key]
	return ok, nil
}

func (f *fakeCache) GetJSON(_ context.Context, _ string, _ interface{}) error {
	return nil
}

func (f *fakeCache) SetJSON(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

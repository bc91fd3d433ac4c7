package service

import (
	"context"
	"testing"
	"time"

	"gans/internal/clients"
	"gans/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arrivalsFixture(items ...clients.ArrivalItem) *clients.ArrivalsResponse {
	return &clients.ArrivalsResponse{Arrivals: items}
}

func arrivalItem(number, scheduled, depName, depICAO, airline string) clients.ArrivalItem {
	item := clients.ArrivalItem{Number: number}
	item.Arrival.ScheduledTimeLocal = scheduled
	item.Departure.Airport.Name = depName
	item.Departure.Airport.ICAO = depICAO
	item.Airline.Name = airline
	return item
}

func newArrivalService(
	repo *fakeArrivalRepo,
	airportRepo *fakeAirportRepo,
	cache *fakeCache,
	client *fakeAeroClient,
) ArrivalService {
	return NewArrivalService(repo, airportRepo, nil, cache, client, ArrivalServiceConfig{
		Location: time.UTC,
		Interval: 12 * time.Hour,
	})
}

func TestFetchAndStoreArrivals(t *testing.T) {
	airportRepo := &fakeAirportRepo{airports: []models.Airport{
		{AirportICAO: "EDDB"},
		{AirportICAO: "EGLL"},
		// дубликат из пересекающихся радиусов поиска
		{AirportICAO: "EDDB"},
	}}
	client := &fakeAeroClient{arrivals: map[string]*clients.ArrivalsResponse{
		"EDDB": arrivalsFixture(
			arrivalItem("LH 1954", "2023-03-08 11:45+01:00", "Munich", "EDDM", "Lufthansa"),
		),
		"EGLL": arrivalsFixture(
			arrivalItem("BA 117", "2023-03-08 14:10+00:00", "New York JFK", "KJFK", "British Airways"),
		),
	}}
	repo := &fakeArrivalRepo{}

	svc := newArrivalService(repo, airportRepo, newFakeCache(), client)
	require.NoError(t, svc.FetchAndStoreArrivals(context.Background()))

	// два окна на каждый уникальный ICAO, дубликат не опрашивается повторно
	require.Len(t, client.arrivalCalls, 4)
	assert.Equal(t, []string{"EDDB", "EDDB", "EGLL", "EGLL"}, client.arrivalCalls)

	// окна покрывают завтрашний день двумя половинами
	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	first := client.windows[0]
	assert.Equal(t, tomorrow+" 00:00", first[0].Format("2006-01-02 15:04"))
	assert.Equal(t, tomorrow+" 11:59", first[1].Format("2006-01-02 15:04"))
	second := client.windows[1]
	assert.Equal(t, tomorrow+" 12:00", second[0].Format("2006-01-02 15:04"))
	assert.Equal(t, tomorrow+" 23:59", second[1].Format("2006-01-02 15:04"))

	// по одной строке на рейс и окно; каждая строка помечена своим аэропортом
	require.Len(t, repo.arrivals, 4)
	assert.Equal(t, "EDDB", repo.arrivals[0].ArrivalAirportICAO)
	assert.Equal(t, "LH 1954", repo.arrivals[0].FlightNumber)
	assert.Equal(t, "Lufthansa", repo.arrivals[0].Airline)
	assert.Equal(t, "Munich", repo.arrivals[0].DepartureCity)
	assert.Equal(t, "EDDM", repo.arrivals[0].DepartureAirportICAO)
	assert.Equal(t, "EGLL", repo.arrivals[2].ArrivalAirportICAO)

	// смещение UTC отрезано, остаток разобран как местное время
	expected := time.Date(2023, 3, 8, 11, 45, 0, 0, time.UTC)
	assert.True(t, repo.arrivals[0].ArrivalTime.Equal(expected))

	// все строки запуска делят общую дату выгрузки - полночь текущего дня
	retrievedOn := repo.arrivals[0].DataRetrievedOn
	assert.Equal(t, 0, retrievedOn.Hour())
	assert.Equal(t, 0, retrievedOn.Minute())
	for _, arrival := range repo.arrivals {
		assert.True(t, arrival.DataRetrievedOn.Equal(retrievedOn))
	}
}

func TestFetchAndStoreArrivalsDropsUnparsableRows(t *testing.T) {
	airportRepo := &fakeAirportRepo{airports: []models.Airport{{AirportICAO: "EDDB"}}}
	client := &fakeAeroClient{arrivals: map[string]*clients.ArrivalsResponse{
		"EDDB": arrivalsFixture(
			arrivalItem("LH 1954", "2023-03-08 11:45+01:00", "Munich", "EDDM", "Lufthansa"),
			arrivalItem("XX 1", "garbage", "Nowhere", "XXXX", "Ghost Air"),
		),
	}}
	repo := &fakeArrivalRepo{}

	svc := newArrivalService(repo, airportRepo, newFakeCache(), client)
	require.NoError(t, svc.FetchAndStoreArrivals(context.Background()))

	// сломанная строка выброшена, остальные сохранены
	require.Len(t, repo.arrivals, 2)
	for _, arrival := range repo.arrivals {
		assert.Equal(t, "LH 1954", arrival.FlightNumber)
	}
}

func TestFetchAndStoreArrivalsSkipsFailedAirport(t *testing.T) {
	airportRepo := &fakeAirportRepo{airports: []models.Airport{
		{AirportICAO: "EDDB"},
		{AirportICAO: "ZZZZ"},
	}}
	client := &fakeAeroClient{arrivals: map[string]*clients.ArrivalsResponse{
		"EDDB": arrivalsFixture(
			arrivalItem("LH 1954", "2023-03-08 11:45+01:00", "Munich", "EDDM", "Lufthansa"),
		),
		// ZZZZ вернет ошибку на оба окна
	}}
	repo := &fakeArrivalRepo{}

	svc := newArrivalService(repo, airportRepo, newFakeCache(), client)
	require.NoError(t, svc.FetchAndStoreArrivals(context.Background()))

	require.Len(t, repo.arrivals, 2)
	assert.Equal(t, "EDDB", repo.arrivals[0].ArrivalAirportICAO)
}

func TestFetchAndStoreArrivalsGuardsAgainstDoubleRun(t *testing.T) {
	airportRepo := &fakeAirportRepo{airports: []models.Airport{{AirportICAO: "EDDB"}}}
	client := &fakeAeroClient{arrivals: map[string]*clients.ArrivalsResponse{
		"EDDB": arrivalsFixture(
			arrivalItem("LH 1954", "2023-03-08 11:45+01:00", "Munich", "EDDM", "Lufthansa"),
		),
	}}
	repo := &fakeArrivalRepo{}
	cache := newFakeCache()

	svc := newArrivalService(repo, airportRepo, cache, client)
	require.NoError(t, svc.FetchAndStoreArrivals(context.Background()))
	require.NoError(t, svc.FetchAndStoreArrivals(context.Background()))

	assert.Len(t, client.arrivalCalls, 2)
	assert.Len(t, repo.arrivals, 2)
}

func TestFetchAndStoreArrivalsFailsWithoutAirports(t *testing.T) {
	svc := newArrivalService(&fakeArrivalRepo{}, &fakeAirportRepo{}, newFakeCache(), &fakeAeroClient{})
	err := svc.FetchAndStoreArrivals(context.Background())
	assert.Error(t, err)
}

func TestParseLocalTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"positive offset", "2023-03-08 11:45+01:00", time.Date(2023, 3, 8, 11, 45, 0, 0, time.UTC)},
		{"negative offset", "2023-03-08 19:30-05:00", time.Date(2023, 3, 8, 19, 30, 0, 0, time.UTC)},
		{"zulu suffix", "2023-03-08 08:15Z", time.Date(2023, 3, 8, 8, 15, 0, 0, time.UTC)},
		{"no offset", "2023-03-08 22:05", time.Date(2023, 3, 8, 22, 5, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLocalTime(tt.raw)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want))
		})
	}

	_, err := parseLocalTime("garbage")
	assert.Error(t, err)
}

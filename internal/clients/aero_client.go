package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	airportSearchRadiusKm = 100
	airportSearchLimit    = 16
)

// AirportSearchResponse - аэропорты в радиусе от точки.
type AirportSearchResponse struct {
	Items []AirportItem `json:"items"`
}

type AirportItem struct {
	ICAO        string `json:"icao"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Location    struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"location"`
}

// ArrivalsResponse - прилеты аэропорта за запрошенное окно.
type ArrivalsResponse struct {
	Arrivals []ArrivalItem `json:"arrivals"`
}

type ArrivalItem struct {
	Number  string `json:"number"`
	Arrival struct {
		ScheduledTimeLocal string `json:"scheduledTimeLocal"`
	} `json:"arrival"`
	Departure struct {
		Airport struct {
			Name string `json:"name"`
			ICAO string `json:"icao"`
		} `json:"airport"`
	} `json:"departure"`
	Airline struct {
		Name string `json:"name"`
	} `json:"airline"`
}

type AeroClient interface {
	SearchAirports(ctx context.Context, lat, lon float64) (*AirportSearchResponse, error)
	FetchArrivals(ctx context.Context, icao string, from, to time.Time) (*ArrivalsResponse, error)
}

type aeroClient struct {
	apiKey  string
	apiHost string
	baseURL string
	client  *http.Client
}

type AeroConfig struct {
	APIKey  string
	APIHost string
	BaseURL string
}

func NewAeroClient(config AeroConfig) AeroClient {
	return &aeroClient{
		apiKey:  config.APIKey,
		apiHost: config.APIHost,
		baseURL: config.BaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *aeroClient) SearchAirports(ctx context.Context, lat, lon float64) (*AirportSearchResponse, error) {
	endpoint := fmt.Sprintf("%s/airports/search/location/%v/%v/km/%d/%d?withFlightInfoOnly=true",
		c.baseURL, lat, lon, airportSearchRadiusKm, airportSearchLimit)

	var result AirportSearchResponse
	if err := c.doGET(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *aeroClient) FetchArrivals(ctx context.Context, icao string, from, to time.Time) (*ArrivalsResponse, error) {
	endpoint := fmt.Sprintf("%s/flights/airports/icao/%s/%s/%s?withLeg=true&direction=Arrival&withCancelled=false&withCodeshared=true",
		c.baseURL, icao, from.Format("2006-01-02T15:04"), to.Format("2006-01-02T15:04"))

	var result ArrivalsResponse
	if err := c.doGET(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *aeroClient) doGET(ctx context.Context, endpoint string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return &NetworkError{Operation: "aerodatabox request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}

	return nil
}

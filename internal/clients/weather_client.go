package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ForecastResponse - ответ OpenWeatherMap 5 day / 3 hour forecast.
type ForecastResponse struct {
	City ForecastCity    `json:"city"`
	List []ForecastEntry `json:"list"`
}

type ForecastCity struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type ForecastEntry struct {
	DtTxt   string `json:"dt_txt"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	// Осадки отдаются только когда они есть; указатель отличает
	// отсутствие поля от честного нуля.
	Rain *Precipitation `json:"rain,omitempty"`
	Snow *Precipitation `json:"snow,omitempty"`
}

type Precipitation struct {
	ThreeHour float64 `json:"3h"`
}

type WeatherClient interface {
	FetchForecast(ctx context.Context, city string) (*ForecastResponse, error)
}

type weatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type WeatherConfig struct {
	APIKey  string
	BaseURL string
}

func NewWeatherClient(config WeatherConfig) WeatherClient {
	return &weatherClient{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *weatherClient) FetchForecast(ctx context.Context, city string) (*ForecastResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", "Gans-Data-Pipeline/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Operation: "fetch forecast", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var forecast ForecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}

	if len(forecast.List) == 0 {
		return nil, &ShapeError{Source: "openweathermap", Field: "list"}
	}

	return &forecast, nil
}

package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastJSON = `{
  "city": {"name": "Berlin", "country": "DE"},
  "list": [
    {
      "dt_txt": "2023-03-08 15:00:00",
      "weather": [{"main": "Rain"}],
      "main": {"temp": 5.4, "feels_like": 2.1, "humidity": 87, "pressure": 1006},
      "clouds": {"all": 100},
      "wind": {"speed": 6.3},
      "rain": {"3h": 0.62}
    },
    {
      "dt_txt": "2023-03-08 18:00:00",
      "weather": [{"main": "Clouds"}],
      "main": {"temp": 4.1, "feels_like": 1.0, "humidity": 90, "pressure": 1004},
      "clouds": {"all": 95},
      "wind": {"speed": 5.1}
    }
  ]
}`

func TestFetchForecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(forecastJSON))
	}))
	defer server.Close()

	client := NewWeatherClient(WeatherConfig{APIKey: "test-key", BaseURL: server.URL})

	forecast, err := client.FetchForecast(context.Background(), "Berlin")
	require.NoError(t, err)

	assert.Equal(t, "DE", forecast.City.Country)
	require.Len(t, forecast.List, 2)

	first := forecast.List[0]
	assert.Equal(t, "2023-03-08 15:00:00", first.DtTxt)
	assert.Equal(t, 5.4, first.Main.Temp)
	require.NotNil(t, first.Rain)
	assert.Equal(t, 0.62, first.Rain.ThreeHour)

	// без дождя поле отсутствует целиком
	second := forecast.List[1]
	assert.Nil(t, second.Rain)
	assert.Nil(t, second.Snow)
}

func TestFetchForecastEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"city": {"name": "Berlin", "country": "DE"}, "list": []}`))
	}))
	defer server.Close()

	client := NewWeatherClient(WeatherConfig{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.FetchForecast(context.Background(), "Berlin")
	require.Error(t, err)

	var shapeErr *ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestFetchForecastUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":401,"message":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewWeatherClient(WeatherConfig{APIKey: "bad-key", BaseURL: server.URL})

	_, err := client.FetchForecast(context.Background(), "Berlin")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

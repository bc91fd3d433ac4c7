package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App struct {
		Port        string
		Debug       bool
		FrontendURL string
	}
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Wiki struct {
		BaseURL string
	}
	Weather struct {
		APIKey  string
		BaseURL string
	}
	Aero struct {
		APIKey  string
		APIHost string
		BaseURL string
	}
	Cities struct {
		Names    []string
		IDs      map[string]int
		Timezone string
	}
	Workers struct {
		WeatherEnabled   bool
		ArrivalsEnabled  bool
		WeatherInterval  time.Duration
		ArrivalsInterval time.Duration
	}
	RateLimit struct {
		RequestsPerSecond int
		Burst             int
	}
	Export struct {
		OutputDir string
	}
}

func Load() *Config {
	cfg := &Config{}

	// App
	cfg.App.Port = getEnv("PORT", "8080")
	cfg.App.Debug = getEnvAsBool("DEBUG", false)
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	// DB (исходная схема gans живет в MySQL)
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "3306")
	cfg.DB.User = getEnv("DB_USER", "root")
	cfg.DB.Password = getEnv("DB_PASSWORD", "")
	cfg.DB.DBName = getEnv("DB_NAME", "gans")

	// Redis
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnv("REDIS_PORT", "6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getEnvAsInt("REDIS_DB", 0)

	// Внешние источники
	cfg.Wiki.BaseURL = getEnv("WIKI_BASE_URL", "https://en.wikipedia.org/wiki")
	cfg.Weather.APIKey = getEnv("OPENWEATHER_API_KEY", "")
	cfg.Weather.BaseURL = getEnv("OPENWEATHER_URL", "http://api.openweathermap.org/data/2.5/forecast")
	cfg.Aero.APIKey = getEnv("RAPIDAPI_KEY", "")
	cfg.Aero.APIHost = getEnv("RAPIDAPI_HOST", "aerodatabox.p.rapidapi.com")
	cfg.Aero.BaseURL = getEnv("AERODATABOX_URL", "https://aerodatabox.p.rapidapi.com")

	// Города: порядок списка фиксирует city_id статических таблиц,
	// явная карта имя->id используется динамической таблицей погоды.
	cfg.Cities.Names = getEnvAsList("CITIES", "Berlin,London,Barcelona,Cagliari,Amsterdam")
	cfg.Cities.IDs = getEnvAsIDMap("CITY_IDS", map[string]int{
		"Berlin":    1,
		"London":    2,
		"Barcelona": 3,
		"Cagliari":  4,
		"Amsterdam": 5,
		"Gdansk":    6,
	})
	cfg.Cities.Timezone = getEnv("CITIES_TIMEZONE", "Europe/Berlin")

	// Workers
	cfg.Workers.WeatherEnabled = getEnvAsBool("WEATHER_ENABLED", true)
	cfg.Workers.ArrivalsEnabled = getEnvAsBool("ARRIVALS_ENABLED", true)
	cfg.Workers.WeatherInterval = getEnvAsDuration("WORKER_WEATHER_INTERVAL", 12*time.Hour)
	cfg.Workers.ArrivalsInterval = getEnvAsDuration("WORKER_ARRIVALS_INTERVAL", 12*time.Hour)

	// Rate Limit
	cfg.RateLimit.RequestsPerSecond = getEnvAsInt("RATE_LIMIT_RPS", 10)
	cfg.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 20)

	// Export
	cfg.Export.OutputDir = getEnv("EXPORT_OUTPUT_DIR", "./data/exports")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if dur, err := time.ParseDuration(value); err == nil {
			return dur
		}
	}
	return defaultValue
}

func getEnvAsList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)

	var items []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// getEnvAsIDMap парсит строки вида "Berlin:1,London:2".
func getEnvAsIDMap(key string, defaultValue map[string]int) map[string]int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	result := make(map[string]int)
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 {
			continue
		}
		if id, err := strconv.Atoi(parts[1]); err == nil {
			result[parts[0]] = id
		}
	}

	if len(result) == 0 {
		return defaultValue
	}
	return result
}

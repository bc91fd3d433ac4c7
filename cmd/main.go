package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gans/internal/clients"
	"gans/internal/config"
	"gans/internal/handlers"
	"gans/internal/middleware"
	"gans/internal/repository"
	"gans/internal/service"
	"gans/internal/worker"
	"gans/pkg/database"
	"gans/pkg/redis"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	// Загрузка .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.Println("=== Gans Data Pipeline Starting ===")

	// Загрузка конфигурации
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Cities.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone:", err)
	}

	// Подключение к MySQL
	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	// Подключение к Redis
	redisClient, err := redis.Connect(cfg.Redis)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer redisClient.Close()

	// Автомиграция моделей
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Инициализация репозиториев
	cityRepo := repository.NewCityRepository(db)
	weatherRepo := repository.NewWeatherRepository(db)
	airportRepo := repository.NewAirportRepository(db)
	arrivalRepo := repository.NewArrivalRepository(db)
	logRepo := repository.NewFetchLogRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient)

	wikiClient := clients.NewWikiClient(cfg.Wiki.BaseURL)
	weatherClient := clients.NewWeatherClient(clients.WeatherConfig{
		APIKey:  cfg.Weather.APIKey,
		BaseURL: cfg.Weather.BaseURL,
	})
	aeroClient := clients.NewAeroClient(clients.AeroConfig{
		APIKey:  cfg.Aero.APIKey,
		APIHost: cfg.Aero.APIHost,
		BaseURL: cfg.Aero.BaseURL,
	})

	// Инициализация сервисов
	cityService := service.NewCityService(cityRepo, wikiClient, cfg.Cities.Names)
	airportService := service.NewAirportService(airportRepo, cityRepo, aeroClient)
	weatherService := service.NewWeatherService(weatherRepo, logRepo, cacheRepo, weatherClient,
		service.WeatherServiceConfig{
			Cities:   cfg.Cities.Names,
			CityIDs:  cfg.Cities.IDs,
			Location: loc,
			Interval: cfg.Workers.WeatherInterval,
		})
	arrivalService := service.NewArrivalService(arrivalRepo, airportRepo, logRepo, cacheRepo, aeroClient,
		service.ArrivalServiceConfig{
			Location: loc,
			Interval: cfg.Workers.ArrivalsInterval,
		})
	exportService := service.NewExportService(weatherRepo, arrivalRepo, cfg.Export.OutputDir)

	// Статические таблицы наполняются один раз при старте
	{
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		if err := cityService.SeedCities(ctx); err != nil {
			log.Printf("Failed to seed cities: %v", err)
		}
		if err := airportService.SeedAirports(ctx); err != nil {
			log.Printf("Failed to seed airports: %v", err)
		}
		cancel()
	}

	// Инициализация воркеров (фоновые задачи)
	scheduler := worker.NewScheduler(10 * time.Second)

	if cfg.Workers.WeatherEnabled {
		scheduler.AddWorker(worker.NewWeatherWorker(weatherService, cfg.Workers.WeatherInterval))
		log.Printf("Weather Worker enabled (interval: %v)", cfg.Workers.WeatherInterval)
	}

	if cfg.Workers.ArrivalsEnabled {
		scheduler.AddWorker(worker.NewArrivalsWorker(arrivalService, cfg.Workers.ArrivalsInterval))
		log.Printf("Arrivals Worker enabled (interval: %v)", cfg.Workers.ArrivalsInterval)
	}

	// Запускаем воркеры в фоне
	go scheduler.Start()
	defer scheduler.Stop()

	// Инициализация Gin
	if cfg.App.Debug {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in DEBUG mode")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// CORS для фронтенда
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiting (только для продакшена)
	if !cfg.App.Debug {
		limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.Burst)
		r.Use(middleware.RateLimitMiddleware(limiter))
		log.Printf("Rate limiting enabled: %d req/sec, burst: %d",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Инициализация хендлеров
	cityHandler := handlers.NewCityHandler(cityService, airportService)
	weatherHandler := handlers.NewWeatherHandler(weatherService)
	arrivalHandler := handlers.NewArrivalHandler(arrivalService)
	exportHandler := handlers.NewExportHandler(exportService)
	systemHandler := handlers.NewSystemHandler(cityRepo, weatherRepo, airportRepo, arrivalRepo, logRepo)

	// Группа API v1
	api := r.Group("/api/v1")

	// Статические справочники
	api.GET("/cities", cityHandler.GetCities)
	api.GET("/cities/info", cityHandler.GetCitiesInfo)
	api.GET("/airports", cityHandler.GetAirports)

	// Динамические таблицы
	api.GET("/weather/latest", weatherHandler.GetLatestWeather)
	api.GET("/arrivals/latest", arrivalHandler.GetLatestArrivals)

	// Экспорт в xlsx
	api.GET("/export/weather", exportHandler.ExportWeather)

	// Системные эндпоинты
	api.GET("/health", systemHandler.HealthCheck)
	api.GET("/system/stats", systemHandler.GetStats)

	// Force refresh endpoints (для дебага)
	if cfg.App.Debug {
		api.POST("/refresh/cities", cityHandler.ForceSeedCities)
		api.POST("/refresh/weather", weatherHandler.ForceFetchWeather)
		api.POST("/refresh/arrivals", arrivalHandler.ForceFetchArrivals)
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	server := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%s", cfg.App.Port)
		log.Printf("API available at http://localhost:%s/api/v1", cfg.App.Port)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start:", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited properly")
}

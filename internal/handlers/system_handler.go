package handlers

import (
	"net/http"
	"time"

	"gans/internal/repository"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	cityRepo    repository.CityRepository
	weatherRepo repository.WeatherRepository
	airportRepo repository.AirportRepository
	arrivalRepo repository.ArrivalRepository
	logRepo     repository.FetchLogRepository
	startedAt   time.Time
}

func NewSystemHandler(
	cityRepo repository.CityRepository,
	weatherRepo repository.WeatherRepository,
	airportRepo repository.AirportRepository,
	arrivalRepo repository.ArrivalRepository,
	logRepo repository.FetchLogRepository,
) *SystemHandler {
	return &SystemHandler{
		cityRepo:    cityRepo,
		weatherRepo: weatherRepo,
		airportRepo: airportRepo,
		arrivalRepo: arrivalRepo,
		logRepo:     logRepo,
		startedAt:   time.Now(),
	}
}

func (h *SystemHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   "1.0.0",
		"uptime":    time.Since(h.startedAt).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetStats возвращает количество строк в каждой таблице пайплайна.
func (h *SystemHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	stats := gin.H{}
	var errors []string

	if n, err := h.cityRepo.Count(ctx); err != nil {
		errors = append(errors, "cities: "+err.Error())
	} else {
		stats["cities"] = n
	}

	if n, err := h.weatherRepo.Count(ctx); err != nil {
		errors = append(errors, "weather: "+err.Error())
	} else {
		stats["weather_rows"] = n
	}

	if n, err := h.airportRepo.Count(ctx); err != nil {
		errors = append(errors, "airports: "+err.Error())
	} else {
		stats["airports"] = n
	}

	if n, err := h.arrivalRepo.Count(ctx); err != nil {
		errors = append(errors, "arrivals: "+err.Error())
	} else {
		stats["arrival_rows"] = n
	}

	if n, err := h.logRepo.Count(ctx); err != nil {
		errors = append(errors, "fetch_logs: "+err.Error())
	} else {
		stats["fetch_logs"] = n
	}

	response := gin.H{
		"success": len(errors) == 0,
		"data":    stats,
	}
	if len(errors) > 0 {
		response["errors"] = errors
	}

	c.JSON(http.StatusOK, response)
}

package handlers

import (
	"net/http"
	"strconv"

	"gans/internal/service"

	"github.com/gin-gonic/gin"
)

type WeatherHandler struct {
	service service.WeatherService
}

func NewWeatherHandler(service service.WeatherService) *WeatherHandler {
	return &WeatherHandler{service: service}
}

func (h *WeatherHandler) GetLatestWeather(c *gin.Context) {
	ctx := c.Request.Context()

	limit := 200 // значение по умолчанию
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	records, err := h.service.GetLatest(ctx, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to get weather records",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, records)
}

func (h *WeatherHandler) ForceFetchWeather(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.service.FetchAndStoreForecasts(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch forecasts",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "forecasts fetched successfully",
	})
}

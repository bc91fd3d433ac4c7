package handlers

import (
	"net/http"

	"gans/internal/service"

	"github.com/gin-gonic/gin"
)

type CityHandler struct {
	cityService    service.CityService
	airportService service.AirportService
}

func NewCityHandler(cityService service.CityService, airportService service.AirportService) *CityHandler {
	return &CityHandler{
		cityService:    cityService,
		airportService: airportService,
	}
}

func (h *CityHandler) GetCities(c *gin.Context) {
	ctx := c.Request.Context()

	cities, err := h.cityService.GetCities(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to get cities",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, cities)
}

func (h *CityHandler) GetCitiesInfo(c *gin.Context) {
	ctx := c.Request.Context()

	infos, err := h.cityService.GetCitiesInfo(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to get city profiles",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, infos)
}

func (h *CityHandler) GetAirports(c *gin.Context) {
	ctx := c.Request.Context()

	airports, err := h.airportService.GetAirports(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to get airports",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, airports)
}

func (h *CityHandler) ForceSeedCities(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.cityService.SeedCities(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to seed cities",
			"message": err.Error(),
		})
		return
	}

	if err := h.airportService.SeedAirports(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to seed airports",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "cities and airports seeded successfully",
	})
}

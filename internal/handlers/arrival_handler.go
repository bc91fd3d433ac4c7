package handlers

import (
	"net/http"
	"strconv"

	"gans/internal/service"

	"github.com/gin-gonic/gin"
)

type ArrivalHandler struct {
	service service.ArrivalService
}

func NewArrivalHandler(service service.ArrivalService) *ArrivalHandler {
	return &ArrivalHandler{service: service}
}

func (h *ArrivalHandler) GetLatestArrivals(c *gin.Context) {
	ctx := c.Request.Context()

	limit := 200
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	arrivals, err := h.service.GetLatest(ctx, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to get arrivals",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, arrivals)
}

func (h *ArrivalHandler) ForceFetchArrivals(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.service.FetchAndStoreArrivals(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch arrivals",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "arrivals fetched successfully",
	})
}

package handlers

import (
	"net/http"
	"path/filepath"

	"gans/internal/service"

	"github.com/gin-gonic/gin"
)

type ExportHandler struct {
	service service.ExportService
}

func NewExportHandler(service service.ExportService) *ExportHandler {
	return &ExportHandler{service: service}
}

// ExportWeather отдает свежий xlsx с погодой и прилетами как вложение.
func (h *ExportHandler) ExportWeather(c *gin.Context) {
	ctx := c.Request.Context()

	path, err := h.service.ExportWeather(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to export data",
			"message": err.Error(),
		})
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}

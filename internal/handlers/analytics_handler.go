package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insurance-leadgen-backend/internal/models"
	"insurance-leadgen-backend/internal/service"
	"insurance-leadgen-backend/pkg/logger"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) RecordEvent(c *gin.Context) {
	var event models.AnalyticsEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.analyticsService.Record(event); err != nil {
		logger.Error(err, "Failed to record event", map[string]interface{}{"event": event.Name})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record event"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

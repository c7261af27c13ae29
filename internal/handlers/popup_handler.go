package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insurance-leadgen-backend/internal/models"
	"insurance-leadgen-backend/internal/service"
	"insurance-leadgen-backend/pkg/logger"
)

type PopupHandler struct {
	popupService *service.PopupService
}

func NewPopupHandler(popupService *service.PopupService) *PopupHandler {
	return &PopupHandler{popupService: popupService}
}

func (h *PopupHandler) GetPopups(c *gin.Context) {
	var (
		popups []models.PopupConfig
		err    error
	)
	if c.Query("enabled") == "true" {
		popups, err = h.popupService.GetEnabled()
	} else {
		popups, err = h.popupService.GetAll()
	}
	if err != nil {
		logger.Error(err, "Failed to load popups", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load popups"})
		return
	}
	c.JSON(http.StatusOK, popups)
}

func (h *PopupHandler) UpdatePopups(c *gin.Context) {
	var req models.UpdatePopupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	popups, err := h.popupService.Update(req.Popups)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, popups)
}

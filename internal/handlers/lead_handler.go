package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"insurance-leadgen-backend/internal/models"
	"insurance-leadgen-backend/internal/service"
	"insurance-leadgen-backend/pkg/logger"
)

type LeadHandler struct {
	leadService *service.LeadService
}

func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

func (h *LeadHandler) CreateLead(c *gin.Context) {
	var req models.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead, err := h.leadService.Capture(req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLead) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error(err, "Failed to capture lead", map[string]interface{}{
			"insurance_type": req.InsuranceType,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save lead"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           lead.ID,
		"redirect_url": lead.RedirectURL,
	})
}

func (h *LeadHandler) GetRecentLeads(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	leads, err := h.leadService.GetRecent(limit)
	if err != nil {
		logger.Error(err, "Failed to list leads", nil)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leads"})
		return
	}
	c.JSON(http.StatusOK, leads)
}

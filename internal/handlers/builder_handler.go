package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"insurance-leadgen-backend/internal/builder"
	"insurance-leadgen-backend/internal/models"
)

// BuilderHandler serves the builder UI's static configuration and the two
// stateless render projections: the editing canvas and the live preview.
type BuilderHandler struct {
	preview *builder.PreviewRenderer
	canvas  *builder.CanvasRenderer
}

func NewBuilderHandler() *BuilderHandler {
	return &BuilderHandler{
		preview: builder.NewPreviewRenderer(),
		canvas:  builder.NewCanvasRenderer(),
	}
}

func (h *BuilderHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"elementLibrary": builder.ElementLibrary(),
		"themePresets":   builder.ThemePresets(),
		"devices":        []models.Device{models.DeviceDesktop, models.DeviceTablet, models.DeviceMobile},
	})
}

func (h *BuilderHandler) GetSampleVariables(c *gin.Context) {
	c.JSON(http.StatusOK, builder.SampleVariables())
}

type previewRequest struct {
	Sections  models.TemplateSections `json:"sections" binding:"required"`
	Variables map[string]string       `json:"variables"`
	Device    models.Device           `json:"device"`
}

func (h *BuilderHandler) Preview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	device := req.Device
	if device == "" {
		device = models.DeviceDesktop
	}
	if !models.ValidDevice(device) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid device"})
		return
	}

	vars := req.Variables
	if vars == nil {
		vars = builder.SampleVariables()
	}

	sections := builder.NormalizeForest(req.Sections)
	html := h.preview.Render(sections, vars, device)
	c.JSON(http.StatusOK, gin.H{"html": html, "device": device})
}

type canvasRequest struct {
	Sections   models.TemplateSections `json:"sections" binding:"required"`
	Device     models.Device           `json:"device"`
	SelectedID string                  `json:"selected_id"`
	HoveredID  string                  `json:"hovered_id"`
}

func (h *BuilderHandler) RenderCanvas(c *gin.Context) {
	var req canvasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	device := req.Device
	if device == "" {
		device = models.DeviceDesktop
	}
	if !models.ValidDevice(device) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid device"})
		return
	}

	sections := builder.NormalizeForest(req.Sections)
	html := h.canvas.Render(sections, device, req.SelectedID, req.HoveredID)
	c.JSON(http.StatusOK, gin.H{"html": html, "device": device})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jsultonov/agrodale/internal/domain/models"
	"github.com/jsultonov/agrodale/internal/repository/croptable"
	"github.com/jsultonov/agrodale/internal/repository/memory"
	"github.com/jsultonov/agrodale/internal/service/advisor"
	"github.com/jsultonov/agrodale/pkg/clients/weather"
)

// AdvisoryHandler exposes the reference data, the forecast proxy and the
// irrigation planning endpoint.
type AdvisoryHandler struct {
	svc      *advisor.Service
	table    *croptable.Table
	forecast weather.Supplier
	logger   *zap.Logger
}

// NewAdvisoryHandler constructs the advisory HTTP adapter.
func NewAdvisoryHandler(svc *advisor.Service, table *croptable.Table, forecast weather.Supplier, logger *zap.Logger) *AdvisoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdvisoryHandler{svc: svc, table: table, forecast: forecast, logger: logger}
}

// Crops lists the crop profiles known to the reference table.
func (h *AdvisoryHandler) Crops(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"crops": h.table.Profiles()})
}

// Stages lists the growth-stage water requirements for one crop.
func (h *AdvisoryHandler) Stages(c *gin.Context) {
	stages, err := h.table.Stages(c.Param("crop"))
	if err != nil {
		if errors.Is(err, croptable.ErrCropNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed loading stages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stages": stages})
}

// Regions lists the regions the forecast supplier covers.
func (h *AdvisoryHandler) Regions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": weather.Regions()})
}

// Forecast proxies the normalized daily forecast series for a region.
func (h *AdvisoryHandler) Forecast(c *gin.Context) {
	series, err := h.forecast.Forecast(c.Request.Context(), c.Param("region"))
	if err != nil {
		if errors.Is(err, weather.ErrUnknownRegion) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("forecast fetch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather data unavailable"})
		return
	}
	c.JSON(http.StatusOK, series)
}

// PlanRequest is the payload for one planning pass over a field.
type PlanRequest struct {
	Region       string                `json:"region" binding:"required"`
	GrowthStage  string                `json:"growth_stage" binding:"required"`
	AreaSqMeters float64               `json:"area_sq_meters"`
	Disease      *models.DiseaseReport `json:"disease"`
}

// Plan runs the full evaluation pass for a field and returns the 5-event
// irrigation schedule. Planning is all-or-nothing: any upstream failure
// (unknown field or crop, unavailable forecast) aborts the pass.
func (h *AdvisoryHandler) Plan(c *gin.Context) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid plan payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	series, err := h.forecast.Forecast(c.Request.Context(), req.Region)
	if err != nil {
		if errors.Is(err, weather.ErrUnknownRegion) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("forecast fetch failed", zap.String("region", req.Region), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather data unavailable"})
		return
	}

	plan, err := h.svc.Plan(advisor.PlanRequest{
		FieldName:    c.Param("name"),
		GrowthStage:  req.GrowthStage,
		AreaSqMeters: req.AreaSqMeters,
		Forecast:     series,
		Disease:      req.Disease,
	})
	if err != nil {
		switch {
		case errors.Is(err, memory.ErrFieldNotFound), errors.Is(err, croptable.ErrCropNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			h.logger.Error("planning failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute irrigation plan"})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jsultonov/agrodale/internal/domain/models"
	"github.com/jsultonov/agrodale/internal/observability"
	"github.com/jsultonov/agrodale/internal/repository/memory"
	"github.com/jsultonov/agrodale/internal/service/advisor"
)

const dateLayout = "2006-01-02"

// FieldHandler handles the field management endpoints.
type FieldHandler struct {
	svc     *advisor.Service
	fields  memory.Repository
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewFieldHandler constructs the HTTP handler adapter for fields.
func NewFieldHandler(svc *advisor.Service, fields memory.Repository, metrics *observability.Metrics, logger *zap.Logger) *FieldHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FieldHandler{svc: svc, fields: fields, metrics: metrics, logger: logger}
}

// CreateFieldRequest is the payload for registering a drawn field. Dates use
// the YYYY-MM-DD layout; the geometry blob passes through untouched.
type CreateFieldRequest struct {
	Name          string          `json:"name" binding:"required"`
	Crop          string          `json:"crop" binding:"required"`
	LastIrrigated string          `json:"last_irrigated"`
	PlantingDate  string          `json:"planting_date"`
	SoilMoisture  *float64        `json:"soil_moisture"`
	AreaSqMeters  float64         `json:"area_sq_meters"`
	Geometry      json.RawMessage `json:"geometry"`
}

// List returns every field with its evaluated status and map color.
func (h *FieldHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": h.svc.FieldViews()})
}

// Get returns one field with its evaluated status.
func (h *FieldHandler) Get(c *gin.Context) {
	view, err := h.svc.FieldView(c.Param("name"))
	if err != nil {
		if errors.Is(err, memory.ErrFieldNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed loading field", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load field"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// Create registers a new field.
func (h *FieldHandler) Create(c *gin.Context) {
	var req CreateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid field payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	field := models.Field{
		Name:         req.Name,
		Crop:         req.Crop,
		SoilMoisture: 50,
		AreaSqMeters: 1000,
		Geometry:     req.Geometry,
	}

	if req.SoilMoisture != nil {
		// Clamp manual readings into the sensor range; oversaturated entry
		// is treated as 100%, not preserved as an overshoot signal.
		field.SoilMoisture = clamp(*req.SoilMoisture, 0, 100)
	}
	if req.AreaSqMeters > 0 {
		field.AreaSqMeters = req.AreaSqMeters
	}

	field.LastIrrigated = time.Now()
	if req.LastIrrigated != "" {
		parsed, err := time.Parse(dateLayout, req.LastIrrigated)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "last_irrigated must be YYYY-MM-DD"})
			return
		}
		field.LastIrrigated = parsed
	}

	if req.PlantingDate != "" {
		parsed, err := time.Parse(dateLayout, req.PlantingDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "planting_date must be YYYY-MM-DD"})
			return
		}
		field.PlantingDate = &parsed
	}

	if err := h.fields.Add(field); err != nil {
		if errors.Is(err, memory.ErrFieldExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed creating field", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create field"})
		return
	}

	if h.metrics != nil {
		h.metrics.FieldsTracked.Set(float64(len(h.fields.List())))
	}

	c.JSON(http.StatusCreated, field)
}

// Irrigate records an irrigation event: moisture resets to the crop optimum
// and the last-irrigation date moves to today.
func (h *FieldHandler) Irrigate(c *gin.Context) {
	field, err := h.svc.RecordIrrigation(c.Param("name"))
	if err != nil {
		if errors.Is(err, memory.ErrFieldNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("failed recording irrigation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record irrigation"})
		return
	}
	c.JSON(http.StatusOK, field)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

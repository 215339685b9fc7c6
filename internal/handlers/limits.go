package handlers

import (
	"net/http"

	"battery_alert/internal/models"

	"github.com/gin-gonic/gin"
)

type classifyRequest struct {
	Strategy     string   `json:"strategy" binding:"required"`
	TemperatureC *float64 `json:"temperature_c" binding:"required"`
}

// ClassifyRequest documents the classify payload.
type ClassifyRequest struct {
	// PASSIVE, HIGH_ACTIVE or MEDIUM_ACTIVE
	Strategy string `json:"strategy" example:"PASSIVE"`
	// Reading in Celsius
	TemperatureC float64 `json:"temperature_c" example:"36"`
}

type limitsResponse struct {
	Strategy models.CoolingStrategy `json:"strategy"`
	Lower    int                    `json:"lower"`
	Upper    int                    `json:"upper"`
}

type classifyResponse struct {
	Strategy     models.CoolingStrategy `json:"strategy"`
	TemperatureC float64                `json:"temperature_c"`
	Breach       models.Breach          `json:"breach"`
	Limits       models.SafetyRange     `json:"limits"`
}

// @Summary      Safe range for a cooling strategy
// @Tags         limits
// @Produce      json
// @Param        strategy  path  string  true  "Cooling strategy"  Enums(PASSIVE,HIGH_ACTIVE,MEDIUM_ACTIVE)
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/limits/{strategy} [get]
// @Security     BearerAuth
func (h *Handler) getLimits(c *gin.Context) {
	s, err := models.ParseCoolingStrategy(c.Param("strategy"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := h.services.Limits.Resolve(s)
	if err != nil {
		h.respondServiceError(c, "limits_resolve_failed", err, "strategy", s)
		return
	}
	c.JSON(http.StatusOK, limitsResponse{Strategy: s, Lower: r.Lower, Upper: r.Upper})
}

// @Summary      Classify a reading
// @Description  Returns NORMAL, TOO_LOW or TOO_HIGH. Bounds are inclusive. Nothing is dispatched.
// @Tags         limits
// @Accept       json
// @Produce      json
// @Param        body  body  ClassifyRequest  true  "Reading"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/classify [post]
// @Security     BearerAuth
func (h *Handler) classify(c *gin.Context) {
	var req classifyRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	s, err := models.ParseCoolingStrategy(req.Strategy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, r, err := h.services.Limits.Classify(s, *req.TemperatureC)
	if err != nil {
		h.respondServiceError(c, "classify_failed", err, "strategy", s)
		return
	}
	c.JSON(http.StatusOK, classifyResponse{
		Strategy:     s,
		TemperatureC: *req.TemperatureC,
		Breach:       b,
		Limits:       r,
	})
}

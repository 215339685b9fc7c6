package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"battery_alert/internal/models"
	"battery_alert/internal/service"

	"github.com/gin-gonic/gin"
)

type profileBody struct {
	Strategy string `json:"strategy" binding:"required"`
	Label    string `json:"label"`
}

type alertRequest struct {
	Target       string      `json:"target" binding:"required"`
	Profile      profileBody `json:"profile"`
	TemperatureC *float64    `json:"temperature_c" binding:"required"`
}

// AlertRequest documents the dispatch payload.
type AlertRequest struct {
	// CONTROLLER or EMAIL
	Target  string `json:"target" example:"EMAIL"`
	Profile struct {
		Strategy string `json:"strategy" example:"PASSIVE"`
		Label    string `json:"label" example:"BrandX"`
	} `json:"profile"`
	TemperatureC float64 `json:"temperature_c" example:"-1"`
}

type alertListResponse struct {
	Count  int                  `json:"count"`
	Alerts []models.AlertRecord `json:"alerts"`
}

// @Summary      Classify a reading and dispatch the result
// @Description  Sends the breach to the controller (always) or by email (breaches only) and records it.
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        body  body  AlertRequest  true  "Reading"
// @Success      200  {object}  models.AlertRecord
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/alerts [post]
// @Security     BearerAuth
func (h *Handler) checkAndAlert(c *gin.Context) {
	var req alertRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	target, err := models.ParseTarget(req.Target)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	strategy, err := models.ParseCoolingStrategy(req.Profile.Strategy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := models.DeviceProfile{Strategy: strategy, Label: req.Profile.Label}
	rec, err := h.services.CheckAndAlert(c.Request.Context(), target, profile, *req.TemperatureC)
	if err != nil {
		h.respondServiceError(c, "alert_dispatch_failed", err, "target", target, "strategy", strategy)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// @Summary      List dispatched alerts
// @Tags         alerts
// @Produce      json
// @Param        from    query  string  false  "RFC3339 lower bound (inclusive)"
// @Param        to      query  string  false  "RFC3339 upper bound (inclusive)"
// @Param        breach  query  string  false  "NORMAL, TOO_LOW or TOO_HIGH"
// @Param        target  query  string  false  "CONTROLLER or EMAIL"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/alerts [get]
// @Security     BearerAuth
func (h *Handler) listAlerts(c *gin.Context) {
	from, err := parseQueryTime(c, "from")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to, err := parseQueryTime(c, "to")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f := service.AlertFilter{
		From:   from,
		To:     to,
		Breach: c.Query("breach"),
		Target: c.Query("target"),
	}
	items, err := h.services.AlertLog.List(c.Request.Context(), f)
	if err != nil {
		h.respondServiceError(c, "alert_list_failed", err, "breach", f.Breach, "target", f.Target)
		return
	}
	if items == nil {
		items = []models.AlertRecord{}
	}
	c.JSON(http.StatusOK, alertListResponse{Count: len(items), Alerts: items})
}

// parseQueryTime reads an optional RFC3339 query value. Missing means zero time.
func parseQueryTime(c *gin.Context, key string) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s: expected RFC3339", key)
	}
	return t, nil
}

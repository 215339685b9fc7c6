package handlers

import (
	"net/http"
	"strconv"

	"battery_alert/internal/models"

	"github.com/gin-gonic/gin"
)

type createProfileRequest struct {
	Strategy string `json:"strategy" binding:"required"`
	Label    string `json:"label" binding:"required"`
}

type checkProfileRequest struct {
	Target       string   `json:"target" binding:"required"`
	TemperatureC *float64 `json:"temperature_c" binding:"required"`
}

type profileListResponse struct {
	Count    int                    `json:"count"`
	Profiles []models.DeviceProfile `json:"profiles"`
}

// @Summary      Register a battery profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body  createProfileRequest  true  "Profile"
// @Success      201  {object}  map[string]int
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/v1/profiles [post]
// @Security     BearerAuth
func (h *Handler) createProfile(c *gin.Context) {
	var req createProfileRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	strategy, err := models.ParseCoolingStrategy(req.Strategy)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.services.Profiles.Create(c.Request.Context(), models.DeviceProfile{Strategy: strategy, Label: req.Label})
	if err != nil {
		h.respondServiceError(c, "profile_create_failed", err, "label", req.Label)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary      List battery profiles
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/profiles [get]
// @Security     BearerAuth
func (h *Handler) listProfiles(c *gin.Context) {
	items, err := h.services.Profiles.List(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "profile_list_failed", err)
		return
	}
	if items == nil {
		items = []models.DeviceProfile{}
	}
	c.JSON(http.StatusOK, profileListResponse{Count: len(items), Profiles: items})
}

// @Summary      Get a battery profile
// @Tags         profiles
// @Produce      json
// @Param        id  path  int  true  "Profile id"
// @Success      200  {object}  models.DeviceProfile
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/profiles/{id} [get]
// @Security     BearerAuth
func (h *Handler) getProfile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	p, err := h.services.Profiles.Get(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "profile_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Check a reading against a stored profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "Profile id"
// @Param        body  body  checkProfileRequest  true  "Reading"
// @Success      200  {object}  models.AlertRecord
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/profiles/{id}/check [post]
// @Security     BearerAuth
func (h *Handler) checkProfile(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req checkProfileRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	target, err := models.ParseTarget(req.Target)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.services.Profiles.Check(c.Request.Context(), id, target, *req.TemperatureC)
	if err != nil {
		h.respondServiceError(c, "profile_check_failed", err, "id", id, "target", target)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func parseIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

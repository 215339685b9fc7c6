package handlers

import (
	"time"

	_ "battery_alert/docs"
	"battery_alert/internal/logger"
	"battery_alert/internal/models"
	"battery_alert/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	streamInterval time.Duration
}

type Option func(*Handler)

// WithStreamInterval sets the default websocket push interval.
func WithStreamInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 && d <= maxInterval {
			h.streamInterval = d
		}
	}
}

func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log, streamInterval: defaultInterval}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		api.GET("/limits/:strategy", h.getLimits)
		api.POST("/classify", h.classify)
		h.registerAlertRoutes(api)
		h.registerProfileRoutes(api)
	}
}

func (h *Handler) registerAlertRoutes(api *gin.RouterGroup) {
	alerts := api.Group("/alerts")
	{
		// Body example: {"target":"EMAIL","profile":{"strategy":"PASSIVE","label":"BrandX"},"temperature_c":-1}
		alerts.POST("", h.requireRole(models.RoleOperator), h.checkAndAlert)
		alerts.GET("", h.listAlerts)
	}
}

func (h *Handler) registerProfileRoutes(api *gin.RouterGroup) {
	profiles := api.Group("/profiles")
	{
		profiles.POST("", h.requireRole(models.RoleOperator), h.createProfile)
		profiles.GET("", h.listProfiles)
		profiles.GET("/:id", h.getProfile)
		profiles.POST("/:id/check", h.requireRole(models.RoleOperator), h.checkProfile)
	}
}

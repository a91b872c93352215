package handlers

import (
	"net/http"

	"voiceplc/internal/logger"
	"voiceplc/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to the engine services.
type Handler struct {
	services    *service.Service
	defaultMode service.Mode
	log         *logger.Logger
}

// NewHandler constructs the HTTP handler. defaultMode is the session-wide
// response mode; requests may override it per call.
func NewHandler(services *service.Service, defaultMode service.Mode, log *logger.Logger) *Handler {
	if defaultMode == "" {
		defaultMode = service.ModeNatural
	}
	return &Handler{services: services, defaultMode: defaultMode, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	api := router.Group("/api/v1")
	{
		api.POST("/command", h.postCommand)
		api.GET("/devices", h.listDevices)
		api.GET("/devices/:name/status", h.deviceStatus)
		api.GET("/history", h.getHistory)
	}

	// Status stream over the same port (HTTP upgrade)
	router.GET("/ws", h.wsConnect)

	return router
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

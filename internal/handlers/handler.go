package handlers

import (
	"home_relay/internal/logger"
	"home_relay/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	api := router.Group("/api")
	{
		h.registerEnvRoutes(api)
		h.registerThresholdRoutes(api)
		h.registerRelayRoutes(api)
		h.registerAlertRoutes(api)
		h.registerReportRoutes(api)
	}

	return router
}

// Devices and dashboards call the API from any origin.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	return cfg
}

func (h *Handler) registerEnvRoutes(api *gin.RouterGroup) {
	// Body example: {"nhiet_do":25.5,"do_am":61}
	api.POST("/post_env", h.postEnv)
	api.GET("/get_env", h.getEnv)
}

func (h *Handler) registerThresholdRoutes(api *gin.RouterGroup) {
	api.POST("/post_threshold_temp", h.postThreshold(kindTemperature))
	api.GET("/get_threshold_temp", h.getThreshold(kindTemperature))
	api.POST("/post_threshold_hum", h.postThreshold(kindHumidity))
	api.GET("/get_threshold_hum", h.getThreshold(kindHumidity))
}

func (h *Handler) registerRelayRoutes(api *gin.RouterGroup) {
	api.POST("/post_schedule_relay/:relay_id", h.relayIDMiddleware, h.postSchedule)
	api.GET("/get_schedule_relay/:relay_id", h.relayIDMiddleware, h.getSchedule)

	api.GET("/get_relay_status/:relay_id", h.relayIDMiddleware, h.getRelayStatus)
	api.POST("/post_relay_status/:relay_id", h.relayIDMiddleware, h.postRelayStatus)

	// Body example: {"mode":1}
	api.POST("/post_relay_mode/:relay_id", h.relayIDMiddleware, h.postRelayMode)
	api.GET("/get_relay_mode/:relay_id", h.relayIDMiddleware, h.getRelayMode)

	api.GET("/get_relay_log", h.getRelayLog)
}

func (h *Handler) registerAlertRoutes(api *gin.RouterGroup) {
	api.POST("/post_over_temp/:value", h.postOverLimit(kindTemperature))
	api.POST("/post_over_hum/:value", h.postOverLimit(kindHumidity))
}

func (h *Handler) registerReportRoutes(api *gin.RouterGroup) {
	// Body example: {"email":"ops@example.com","date":"10-01-2024"}
	api.POST("/send_report", h.sendReport)
}

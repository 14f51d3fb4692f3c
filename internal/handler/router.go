package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"booking-admission/internal/handler/api"
	"booking-admission/internal/handler/middleware"
	"booking-admission/internal/pkg/config"
	"booking-admission/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, admissionHandler *api.AdmissionHandler, m *metrics.Metrics) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, cfg, admissionHandler, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	if cfg.Metrics.Enabled {
		engine.Use(middleware.MetricsMiddleware(m))
	}
}

func setupRoutes(engine *gin.Engine, cfg config.Config, admissionHandler *api.AdmissionHandler, m *metrics.Metrics) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/admissions", Handler: admissionHandler.AdmitReservation},
			{Method: http.MethodDelete, Path: "/reservations/:id", Handler: admissionHandler.ReleaseReservation},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(group *gin.RouterGroup, routes []route) {
	for _, r := range routes {
		group.Handle(r.Method, r.Path, r.Handler)
	}
}

package rest

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"loadboard-service/internal/infrastructure/config"
	"loadboard-service/internal/usecase"
	"loadboard-service/pkg/logger"
	"loadboard-service/pkg/metrics"
)

// NewRouter wires middlewares and routes. Everything except /health and
// /metrics sits behind the API key check.
func NewRouter(
	cfg *config.Config,
	log logger.Logger,
	m *metrics.Metrics,
	loads *usecase.LoadService,
	calls *usecase.CallService,
	agent *usecase.AgentMetricsService,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(Observe(m))

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowCredentials = false
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, apiKeyHeader)
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	loadHandler := NewLoadHandler(loads, log, m)
	callHandler := NewCallHandler(calls, agent, log, m)

	auth := NewAuthMiddleware(cfg.APIKey)
	protected := router.Group("/", auth.RequireAPIKey())
	{
		protected.POST("/loads", loadHandler.Create)
		protected.GET("/loads", loadHandler.List)
		protected.GET("/loads/search", loadHandler.Search)

		protected.POST("/calls", callHandler.Create)
		protected.GET("/calls", callHandler.List)
		protected.GET("/calls/:id", callHandler.Get)
		protected.POST("/calls/update/:id", callHandler.Update)
		protected.DELETE("/calls", callHandler.DeleteAll)

		protected.GET("/metrics/agent", callHandler.AgentMetrics)
	}

	return router
}

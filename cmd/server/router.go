package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/orgkompass/orgkompass/docs"
	"github.com/orgkompass/orgkompass/internal/assessment"
	"github.com/orgkompass/orgkompass/internal/cache"
	"github.com/orgkompass/orgkompass/internal/errors"
	"github.com/orgkompass/orgkompass/internal/monitoring"
	"github.com/orgkompass/orgkompass/internal/ratelimit"
	"github.com/orgkompass/orgkompass/internal/security"
)

type serverConfig struct {
	corsOrigins    []string
	requestsPerMin int
	cacheTTL       time.Duration
	enableHSTS     bool
}

func defaultServerConfig() serverConfig {
	return serverConfig{
		corsOrigins:    []string{"http://localhost:5173"},
		requestsPerMin: 60,
		cacheTTL:       5 * time.Minute,
		enableHSTS:     false,
	}
}

// setupRouter wires the full middleware chain and routes.
func setupRouter(cfg serverConfig) *gin.Engine {
	analyzer := assessment.NewAnalyzer()

	appMetrics := monitoring.NewMetrics()
	appLogger := monitoring.NewLogger()
	responseCache := cache.New(cfg.cacheTTL)

	limiterConfig := ratelimit.DefaultConfig()
	limiterConfig.RequestsPerMin = cfg.requestsPerMin
	limiter := ratelimit.New(limiterConfig)

	r := gin.New()
	r.Use(errors.RecoveryHandler())
	r.Use(security.HeadersMiddleware(cfg.enableHSTS))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.corsOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(monitoring.Middleware(appMetrics, appLogger))
	r.Use(ratelimit.Middleware(limiter, appMetrics))
	r.Use(errors.ErrorHandler())

	h := newHandlers(analyzer, appMetrics, appLogger)

	r.GET("/health", h.health)
	r.GET("/metrics", func(c *gin.Context) {
		snapshot := appMetrics.Snapshot()
		snapshot["cache"] = responseCache.Stats()
		snapshot["rate_limit_clients"] = limiter.ActiveClients()
		c.JSON(http.StatusOK, snapshot)
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(responseCache.Middleware(appMetrics))
	{
		api.POST("/analyze", h.fullAnalysis)
		api.POST("/analyze/perspectives", h.perspectives)
		api.POST("/analyze/order-elements", h.orderElements)
		api.POST("/analyze/development", h.development)
		api.POST("/analyze/systemic", h.systemic)
		api.GET("/indicators", h.indicators)
		api.GET("/benchmarks", h.benchmarks)
		api.GET("/theory", h.theory)
	}

	return r
}

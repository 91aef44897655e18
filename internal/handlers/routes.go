package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cloud-dictionary-api/internal/middleware"
	"cloud-dictionary-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	TermService services.TermService
	Registry    *prometheus.Registry
	Logger      logrus.FieldLogger
	Version     string
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	termHandler := NewTermHandler(config.TermService, config.Logger)

	// Keys may contain "/" (e.g. "CI/CD"), which clients send as %2F
	router.UseRawPath = true
	router.UnescapePathValues = true
	router.RedirectTrailingSlash = false

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "cloud-dictionary-api",
			"version": config.Version,
		})
	})

	if config.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(config.Registry, promhttp.HandlerOpts{})))
	}

	terms := router.Group("/terms")
	{
		terms.GET("", termHandler.SearchTerms)
		terms.GET("/", termHandler.GetTerm)
		terms.GET("/:term", termHandler.GetTerm)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	})
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, logger logrus.FieldLogger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.StructuredLogger(logger))

	// Log requests over one second
	router.Use(middleware.PerformanceMonitor(logger, time.Second))
}

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-title-engine/internal/engine"
	"github.com/gcbaptista/go-title-engine/internal/metrics"
)

// API holds dependencies for API handlers.
type API struct {
	engine  *engine.Engine
	metrics *metrics.Metrics
}

// NewAPI creates a new API handler structure.
func NewAPI(eng *engine.Engine, m *metrics.Metrics) *API {
	return &API{
		engine:  eng,
		metrics: m,
	}
}

// SetupRoutes defines all the API routes for the title engine. m may be nil, in which case
// /metrics is not served.
func SetupRoutes(router *gin.Engine, eng *engine.Engine, m *metrics.Metrics) {
	apiHandler := NewAPI(eng, m)

	router.GET("/health", apiHandler.HealthCheckHandler)
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	router.POST("/titles", apiHandler.GenerateTitleHandler)

	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.POST("", apiHandler.CreateJobHandler)
		jobRoutes.GET("", apiHandler.ListJobsHandler)
		jobRoutes.GET("/metrics", apiHandler.GetJobMetricsHandler)
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler)
		jobRoutes.GET("/:jobId/report", apiHandler.GetJobReportHandler) // plain-text report
		jobRoutes.DELETE("/:jobId", apiHandler.CancelJobHandler)
	}
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "go-title-engine",
		"method":    api.engine.DefaultMethod(),
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}

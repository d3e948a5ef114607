package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gcbaptista/go-title-engine/config"
	"github.com/gcbaptista/go-title-engine/internal/engine"
	"github.com/gcbaptista/go-title-engine/internal/logging"
	"github.com/gcbaptista/go-title-engine/internal/metrics"
)

// NewRouter builds a gin engine with the standard middleware chain and every route registered.
func NewRouter(eng *engine.Engine, m *metrics.Metrics, logger *zap.Logger, server config.ServerSettings) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestIDMiddleware(),
		LoggerMiddleware(logging.OrNop(logger)),
		CORSMiddleware(),
	)
	if server.MaxBodyBytes > 0 {
		router.Use(RequestSizeLimitMiddleware(server.MaxBodyBytes))
	}

	SetupRoutes(router, eng, m)
	return router
}

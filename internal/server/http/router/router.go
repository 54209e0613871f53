package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/procurebot/internal/server/http/handlers"
	"github.com/polkiloo/procurebot/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(webhook gin.HandlerFunc, health *handlers.HealthHandler, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.GET("/healthz", health.Check)
	engine.POST("/webhook/:token", webhook)

	return engine
}

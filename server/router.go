package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inference-gateway/voice-scheduling-agent/config"
	"github.com/inference-gateway/voice-scheduling-agent/health"
	"github.com/inference-gateway/voice-scheduling-agent/webhook"
)

// Endpoints lists the routes served, for the 404 response
var Endpoints = []string{
	"GET /health",
	"GET /debug/env",
	"POST /webhook",
	"POST /vapi/webhook",
}

// NewRouter wires middleware and routes
func NewRouter(cfg *config.Config, logger *zap.Logger, hooks *webhook.Handler, reporter *health.Reporter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(AccessLog(logger))
	r.Use(CORS(cfg.App.CORSAllowedOrigins))
	r.Use(BodyLimit(cfg.App.MaxRequestSize))

	r.NoRoute(func(c *gin.Context) {
		logger.Debug("route not found",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("clientIP", c.ClientIP()),
			zap.String("userAgent", c.GetHeader("User-Agent")))
		c.JSON(http.StatusNotFound, gin.H{
			"error":               "Not Found",
			"message":             "The requested endpoint does not exist",
			"path":                c.Request.URL.Path,
			"method":              c.Request.Method,
			"available_endpoints": Endpoints,
		})
	})

	r.GET("/health", reporter.Health)
	r.GET("/debug/env", reporter.DebugEnv)

	hooksGroup := r.Group("/")
	hooksGroup.Use(RateLimit(cfg.Webhook.RateLimit, cfg.Webhook.RateBurst, logger))
	hooksGroup.Use(WebhookSecret(cfg.Webhook.Secret, logger))
	hooksGroup.POST("/webhook", hooks.Handle)
	hooksGroup.POST("/vapi/webhook", hooks.Handle)

	return r
}

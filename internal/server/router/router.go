package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jsultonov/agrodale/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(fields *handlers.FieldHandler, advisory *handlers.AdvisoryHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.GET("/crops", advisory.Crops)
		api.GET("/crops/:crop/stages", advisory.Stages)
		api.GET("/regions", advisory.Regions)
		api.GET("/weather/:region", advisory.Forecast)

		api.GET("/fields", fields.List)
		api.POST("/fields", fields.Create)
		api.GET("/fields/:name", fields.Get)
		api.POST("/fields/:name/irrigate", fields.Irrigate)
		api.POST("/fields/:name/plan", advisory.Plan)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}

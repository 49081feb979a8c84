package config

import (
	"time"

	"github.com/gin-gonic/gin"

	"haircare-web/pkg/logging"
)

// PerformanceLogger logs every request with its latency and flags slow ones.
func PerformanceLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency.String())

		if latency > 200*time.Millisecond {
			logger.Warn("slow request",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"latency", latency.String())
		}
	}
}

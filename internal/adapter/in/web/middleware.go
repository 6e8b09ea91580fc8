package web

import (
	"log/slog"
	"time"
	"yatube/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger attaches the logger to the request context and writes an
// access log line after the handler runs.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), log))

		c.Next()

		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"jobboard-backend/internal/shared/telemetry"
)

// Context keys handlers may set so the request log carries domain ids.
const (
	JobIDKey    = "jobId"
	FigureIDKey = "figureId"
	FiguresKey  = "figureCount"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		jobID, _ := c.Get(JobIDKey)
		figureID, _ := c.Get(FigureIDKey)
		figureCount, _ := c.Get(FiguresKey)

		telemetry.Info("request.complete", map[string]any{
			"request_id":   RequestIDFromContext(c),
			"method":       c.Request.Method,
			"path":         c.Request.URL.Path,
			"route":        c.FullPath(),
			"status":       c.Writer.Status(),
			"duration_ms":  float64(latency.Microseconds()) / 1000.0,
			"job_id":       jobID,
			"figure_id":    figureID,
			"figure_count": figureCount,
			"client_ip":    c.ClientIP(),
			"user_agent":   c.Request.UserAgent(),
		})
	}
}

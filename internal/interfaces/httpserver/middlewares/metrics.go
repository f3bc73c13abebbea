package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ordervoice/order-api/internal/infrastructure/metrics"
)

// MetricsMiddleware records HTTP request metrics
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		metrics.RecordRequest(c.Request.Method, endpoint, status, time.Since(start).Seconds())
	}
}

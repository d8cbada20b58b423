package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/fitness-platform/backend/internal/observability"
)

// Metrics records request count and latency per matched route.
func Metrics(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		observability.ObserveRequest(service, c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

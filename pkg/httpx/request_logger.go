package httpx

import (
	"time"

	"github.com/Gunvolt24/party_registry/internal/ports"
	"github.com/gin-gonic/gin"
)

// skipAccessLog — служебные маршруты без access-лога.
var skipAccessLog = map[string]struct{}{
	"/metrics": {},
	"/ping":    {},
}

// RequestLogger — access-лог HTTP-запросов. request_id/trace_id логгер берёт из контекста.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if _, skip := skipAccessLog[route]; skip {
			return
		}
		if route == "" {
			route = c.Request.URL.Path
		}

		status := c.Writer.Status()
		ctx := c.Request.Context()
		args := []any{c.Request.Method, route, status, c.ClientIP(), time.Since(start), c.Writer.Size()}
		const format = "http %s %s status=%d ip=%s duration=%s size=%d"

		if status >= 500 {
			log.Errorf(ctx, format, args...)
			return
		}
		log.Infof(ctx, format, args...)
	}
}

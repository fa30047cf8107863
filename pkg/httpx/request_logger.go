package httpx

import (
	"context"
	"time"

	"github.com/Gunvolt24/coffee_delivery/internal/ports"
	"github.com/Gunvolt24/coffee_delivery/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// quietPaths — служебные маршруты, которые не логируются.
var quietPaths = map[string]struct{}{
	"/metrics": {},
	"/ping":    {},
}

// RequestLogger — middleware для логирования HTTP-запросов.
// Уровень по статусу: 5xx → error, 4xx → warn, остальное → info.
// request_id и session_id добавляет сам логгер из контекста.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if _, quiet := quietPaths[path]; quiet {
			return
		}
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		status := c.Writer.Status()
		sp, _ := ctxmeta.SpanIDFromContext(ctx)

		logf := levelFor(log, status)
		logf(ctx,
			"request span=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			sp, c.Request.Method, path, status, c.ClientIP(), time.Since(start), c.Writer.Size(),
		)
	}
}

func levelFor(log ports.Logger, status int) func(context.Context, string, ...any) {
	switch {
	case status >= 500:
		return log.Errorf
	case status >= 400:
		return log.Warnf
	default:
		return log.Infof
	}
}

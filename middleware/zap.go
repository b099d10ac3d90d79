package middleware

import (
	"time"

	"Weave/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GinZap 访问日志走全局 zap，不用 gin 自带的
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		log.L.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("clientIP", c.ClientIP()),
		)
	}
}

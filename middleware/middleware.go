// middleware/middleware.go

package middleware

import (
	"time"

	"github.com/Mesorian1996/contact-backend/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupMiddleware ミドルウェアの設定
func SetupMiddleware(r *gin.Engine) {
	r.Use(gin.Recovery())
	r.Use(GinLogger())
}

// GinLogger ロギングミドルウェア
func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("user-agent", c.Request.UserAgent()),
		}

		if errors := c.Errors.ByType(gin.ErrorTypePrivate).String(); errors != "" {
			fields = append(fields, zap.String("errors", errors))
		}

		logger.Logger.Info(path, fields...)
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger writes one structured entry per request. Client errors log at warn
// and server errors at error.
func Logger(logger *zap.Logger) gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(params gin.LogFormatterParams) string {
		fields := []zap.Field{
			zap.String("method", params.Method),
			zap.String("path", params.Path),
			zap.Int("status", params.StatusCode),
			zap.Duration("latency", params.Latency),
			zap.String("client_ip", params.ClientIP),
			zap.Int("body_size", params.BodySize),
			zap.String("user_agent", params.Request.UserAgent()),
		}
		if params.ErrorMessage != "" {
			fields = append(fields, zap.String("error", params.ErrorMessage))
		}

		switch {
		case params.StatusCode >= 500:
			logger.Error("HTTP Request", fields...)
		case params.StatusCode >= 400:
			logger.Warn("HTTP Request", fields...)
		default:
			logger.Info("HTTP Request", fields...)
		}
		return ""
	})
}

package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders adds security headers. Responses are JSON or raw image
// bytes, so nothing is allowed to load or frame them.
func SecurityHeaders() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("X-Frame-Options", "DENY")
		ctx.Header("X-Content-Type-Options", "nosniff")
		ctx.Header("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		ctx.Header("Referrer-Policy", "no-referrer")
		ctx.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		ctx.Next()
	}
}

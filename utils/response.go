package utils

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondWithError sends a standardized JSON error response. Errors never
// propagate past the controller boundary; they end here as a status code
// plus a user-facing message.
func RespondWithError(c *gin.Context, status int, message string) {
	GetLogger().Warn("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", status),
		zap.String("error", message),
	)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

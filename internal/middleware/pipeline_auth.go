package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/logger"
)

// APIKeyHeader carries the shared secret of the scheduled-task caller.
const APIKeyHeader = "X-API-Key"

// PipelineAuthMiddleware guards the tick endpoint. Without a configured key
// the endpoint is unavailable rather than open.
func PipelineAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithError(c, apperrors.ErrPipelineNotConfigured)
			return
		}
		key := c.GetHeader(APIKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			logger.Get().Warnw("pipeline key rejected",
				"client_ip", c.ClientIP(),
				"path", c.Request.URL.Path,
			)
			abortWithError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}

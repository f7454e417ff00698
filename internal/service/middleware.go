package service

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// accessLog writes a structured access log entry for every request.
func accessLog(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Infow("request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

const principalHeader = "X-User-Id"

// principalId resolves the acting principal from the request. Identity
// itself is an external concern; by the time a request reaches this service
// the gateway has authenticated it and stamped the user id header. An absent
// or empty header is the anonymous principal (nil, no error).
func principalId(c *gin.Context) (*uuid.UUID, error) {
	raw := c.GetHeader(principalHeader)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q", raw)
	}
	return &id, nil
}

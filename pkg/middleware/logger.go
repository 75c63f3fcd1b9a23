package middleware

import (
	"time"

	"tinylink/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const requestIDHeader = "X-Request-ID"

// Logger returns a gin middleware that tags each request with an id and
// logs it on completion
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = util.GenerateUUID()
		}
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("HTTP request")
	}
}

package middleware

import (
	"net/http"
	"time"

	"tinylink/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RateLimit returns a gin middleware enforcing a fixed-window per-client
// limit backed by the cache layer. Limiter failures fail open: the cache is
// never allowed to take down the request path.
func RateLimit(cache repository.CacheInterface, scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		key := scope + ":" + c.ClientIP()
		allowed, err := cache.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			log.Warn().Err(err).Str("scope", scope).Msg("Rate limiter unavailable, failing open")
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "Too many requests, please try again later",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

package middlewares

import (
	"net/http"
	"time"

	"ecodenuncias-web/config"

	"github.com/gin-gonic/gin"
)

const limiterPrefix = "denuncia_limit"

// DenunciaRateLimiter caps write requests (new reports, new comments) per
// client IP over a 24h window, backed by Redis. Requests pass through
// untouched when Redis is not configured.
func DenunciaRateLimiter(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		ctx := config.Ctx
		userKey := limiterPrefix + ":" + c.ClientIP()

		// Increment the caller's count; the first hit opens the window.
		count, err := config.RedisClient.Incr(ctx, userKey).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			c.Abort()
			return
		}

		if count == 1 {
			if err := config.RedisClient.Expire(ctx, userKey, 24*time.Hour).Err(); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				c.Abort()
				return
			}
		}

		if count > int64(limit) {
			retryAfter, _ := config.RedisClient.TTL(ctx, userKey).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success":     false,
				"message":     "Límite de envíos alcanzado, intenta más tarde",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

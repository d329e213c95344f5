package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Juggernaut7/Task-Tidy/config"
)

const (
	rateLimitMax    = 100
	rateLimitWindow = 15 * time.Minute
)

// RateLimiter caps each client IP at rateLimitMax requests per window,
// fixed-window counting in Redis. Fails open when Redis is unavailable.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RedisClient == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%d", c.ClientIP(), time.Now().Unix()/int64(rateLimitWindow.Seconds()))

		count, err := config.RedisClient.Incr(ctx, key).Result()
		if err != nil {
			config.Logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			config.RedisClient.Expire(ctx, key, rateLimitWindow)
		}

		if count > rateLimitMax {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many requests from this IP, please try again later.",
			})
			return
		}

		c.Next()
	}
}

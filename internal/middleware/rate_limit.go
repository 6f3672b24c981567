package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const MsgTooManyRequests = "Too many requests. Please try again later."

// RateLimiter counts requests per client in fixed redis windows. A nil
// client disables limiting.
type RateLimiter struct {
	redisClient *redis.Client
	logger      *slog.Logger
}

type RateLimit struct {
	Requests int           // Number of requests
	Window   time.Duration // Time window
}

func NewRateLimiter(redisClient *redis.Client, logger *slog.Logger) *RateLimiter {
	if logger == nil {
		logger = slog.Default()
	}
	return &RateLimiter{
		redisClient: redisClient,
		logger:      logger,
	}
}

// rateLimitKey scopes authenticated operators by name and everyone else by IP
func rateLimitKey(c *gin.Context, scope string) string {
	if op := GetOperator(c); op != "" {
		return fmt.Sprintf("rate_limit:%s:operator:%s", scope, op)
	}
	return fmt.Sprintf("rate_limit:%s:ip:%s", scope, c.ClientIP())
}

func (rl *RateLimiter) Limit(scope string, limit RateLimit) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.redisClient == nil || limit.Requests <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := rateLimitKey(c, scope)

		// Get current count
		val, err := rl.redisClient.Get(ctx, key).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			// If Redis is down, allow the request
			rl.logger.Warn("Rate limit check failed", "error", err)
			c.Next()
			return
		}

		var count int
		if err == nil {
			count, _ = strconv.Atoi(val)
		}

		if count >= limit.Requests {
			ttl, _ := rl.redisClient.TTL(ctx, key).Result()
			if ttl < 0 {
				ttl = limit.Window
			}

			c.Header("X-RateLimit-Limit", strconv.Itoa(limit.Requests))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
			c.Header("Retry-After", strconv.Itoa(int(ttl.Seconds())))

			abortWithFailure(c, http.StatusTooManyRequests, MsgTooManyRequests)
			return
		}

		pipe := rl.redisClient.Pipeline()
		pipe.Incr(ctx, key)
		if count == 0 {
			pipe.Expire(ctx, key, limit.Window)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			rl.logger.Warn("Rate limit update failed", "error", err)
			c.Next()
			return
		}

		remaining := limit.Requests - count - 1
		if remaining < 0 {
			remaining = 0
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(limit.Window).Unix(), 10))

		c.Next()
	}
}

// AuthLimit guards the login endpoint
func (rl *RateLimiter) AuthLimit() gin.HandlerFunc {
	return rl.Limit("auth", RateLimit{
		Requests: 5,
		Window:   time.Minute,
	})
}

func (rl *RateLimiter) APILimit(limit RateLimit) gin.HandlerFunc {
	return rl.Limit("api", limit)
}

package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/StudyHub/pkg/utils"
)

var (
	globalLimiter *utils.TokenBucket
	limitOnce     sync.Once
)

// InitGlobalLimiter initializes the process-wide limiter.
// capacity: burst size. rate: allowed requests per second (QPS).
func InitGlobalLimiter(capacity, rate int64) {
	limitOnce.Do(func() {
		globalLimiter = utils.NewTokenBucket(capacity, rate)
	})
}

// RateLimitMiddleware smooths bursts with the global token bucket.
// waitTimeout bounds how long a request may wait for a token before
// being rejected, so short spikes queue instead of failing outright.
func RateLimitMiddleware(waitTimeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if globalLimiter != nil {
			if !globalLimiter.WaitN(1, waitTimeout) {
				c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
					"error": "Too Many Requests - Server is busy, please try again later",
				})
				return
			}
		}
		c.Next()
	}
}

// MaxConcurrencyMiddleware caps in-flight requests with a buffered
// channel acting as a semaphore. Requests over the cap are rejected
// immediately rather than queued.
func MaxConcurrencyMiddleware(maxConcurrent int) gin.HandlerFunc {
	sem := make(chan struct{}, maxConcurrent)

	return func(c *gin.Context) {
		select {
		case sem <- struct{}{}:
			defer func() { <-sem }()
			c.Next()
		default:
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service Unavailable - Too many concurrent requests",
			})
		}
	}
}

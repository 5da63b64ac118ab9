package middleware

import (
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter *rate.Limiter
	last    atomic.Int64 // UnixNano of the most recent request
}

// RateLimitPerIP limits requests per client IP with an LRU-bounded visitor
// table. limit is in requests per second; 10 req/min is rate.Limit(10.0/60).
// Idle visitors are swept inline on the first request after each ttl window,
// so no goroutine outlives the handler.
func RateLimitPerIP(limit rate.Limit, burst, cacheSize int, ttl time.Duration) gin.HandlerFunc {
	visitors, _ := lru.New[string, *visitor](cacheSize)

	var lastSweep atomic.Int64
	lastSweep.Store(time.Now().UnixNano())

	sweep := func(now int64) {
		prev := lastSweep.Load()
		if now-prev < ttl.Nanoseconds() || !lastSweep.CompareAndSwap(prev, now) {
			return
		}
		for _, key := range visitors.Keys() {
			if v, ok := visitors.Peek(key); ok && now-v.last.Load() > ttl.Nanoseconds() {
				visitors.Remove(key)
			}
		}
	}

	return func(c *gin.Context) {
		host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
		if err != nil {
			host = c.Request.RemoteAddr
		}

		now := time.Now().UnixNano()
		sweep(now)

		v, ok := visitors.Get(host)
		if !ok {
			fresh := &visitor{limiter: rate.NewLimiter(limit, burst)}
			if prev, existed, _ := visitors.PeekOrAdd(host, fresh); existed {
				v = prev
			} else {
				v = fresh
			}
		}
		v.last.Store(now)

		if !v.limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

package middleware

import (
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func limitedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitPerIP(1, 1, 100, time.Hour))
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })
	return r
}

func doReq(r *gin.Engine, addr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = addr
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitPerIP_Basic(t *testing.T) {
	r := limitedRouter(t)

	if w := doReq(r, "1.2.3.4:12345"); w.Code != 200 {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if w := doReq(r, "1.2.3.4:12345"); w.Code != 429 {
		t.Fatalf("want 429, got %d", w.Code)
	}
}

func TestRateLimitPerIP_ConcurrentSameHost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitPerIP(rate.Inf, 0, 100, time.Hour))
	r.GET("/", func(c *gin.Context) { c.String(200, "ok") })

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if w := doReq(r, "5.6.7.8:1000"); w.Code != 200 {
				t.Errorf("concurrent request got %d", w.Code)
			}
		}()
	}
	wg.Wait()
}

func TestRateLimitPerIP_DifferentHosts(t *testing.T) {
	r := limitedRouter(t)

	if w := doReq(r, "10.0.0.1:1111"); w.Code != 200 {
		t.Fatalf("host A first request must pass, got %d", w.Code)
	}
	if w := doReq(r, "10.0.0.2:2222"); w.Code != 200 {
		t.Fatalf("host B first request must pass independently, got %d", w.Code)
	}
}

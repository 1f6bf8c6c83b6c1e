package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campaignai/campaign-planner-go/internal/config"
)

func TestRateLimitPlannerCost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// 예산 8, 플래너 경로 비용 4: 두 번째까지 통과하고 세 번째에서 막힌다.
	cfg := &config.Config{HTTPRateLimit: config.HTTPRateLimitConfig{
		RequestsPerMinute: 2 * plannerRequestCost,
		CacheSize:         10,
		CacheTTLSeconds:   int(time.Minute.Seconds()),
	}}

	router := gin.New()
	router.Use(RateLimit(cfg))
	router.GET("/api/planner/chat", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/planner/chat", nil)
		req.RemoteAddr = "1.2.3.4:1234"
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("request %d: expected ok, got %d", i+1, resp.Code)
		}
	}

	blocked := httptest.NewRequest(http.MethodGet, "/api/planner/chat", nil)
	blocked.RemoteAddr = "1.2.3.4:1234"
	blockedResp := httptest.NewRecorder()
	router.ServeHTTP(blockedResp, blocked)
	if blockedResp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected rate limit, got %d", blockedResp.Code)
	}
}

func TestRateLimitDefaultCost(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{HTTPRateLimit: config.HTTPRateLimitConfig{
		RequestsPerMinute: 2,
		CacheSize:         10,
		CacheTTLSeconds:   60,
	}}

	router := gin.New()
	router.Use(RateLimit(cfg))
	router.GET("/api/campaigns", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/campaigns", nil)
		req.RemoteAddr = "1.2.3.4:1234"
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("request %d: expected ok, got %d", i+1, resp.Code)
		}
	}

	blocked := httptest.NewRequest(http.MethodGet, "/api/campaigns", nil)
	blocked.RemoteAddr = "1.2.3.4:1234"
	blockedResp := httptest.NewRecorder()
	router.ServeHTTP(blockedResp, blocked)
	if blockedResp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected rate limit, got %d", blockedResp.Code)
	}
}

func TestRequestCost(t *testing.T) {
	if got := requestCost("/api/planner/personas"); got != plannerRequestCost {
		t.Fatalf("planner path should cost %d, got %d", plannerRequestCost, got)
	}
	if got := requestCost("/api/campaigns"); got != defaultRequestCost {
		t.Fatalf("crud path should cost %d, got %d", defaultRequestCost, got)
	}
}

func TestRateLimitSeparateIdentities(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{HTTPRateLimit: config.HTTPRateLimitConfig{
		RequestsPerMinute: 1,
		CacheSize:         10,
		CacheTTLSeconds:   60,
	}}

	router := gin.New()
	router.Use(RateLimit(cfg))
	router.GET("/api/campaigns", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, key := range []string{"key-a", "key-b"} {
		req := httptest.NewRequest(http.MethodGet, "/api/campaigns", nil)
		req.Header.Set("X-API-Key", key)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected ok for %s, got %d", key, resp.Code)
		}
	}
}

func TestRateLimitDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(&config.Config{}))
	router.GET("/api/campaigns", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/campaigns", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected ok, got %d", resp.Code)
		}
	}
}

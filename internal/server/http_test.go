package server

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campaignai/campaign-planner-go/internal/config"
)

func TestNewHTTPServer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	cfg := &config.Config{HTTP: config.HTTPConfig{Host: "127.0.0.1", Port: 8090}}
	srv := NewHTTPServer(cfg, router)
	if srv.Addr != "127.0.0.1:8090" {
		t.Fatalf("unexpected addr: %s", srv.Addr)
	}
	if srv.Handler == nil {
		t.Fatalf("handler missing")
	}
	if srv.IdleTimeout != 90*time.Second {
		t.Fatalf("unexpected idle timeout: %v", srv.IdleTimeout)
	}

	cfg.HTTP.HTTP2Enabled = true
	h2Srv := NewHTTPServer(cfg, router)
	// h2c 핸들러는 원본 라우터를 감싼다.
	if _, isEngine := h2Srv.Handler.(*gin.Engine); isEngine {
		t.Fatalf("expected h2c wrapper handler")
	}
}

func TestWriteTimeoutTracksGeminiTimeout(t *testing.T) {
	cfg := &config.Config{Gemini: config.GeminiConfig{TimeoutSeconds: 120}}
	if got := writeTimeout(cfg); got != 135*time.Second {
		t.Fatalf("expected 135s, got %v", got)
	}

	// 미설정이면 기본 생성 타임아웃 기준으로 잡는다.
	if got := writeTimeout(&config.Config{}); got != 75*time.Second {
		t.Fatalf("expected 75s default, got %v", got)
	}
}

package server

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/campaignai/campaign-planner-go/internal/config"
)

const defaultGenerationTimeout = 60 * time.Second

// NewHTTPServer 는 HTTP 서버를 생성한다.
// HTTP2Enabled 면 평문 h2c 로 구동한다 (리버스 프록시 뒤 배치 전제).
func NewHTTPServer(cfg *config.Config, router *gin.Engine) *http.Server {
	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.HTTP.Host, strconv.Itoa(cfg.HTTP.Port)),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout(cfg),
		IdleTimeout:       90 * time.Second,
	}

	if cfg.HTTP.HTTP2Enabled {
		server.Handler = h2c.NewHandler(router, &http2.Server{})
	}

	return server
}

// writeTimeout 은 Gemini 타임아웃보다 넉넉하게 잡는다.
// 생성 요청이 모델 호출 한계까지 끌려도 응답이 중간에 끊기면 안 된다.
func writeTimeout(cfg *config.Config) time.Duration {
	llmTimeout := defaultGenerationTimeout
	if cfg.Gemini.TimeoutSeconds > 0 {
		llmTimeout = time.Duration(cfg.Gemini.TimeoutSeconds) * time.Second
	}
	return llmTimeout + 15*time.Second
}

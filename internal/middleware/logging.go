package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// 성공 응답이라도 이 시간을 넘으면 Warn 으로 올린다.
// Gemini 생성 호출이 타임아웃 직전까지 끌리는 경우를 잡기 위한 것이다.
const slowRequestThreshold = 10 * time.Second

// RequestLogger 는 HTTP 요청 로그 미들웨어다.
// 5xx 는 Error, 4xx 는 Warn, 나머지는 Debug. 느린 성공 요청은 Warn 으로 남긴다.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return func(c *gin.Context) {
		startedAt := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(startedAt)
		slow := latency >= slowRequestThreshold

		if status < http.StatusBadRequest && len(c.Errors) == 0 && !slow && isNoisyInfoPath(path) {
			return
		}

		fields := []any{
			"request_id", GetRequestID(c),
			"method", method,
			"path", path,
			"status", status,
			"latency", latency,
			"bytes", c.Writer.Size(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("http_request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("http_request", fields...)
		case slow:
			logger.Warn("http_request_slow", fields...)
		default:
			logger.Debug("http_request", fields...)
		}
	}
}

// 헬스체크는 성공 시 로그를 남기지 않는다.
func isNoisyInfoPath(path string) bool {
	return path == "/health"
}

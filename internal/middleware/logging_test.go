package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
)

type logEntry struct {
	level slog.Level
	msg   string
}

type recordingHandler struct {
	mu      sync.Mutex
	entries []logEntry
}

func (h *recordingHandler) Enabled(_ context.Context, _ slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	h.entries = append(h.entries, logEntry{level: record.Level, msg: record.Message})
	h.mu.Unlock()
	return nil
}

func (h *recordingHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(_ string) slog.Handler      { return h }

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

func (h *recordingHandler) last() logEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[len(h.entries)-1]
}

func TestRequestLoggerLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := &recordingHandler{}
	logger := slog.New(recorder)

	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger))
	router.GET("/api/campaigns", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve := func(path string) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
	}

	serve("/api/broken")
	if recorder.count() != 1 || recorder.last().level != slog.LevelError {
		t.Fatalf("expected error log for 500 response")
	}

	serve("/api/campaigns")
	if recorder.count() != 2 || recorder.last().level != slog.LevelDebug {
		t.Fatalf("expected debug log for 200 response")
	}

	// 성공한 헬스체크는 로그를 남기지 않는다.
	serve("/health")
	if recorder.count() != 2 {
		t.Fatalf("health success should not be logged")
	}
}

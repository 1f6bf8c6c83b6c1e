package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campaignai/campaign-planner-go/internal/config"
	"github.com/campaignai/campaign-planner-go/internal/httperror"
	"github.com/campaignai/campaign-planner-go/internal/metrics"
	"github.com/campaignai/campaign-planner-go/internal/usage"
)

// DailyUsageResponse: 일자별 사용량 응답입니다.
type DailyUsageResponse struct {
	UsageDate    string `json:"usage_date"`
	InputTokens  int64  `json:"input_tokens"`
	OutputTokens int64  `json:"output_tokens"`
	TotalTokens  int64  `json:"total_tokens"`
	RequestCount int64  `json:"request_count"`
	Model        string `json:"model"`
}

// UsageResponse: 누적 통계와 일자별 사용량을 묶은 응답입니다.
type UsageResponse struct {
	Metrics map[string]float64   `json:"metrics"`
	Daily   []DailyUsageResponse `json:"daily"`
	Model   string               `json:"model"`
}

// UsageHandler: 사용량 API 핸들러입니다.
type UsageHandler struct {
	cfg     *config.Config
	repo    *usage.Repository
	metrics *metrics.Store
	logger  *slog.Logger
}

// NewUsageHandler: 사용량 핸들러를 생성합니다.
func NewUsageHandler(cfg *config.Config, repo *usage.Repository, metricsStore *metrics.Store, logger *slog.Logger) *UsageHandler {
	return &UsageHandler{
		cfg:     cfg,
		repo:    repo,
		metrics: metricsStore,
		logger:  logger,
	}
}

// RegisterRoutes: 사용량 라우트를 등록합니다.
func (h *UsageHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/usage", h.handleUsage)
}

func (h *UsageHandler) handleUsage(c *gin.Context) {
	days, ok := parseDays(c, 7)
	if !ok {
		return
	}

	response := UsageResponse{
		Metrics: h.metrics.Snapshot(),
		Daily:   []DailyUsageResponse{},
		Model:   h.cfg.Gemini.Model,
	}

	rows, err := h.repo.GetRecentUsage(c.Request.Context(), days)
	if err != nil && !errors.Is(err, usage.ErrUsageDisabled) {
		h.logger.Warn("usage_request_failed", "err", err)
		writeError(c, err)
		return
	}

	for _, row := range rows {
		response.Daily = append(response.Daily, DailyUsageResponse{
			UsageDate:    row.UsageDate.Format("2006-01-02"),
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			TotalTokens:  row.TotalTokens(),
			RequestCount: row.RequestCount,
			Model:        h.cfg.Gemini.Model,
		})
	}

	c.JSON(http.StatusOK, response)
}

func parseDays(c *gin.Context, defaultDays int) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return defaultDays, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		writeError(c, httperror.NewInvalidInput("days must be a positive integer"))
		return 0, false
	}
	return parsed, true
}

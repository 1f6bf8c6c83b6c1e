package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campaignai/campaign-planner-go/internal/config"
	"github.com/campaignai/campaign-planner-go/internal/store"
)

// HealthResponse 는 상태 확인 응답이다.
type HealthResponse struct {
	Status        string `json:"status"`
	Model         string `json:"model"`
	LLMConfigured bool   `json:"llm_configured"`
	StoreEnabled  bool   `json:"store_enabled"`
	Store         string `json:"store,omitempty"`
}

// RegisterHealthRoutes: 상태 확인 라우트를 등록합니다.
func RegisterHealthRoutes(router *gin.Engine, cfg *config.Config, campaignStore *store.Store) {
	// Liveness: 외부 의존성 상태로 다운 판정되지 않도록 shallow 로 유지한다.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Status:        "ok",
			Model:         cfg.Gemini.Model,
			LLMConfigured: cfg.Gemini.IsConfigured(),
			StoreEnabled:  campaignStore.IsEnabled(),
		})
	})

	router.GET("/health/ready", func(c *gin.Context) {
		response := HealthResponse{
			Status:        "ok",
			Model:         cfg.Gemini.Model,
			LLMConfigured: cfg.Gemini.IsConfigured(),
			StoreEnabled:  campaignStore.IsEnabled(),
		}

		status := http.StatusOK
		if campaignStore.IsEnabled() {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := campaignStore.Ping(ctx); err != nil {
				response.Status = "degraded"
				response.Store = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				response.Store = "ok"
			}
		}

		c.JSON(status, response)
	})
}

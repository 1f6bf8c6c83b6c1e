package handler

import (
	"log/slog"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/campaignai/campaign-planner-go/internal/config"
	"github.com/campaignai/campaign-planner-go/internal/middleware"
	"github.com/campaignai/campaign-planner-go/internal/store"
)

// NewRouter 는 HTTP 라우터를 구성한다.
func NewRouter(
	cfg *config.Config,
	logger *slog.Logger,
	campaignStore *store.Store,
	plannerHandler *PlannerHandler,
	campaignHandler *CampaignHandler,
	usageHandler *UsageHandler,
) *gin.Engine {
	setGinMode(cfg.Logging.Level)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		gin.Recovery(),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.APIKeyAuth(cfg),
		middleware.RateLimit(cfg),
	)

	RegisterHealthRoutes(router, cfg, campaignStore)
	plannerHandler.RegisterRoutes(router)
	campaignHandler.RegisterRoutes(router)
	usageHandler.RegisterRoutes(router)

	return router
}

func setGinMode(level string) {
	if strings.EqualFold(strings.TrimSpace(level), "debug") {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}

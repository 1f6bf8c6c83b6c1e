package di

import (
	"fmt"

	"github.com/campaignai/campaign-planner-go/internal/config"
	"github.com/campaignai/campaign-planner-go/internal/domain/campaign"
	"github.com/campaignai/campaign-planner-go/internal/gemini"
	"github.com/campaignai/campaign-planner-go/internal/guard"
	"github.com/campaignai/campaign-planner-go/internal/handler"
	"github.com/campaignai/campaign-planner-go/internal/metrics"
	"github.com/campaignai/campaign-planner-go/internal/server"
	"github.com/campaignai/campaign-planner-go/internal/store"
	"github.com/campaignai/campaign-planner-go/internal/usage"
	"github.com/campaignai/campaign-planner-go/internal/usecase/planner"
)

// InitializeApp 은 애플리케이션 의존성을 초기화하고 App 인스턴스를 반환한다.
func InitializeApp() (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	metricsStore := metrics.NewStore()

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	usageRepository := usage.NewRepository(cfg, logger)
	usageRecorder := usage.NewRecorder(usageRepository, logger)

	geminiClient, err := gemini.NewClient(cfg, metricsStore, usageRecorder)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	injectionGuard, err := guard.NewGuard(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("guard: %w", err)
	}

	prompts, err := campaign.LoadPrompts()
	if err != nil {
		return nil, fmt.Errorf("prompts: %w", err)
	}

	plannerService, err := planner.NewService(geminiClient, prompts, injectionGuard, metricsStore, logger)
	if err != nil {
		return nil, fmt.Errorf("planner service: %w", err)
	}

	campaignStore, err := store.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("campaign store: %w", err)
	}

	plannerHandler := handler.NewPlannerHandler(plannerService, campaignStore, logger)
	campaignHandler := handler.NewCampaignHandler(campaignStore, plannerService, logger)
	usageHandler := handler.NewUsageHandler(cfg, usageRepository, metricsStore, logger)

	router := handler.NewRouter(cfg, logger, campaignStore, plannerHandler, campaignHandler, usageHandler)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg, campaignStore, usageRepository), nil
}

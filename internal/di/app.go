package di

import (
	"log/slog"
	"net/http"

	"github.com/campaignai/campaign-planner-go/internal/config"
	"github.com/campaignai/campaign-planner-go/internal/store"
	"github.com/campaignai/campaign-planner-go/internal/usage"
)

// App: 애플리케이션 구성 요소를 묶는다.
type App struct {
	Server          *http.Server
	Logger          *slog.Logger
	Config          *config.Config
	CampaignStore   *store.Store
	UsageRepository *usage.Repository
}

// NewApp: App 인스턴스를 생성합니다.
func NewApp(
	server *http.Server,
	logger *slog.Logger,
	cfg *config.Config,
	campaignStore *store.Store,
	usageRepository *usage.Repository,
) *App {
	return &App{
		Server:          server,
		Logger:          logger,
		Config:          cfg,
		CampaignStore:   campaignStore,
		UsageRepository: usageRepository,
	}
}

// Close: 앱 리소스를 정리합니다.
func (a *App) Close() {
	if a.CampaignStore != nil {
		a.CampaignStore.Close()
	}
	if a.UsageRepository != nil {
		a.UsageRepository.Close()
	}
}

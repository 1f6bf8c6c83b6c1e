package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campaignai/campaign-planner-go/internal/domain/campaign"
	"github.com/campaignai/campaign-planner-go/internal/httperror"
	"github.com/campaignai/campaign-planner-go/internal/store"
	"github.com/campaignai/campaign-planner-go/internal/usecase/planner"
)

// GenerateCampaignsRequest 는 캠페인 생성 요청 본문이다.
type GenerateCampaignsRequest struct {
	Query   string                   `json:"query" binding:"required"`
	Filters campaign.CampaignFilters `json:"filters"`
}

// GeneratePersonasRequest 는 페르소나 생성 요청 본문이다.
// campaignId 가 있으면 저장소에서 캠페인을 읽고, 없으면 인라인 캠페인을 쓴다.
type GeneratePersonasRequest struct {
	CampaignID string             `json:"campaignId"`
	Campaign   *campaign.Campaign `json:"campaign"`
}

// ChatRequest 는 플래너 대화 요청 본문이다.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	Context any    `json:"context"`
}

// PersonasResponse 는 페르소나 생성 응답 본문이다.
type PersonasResponse struct {
	CampaignID string             `json:"campaignId,omitempty"`
	Personas   []campaign.Persona `json:"personas"`
}

// PlannerHandler 는 캠페인 플래너 API 핸들러다.
type PlannerHandler struct {
	planner *planner.Service
	store   *store.Store
	logger  *slog.Logger
}

// NewPlannerHandler 는 플래너 핸들러를 생성한다.
func NewPlannerHandler(service *planner.Service, campaignStore *store.Store, logger *slog.Logger) *PlannerHandler {
	return &PlannerHandler{
		planner: service,
		store:   campaignStore,
		logger:  logger,
	}
}

// RegisterRoutes 는 플래너 라우트를 등록한다.
func (h *PlannerHandler) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api/planner")
	group.POST("/campaigns", h.handleGenerateCampaigns)
	group.POST("/personas", h.handleGeneratePersonas)
	group.POST("/chat", h.handleChat)
}

func (h *PlannerHandler) handleGenerateCampaigns(c *gin.Context) {
	var req GenerateCampaignsRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.planner.GenerateCampaigns(c.Request.Context(), req.Query, req.Filters)
	if err != nil {
		h.logError(err)
		writeError(c, err)
		return
	}

	// 생성된 캠페인을 저장해 두어야 상세 조회와 런칭이 가능하다.
	if result.Type == campaign.ResponseCampaign {
		h.persistCampaigns(c, result.Campaigns)
	}

	c.JSON(http.StatusOK, result)
}

func (h *PlannerHandler) handleGeneratePersonas(c *gin.Context) {
	var req GeneratePersonasRequest
	if !bindJSON(c, &req) {
		return
	}

	target, err := h.resolveCampaign(c, req)
	if err != nil {
		h.logError(err)
		writeError(c, err)
		return
	}

	personas, err := h.planner.GeneratePersonaOffers(c.Request.Context(), *target)
	if err != nil {
		h.logError(err)
		writeError(c, err)
		return
	}

	if req.CampaignID != "" && h.store.IsEnabled() {
		if err := h.store.SavePersonas(c.Request.Context(), req.CampaignID, personas); err != nil {
			h.logger.Warn("personas_save_failed", "campaign_id", req.CampaignID, "err", err)
		}
	}

	c.JSON(http.StatusOK, PersonasResponse{
		CampaignID: req.CampaignID,
		Personas:   personas,
	})
}

func (h *PlannerHandler) handleChat(c *gin.Context) {
	var req ChatRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.planner.ChatRespond(c.Request.Context(), req.Message, req.Context)
	if err != nil {
		h.logError(err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PlannerHandler) resolveCampaign(c *gin.Context, req GeneratePersonasRequest) (*campaign.Campaign, error) {
	if req.CampaignID != "" {
		return h.store.Get(c.Request.Context(), req.CampaignID)
	}
	if req.Campaign != nil {
		return req.Campaign, nil
	}
	return nil, httperror.NewMissingField("campaignId")
}

func (h *PlannerHandler) persistCampaigns(c *gin.Context, campaigns []campaign.Campaign) {
	if !h.store.IsEnabled() {
		return
	}
	for _, item := range campaigns {
		if item.ID == "" {
			continue
		}
		if item.CreatedAt.IsZero() {
			item.CreatedAt = time.Now().UTC()
			item.UpdatedAt = item.CreatedAt
		}
		if err := h.store.Add(c.Request.Context(), item); err != nil {
			// 같은 ID의 재생성은 기존 캠페인을 덮어쓰지 않는다.
			if errors.Is(err, store.ErrCampaignExists) {
				continue
			}
			h.logger.Warn("campaign_save_failed", "campaign_id", item.ID, "err", err)
		}
	}
}

func (h *PlannerHandler) logError(err error) {
	if err == nil || h.logger == nil {
		return
	}
	h.logger.Warn("planner_request_failed", "err", err)
}

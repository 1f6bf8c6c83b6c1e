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

// CreateCampaignRequest 는 캠페인 수동 등록 요청 본문이다.
type CreateCampaignRequest struct {
	ID          string `json:"id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`

	Season                   string   `json:"season"`
	TargetAudience           string   `json:"targetAudience"`
	PrimaryFestivalsOrSeason []string `json:"primaryFestivalsOrSeason"`
	Channels                 []string `json:"channels"`
	StartDate                string   `json:"startDate"`
	EndDate                  string   `json:"endDate"`
	Budget                   float64  `json:"budget"`
}

// CampaignListResponse 는 캠페인 목록 응답 본문이다.
type CampaignListResponse struct {
	Campaigns []campaign.Campaign `json:"campaigns"`
	Count     int                 `json:"count"`
}

// MarkdownResponse 는 마크다운 본문 응답이다.
type MarkdownResponse struct {
	Markdown string `json:"markdown"`
}

// CampaignHandler 는 캠페인 CRUD/런칭 API 핸들러다.
type CampaignHandler struct {
	store   *store.Store
	planner *planner.Service
	logger  *slog.Logger
	now     func() time.Time
}

// NewCampaignHandler 는 캠페인 핸들러를 생성한다.
func NewCampaignHandler(campaignStore *store.Store, service *planner.Service, logger *slog.Logger) *CampaignHandler {
	return &CampaignHandler{
		store:   campaignStore,
		planner: service,
		logger:  logger,
		now:     time.Now,
	}
}

// RegisterRoutes 는 캠페인 라우트를 등록한다.
func (h *CampaignHandler) RegisterRoutes(router *gin.Engine) {
	group := router.Group("/api/campaigns")
	group.GET("", h.handleList)
	group.POST("", h.handleCreate)
	group.GET("/:id", h.handleGet)
	group.PUT("/:id", h.handleUpdate)
	group.POST("/:id/launch", h.handleLaunch)
	group.GET("/:id/brief", h.handleBrief)
}

func (h *CampaignHandler) handleList(c *gin.Context) {
	campaigns, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logError(err)
		writeError(c, err)
		return
	}

	// format=table 은 대시보드가 그대로 렌더링할 마크다운 표를 돌려준다.
	if c.Query("format") == "table" {
		c.JSON(http.StatusOK, MarkdownResponse{Markdown: planner.FormatSuggestionTable(campaigns)})
		return
	}

	c.JSON(http.StatusOK, CampaignListResponse{Campaigns: campaigns, Count: len(campaigns)})
}

func (h *CampaignHandler) handleCreate(c *gin.Context) {
	var req CreateCampaignRequest
	if !bindJSON(c, &req) {
		return
	}

	now := h.now().UTC()
	item := campaign.Campaign{
		ID:                       req.ID,
		Title:                    req.Title,
		Description:              req.Description,
		Season:                   req.Season,
		TargetAudience:           req.TargetAudience,
		PrimaryFestivalsOrSeason: req.PrimaryFestivalsOrSeason,
		Channels:                 req.Channels,
		StartDate:                req.StartDate,
		EndDate:                  req.EndDate,
		Budget:                   req.Budget,
		Status:                   campaign.StatusReady,
		Confidence:               85,
		Reach:                    50000,
		Source:                   "manual",
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	if err := h.store.Add(c.Request.Context(), item); err != nil {
		h.logError(err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *CampaignHandler) handleGet(c *gin.Context) {
	item, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logError(err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *CampaignHandler) handleUpdate(c *gin.Context) {
	var item campaign.Campaign
	if !bindJSON(c, &item) {
		return
	}

	if item.ID == "" {
		item.ID = c.Param("id")
	}
	if item.ID != c.Param("id") {
		writeError(c, httperror.NewInvalidInput("campaign id mismatch"))
		return
	}

	if err := h.store.Update(c.Request.Context(), item); err != nil {
		h.logError(err)
		writeError(c, err)
		return
	}

	updated, err := h.store.Get(c.Request.Context(), item.ID)
	if err != nil {
		h.logError(err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *CampaignHandler) handleLaunch(c *gin.Context) {
	launched, err := h.store.Launch(c.Request.Context(), c.Param("id"), h.now().UTC())
	if err != nil {
		h.logError(err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, launched)
}

func (h *CampaignHandler) handleBrief(c *gin.Context) {
	item, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.logError(err)
		writeError(c, err)
		return
	}

	personas, err := h.store.GetPersonas(c.Request.Context(), item.ID)
	if err != nil {
		// 저장된 페르소나가 없으면 폴백 페르소나로 브리프를 만든다.
		if !errors.Is(err, store.ErrPersonasNotFound) {
			h.logError(err)
			writeError(c, err)
			return
		}
		personas = h.planner.DefaultPersonas(*item)
	}

	c.JSON(http.StatusOK, MarkdownResponse{Markdown: planner.FormatCampaignBrief(*item, personas)})
}

func (h *CampaignHandler) logError(err error) {
	if err == nil || h.logger == nil {
		return
	}
	h.logger.Warn("campaign_request_failed", "err", err)
}

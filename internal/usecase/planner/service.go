// Package planner 는 캠페인 플래너 파사드를 제공한다.
// 프롬프트 생성 → 모델 호출 → 파싱 → 정규화를 순서대로 수행하고,
// 어느 단계가 실패해도 (취소 제외) 오류 대신 안전한 응답으로 강등한다.
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/goccy/go-json"

	"github.com/campaignai/campaign-planner-go/internal/domain/campaign"
	"github.com/campaignai/campaign-planner-go/internal/gemini"
	"github.com/campaignai/campaign-planner-go/internal/guard"
	"github.com/campaignai/campaign-planner-go/internal/llmparse"
	"github.com/campaignai/campaign-planner-go/internal/metrics"
)

const (
	campaignErrorMessage   = "Sorry, I encountered an error while generating campaigns. Please try again."
	guardBlockedMessage    = "I can't help with that request. Let's keep the conversation about campaign planning."
	notConfiguredMessage   = "The AI model is not configured yet. Please set a valid API key to generate campaigns."
	suggestTemplate        = "I've found %d campaign suggestions for you. Click on any campaign to view details and launch it."
	detailsMessage         = "Here are the detailed campaign specifications and persona offers."
	campaignCreateTemplate = "I've created %d campaigns based on your request: %q"
	campaignParsedFallback = "I've analyzed your request about %q and can help create campaigns. Let me know more specific details about what you're looking for."
)

// Service 는 플래너 파사드다. 협력자는 이 타입만 호출한다.
type Service struct {
	llm     gemini.LLM
	prompts *campaign.Prompts
	guard   *guard.InjectionGuard
	metrics *metrics.Store
	logger  *slog.Logger
	now     func() time.Time
}

// NewService 는 플래너 서비스를 생성한다. guard 는 nil 허용이다.
func NewService(
	llmClient gemini.LLM,
	prompts *campaign.Prompts,
	injectionGuard *guard.InjectionGuard,
	metricsStore *metrics.Store,
	logger *slog.Logger,
) (*Service, error) {
	if llmClient == nil {
		return nil, errors.New("llm client is nil")
	}
	if prompts == nil {
		return nil, errors.New("prompts is nil")
	}
	if metricsStore == nil {
		return nil, errors.New("metrics store is nil")
	}
	return &Service{
		llm:     llmClient,
		prompts: prompts,
		guard:   injectionGuard,
		metrics: metricsStore,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// GenerateCampaigns 는 질의와 필터로 캠페인 제안을 생성한다.
// 실패는 type=text 사과 메시지로 강등되고, 오류는 취소일 때만 반환된다.
// 캠페인 생성에는 구조화된 폴백이 없다: 페르소나 생성과 달리
// 실패 시 빈 캠페인 목록을 받는다는 전제를 호출자가 가져야 한다.
func (s *Service) GenerateCampaigns(
	ctx context.Context,
	query string,
	filters campaign.CampaignFilters,
) (campaign.PlannerResponse, error) {
	prompt, err := s.prompts.CampaignPrompt(query, filters)
	if err != nil {
		s.logError("campaign_prompt_failed", err)
		return textResponse(campaignErrorMessage), nil
	}

	result, err := s.llm.Chat(ctx, gemini.Request{Prompt: prompt})
	if err != nil {
		if canceled(ctx, err) {
			return campaign.PlannerResponse{}, err
		}
		s.logError("campaign_generation_failed", err)
		if errors.Is(err, gemini.ErrNotConfigured) {
			return textResponse(notConfiguredMessage), nil
		}
		return textResponse(campaignErrorMessage), nil
	}

	raw, err := llmparse.ExtractObject(result.Text)
	if err != nil {
		s.logError("campaign_parse_failed", err)
		return textResponse(fmt.Sprintf(campaignParsedFallback, query)), nil
	}

	payload, err := campaign.DecodeCampaignPayload(raw)
	if err != nil {
		s.logError("campaign_decode_failed", err)
		return textResponse(fmt.Sprintf(campaignParsedFallback, query)), nil
	}

	campaigns := campaign.NormalizeCampaigns(payload.Campaigns, s.now())
	if len(campaigns) == 0 {
		return textResponse(fmt.Sprintf(campaignParsedFallback, query)), nil
	}

	message := payload.Message
	if message == "" {
		message = fmt.Sprintf(campaignCreateTemplate, len(campaigns), query)
	}

	return campaign.PlannerResponse{
		Message:   message,
		Type:      campaign.ResponseCampaign,
		Campaigns: campaigns,
		Data:      campaigns,
	}, nil
}

// GeneratePersonaOffers 는 캠페인별 페르소나/오퍼를 생성한다.
// 항상 정확히 5개 페르소나 x 12개 오퍼를 반환한다. 어떤 실패든
// 폴백 페르소나로 대체되며, 오류는 취소일 때만 반환된다.
func (s *Service) GeneratePersonaOffers(
	ctx context.Context,
	c campaign.Campaign,
) ([]campaign.Persona, error) {
	fallback := campaign.DefaultPersonas(c)

	prompt, err := s.prompts.PersonaPrompt(c)
	if err != nil {
		s.logError("persona_prompt_failed", err)
		s.metrics.RecordFallback()
		return fallback, nil
	}

	result, err := s.llm.Chat(ctx, gemini.Request{Prompt: prompt})
	if err != nil {
		if canceled(ctx, err) {
			// 사용자가 취소했을 때 폴백 데이터를 주면 오해를 부른다.
			return nil, err
		}
		s.logError("persona_generation_failed", err)
		s.metrics.RecordFallback()
		return fallback, nil
	}

	raw, err := llmparse.ExtractObject(result.Text)
	if err != nil {
		s.logError("persona_parse_failed", err)
		s.metrics.RecordFallback()
		return fallback, nil
	}

	payload, err := campaign.DecodePersonaPayload(raw)
	if err != nil || len(payload.Personas) == 0 {
		if err != nil {
			s.logError("persona_decode_failed", err)
		}
		s.metrics.RecordFallback()
		return fallback, nil
	}

	return campaign.NormalizePersonas(payload.Personas, fallback), nil
}

// ChatRespond 는 자유 대화 메시지에 응답한다. 페이로드의 intent 로
// 응답 형태를 분류하고, 실패 시 원인을 담은 text 응답으로 강등한다.
func (s *Service) ChatRespond(
	ctx context.Context,
	message string,
	contextData any,
) (campaign.PlannerResponse, error) {
	if s.guard != nil {
		if err := s.guard.EnsureSafe(message); err != nil {
			return textResponse(guardBlockedMessage), nil
		}
	}

	contextJSON := ""
	if contextData != nil {
		if data, err := json.Marshal(contextData); err == nil {
			contextJSON = string(data)
		}
	}

	prompt, err := s.prompts.ChatPrompt(message, contextJSON, s.now().Format("2006-01-02"))
	if err != nil {
		s.logError("chat_prompt_failed", err)
		return textResponse(chatErrorMessage(err)), nil
	}

	result, err := s.llm.Chat(ctx, gemini.Request{Prompt: prompt})
	if err != nil {
		if canceled(ctx, err) {
			return campaign.PlannerResponse{}, err
		}
		s.logError("chat_generation_failed", err)
		return textResponse(chatErrorMessage(err)), nil
	}

	raw, err := llmparse.ExtractObject(result.Text)
	if err != nil {
		// JSON 블록이 없는 응답은 순수 대화로 본다.
		return textResponse(result.Text), nil
	}

	payload, err := campaign.DecodeChatPayload(raw)
	if err != nil {
		return textResponse(result.Text), nil
	}

	switch payload.Intent {
	case campaign.IntentSuggestCampaigns:
		return campaign.PlannerResponse{
			Message: fmt.Sprintf(suggestTemplate, len(payload.Campaigns)),
			Type:    campaign.ResponseCampaign,
			Data:    raw["campaigns"],
		}, nil
	case campaign.IntentCampaignDetails:
		return campaign.PlannerResponse{
			Message: detailsMessage,
			Type:    campaign.ResponseCampaign,
			Data:    raw,
		}, nil
	case campaign.IntentLaunchCampaign:
		return campaign.PlannerResponse{
			Message: result.Text,
			Type:    campaign.ResponseText,
			Data:    raw,
		}, nil
	default:
		return campaign.PlannerResponse{
			Message: result.Text,
			Type:    campaign.ResponseText,
			Data:    raw,
		}, nil
	}
}

// DefaultPersonas 는 폴백 생성기를 그대로 노출한다. 순수/동기 함수다.
func (s *Service) DefaultPersonas(c campaign.Campaign) []campaign.Persona {
	return campaign.DefaultPersonas(c)
}

func (s *Service) logError(event string, err error) {
	if s.logger != nil {
		s.logger.Warn(event, "err", err)
	}
}

// canceled 는 호출 실패가 컨텍스트 취소/타임아웃에서 비롯됐는지 판별한다.
func canceled(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func chatErrorMessage(err error) string {
	return fmt.Sprintf("I apologize, but I encountered an error: %v. Please check your API key configuration.", err)
}

func textResponse(message string) campaign.PlannerResponse {
	return campaign.PlannerResponse{
		Message: message,
		Type:    campaign.ResponseText,
	}
}

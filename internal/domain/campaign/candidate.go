package campaign

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// 후보 타입들은 모델 응답에서 해석된 신뢰할 수 없는 구조다.
// 모든 필드가 선택이며, 정규화를 거쳐야 도메인 타입이 된다.

// CandidateCampaign 은 검증 전 캠페인 후보다.
type CandidateCampaign struct {
	ID             string             `mapstructure:"id"`
	Title          string             `mapstructure:"title"`
	Description    string             `mapstructure:"description"`
	Season         string             `mapstructure:"season"`
	Festival       string             `mapstructure:"festival"`
	Trend          string             `mapstructure:"trend"`
	TargetAudience string             `mapstructure:"targetAudience"`
	Reach          float64            `mapstructure:"reach"`
	Confidence     float64            `mapstructure:"confidence"`
	Status         string             `mapstructure:"status"`
	Source         string             `mapstructure:"source"`
	Channels       []string           `mapstructure:"channels"`
	ContentIdeas   []string           `mapstructure:"contentIdeas"`
	Content        CandidateContent   `mapstructure:"content"`
	Metrics        CandidateMetrics   `mapstructure:"metrics"`
	Personas       []CandidatePersona `mapstructure:"personas"`
}

// CandidateContent 는 검증 전 콘텐츠 후보다.
type CandidateContent struct {
	Headline       string   `mapstructure:"headline"`
	Subheadline    string   `mapstructure:"subheadline"`
	Description    string   `mapstructure:"description"`
	CallToAction   string   `mapstructure:"callToAction"`
	KeyMessages    []string `mapstructure:"keyMessages"`
	VisualElements []string `mapstructure:"visualElements"`
	Tone           string   `mapstructure:"tone"`
	BrandVoice     string   `mapstructure:"brandVoice"`
}

// CandidateMetrics 는 검증 전 성과 예측치 후보다.
type CandidateMetrics struct {
	ExpectedCTR            float64 `mapstructure:"expectedCTR"`
	ExpectedConversionRate float64 `mapstructure:"expectedConversionRate"`
	EstimatedRevenue       float64 `mapstructure:"estimatedRevenue"`
	ExpectedROI            float64 `mapstructure:"expectedROI"`
	ReadinessScore         float64 `mapstructure:"readinessScore"`
	PredictedEngagement    float64 `mapstructure:"predictedEngagement"`
}

// CandidatePersona 는 검증 전 페르소나 후보다.
type CandidatePersona struct {
	ID                string                `mapstructure:"id"`
	Name              string                `mapstructure:"name"`
	Description       string                `mapstructure:"description"`
	Demographics      CandidateDemographics `mapstructure:"demographics"`
	PainPoints        []string              `mapstructure:"painPoints"`
	Motivations       []string              `mapstructure:"motivations"`
	Offers            []CandidateOffer      `mapstructure:"offers"`
	PreferredChannels []string              `mapstructure:"preferredChannels"`
	MessagingTone     string                `mapstructure:"messagingTone"`
}

// CandidateDemographics 는 검증 전 인구통계 후보다.
type CandidateDemographics struct {
	Age       string   `mapstructure:"age"`
	Income    string   `mapstructure:"income"`
	Location  string   `mapstructure:"location"`
	Interests []string `mapstructure:"interests"`
}

// CandidateOffer 는 검증 전 오퍼 후보다.
type CandidateOffer struct {
	ID           string   `mapstructure:"id"`
	Title        string   `mapstructure:"title"`
	Description  string   `mapstructure:"description"`
	Discount     float64  `mapstructure:"discount"`
	DiscountType string   `mapstructure:"discountType"`
	Value        string   `mapstructure:"value"`
	Terms        []string `mapstructure:"terms"`
	Urgency      string   `mapstructure:"urgency"`
	Exclusivity  string   `mapstructure:"exclusivity"`
	CallToAction string   `mapstructure:"callToAction"`
}

// CampaignPayload 는 캠페인 생성 응답의 최상위 페이로드다.
type CampaignPayload struct {
	Campaigns []CandidateCampaign `mapstructure:"campaigns"`
	Message   string              `mapstructure:"message"`
	Type      string              `mapstructure:"type"`
}

// PersonaPayload 는 페르소나 생성 응답의 최상위 페이로드다.
type PersonaPayload struct {
	Personas []CandidatePersona `mapstructure:"personas"`
}

// ChatPayload 는 챗 응답에서 의도 분류에 필요한 최소 필드다.
// 전체 페이로드는 원본 맵 그대로 Data 로 전달한다.
type ChatPayload struct {
	Intent    Intent              `mapstructure:"intent"`
	Campaigns []CandidateCampaign `mapstructure:"campaigns"`
	Message   string              `mapstructure:"message"`
}

// DecodeCampaignPayload 는 파서가 내놓은 맵을 캠페인 페이로드 후보로 해석한다.
func DecodeCampaignPayload(raw map[string]any) (*CampaignPayload, error) {
	var payload CampaignPayload
	if err := decodeCandidate(raw, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DecodePersonaPayload 는 파서가 내놓은 맵을 페르소나 페이로드 후보로 해석한다.
func DecodePersonaPayload(raw map[string]any) (*PersonaPayload, error) {
	var payload PersonaPayload
	if err := decodeCandidate(raw, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DecodeChatPayload 는 파서가 내놓은 맵에서 챗 의도를 해석한다.
func DecodeChatPayload(raw map[string]any) (*ChatPayload, error) {
	var payload ChatPayload
	if err := decodeCandidate(raw, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// decodeCandidate 는 느슨한 타입 변환을 허용해 후보 구조로 디코딩한다.
// 모델이 숫자를 문자열로 내놓는 경우가 흔해서 WeaklyTypedInput 을 쓴다.
func decodeCandidate(raw map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("candidate decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return fmt.Errorf("decode candidate: %w", err)
	}
	return nil
}

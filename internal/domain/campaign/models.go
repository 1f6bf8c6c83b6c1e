// Package campaign 은 캠페인/페르소나/오퍼 도메인 모델과
// 모델 응답 정규화 규칙을 담당한다.
package campaign

import (
	"errors"
	"fmt"
	"time"
)

// Status 는 캠페인 수명주기 상태다.
// draft → ready → launched → completed 순서로만 전이한다.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusReady     Status = "ready"
	StatusLaunched  Status = "launched"
	StatusCompleted Status = "completed"
)

var statusRank = map[Status]int{
	StatusDraft:     0,
	StatusReady:     1,
	StatusLaunched:  2,
	StatusCompleted: 3,
}

// ErrStatusTransition 은 역방향 상태 전이를 시도했을 때 반환된다.
var ErrStatusTransition = errors.New("invalid campaign status transition")

// Valid 는 알려진 상태 값인지 반환한다.
func (s Status) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Campaign 은 생성된 마케팅 캠페인 제안이다.
type Campaign struct {
	ID                       string     `json:"id"`
	Title                    string     `json:"title"`
	Description              string     `json:"description"`
	Season                   string     `json:"season,omitempty"`
	Festival                 string     `json:"festival,omitempty"`
	Trend                    string     `json:"trend,omitempty"`
	TargetAudience           string     `json:"targetAudience,omitempty"`
	PrimaryFestivalsOrSeason []string   `json:"primaryFestivalsOrSeason,omitempty"`
	Channels                 []string   `json:"channels,omitempty"`
	ContentIdeas             []string   `json:"contentIdeas,omitempty"`
	Budget                   float64    `json:"budget,omitempty"`
	StartDate                string     `json:"startDate,omitempty"`
	EndDate                  string     `json:"endDate,omitempty"`
	Reach                    int64      `json:"reach"`
	Confidence               float64    `json:"confidence"`
	Status                   Status     `json:"status"`
	Source                   string     `json:"source,omitempty"`
	Content                  Content    `json:"content"`
	Metrics                  Metrics    `json:"metrics"`
	Personas                 []Persona  `json:"personas,omitempty"`
	CreatedAt                time.Time  `json:"createdAt"`
	UpdatedAt                time.Time  `json:"updatedAt"`
	LaunchedAt               *time.Time `json:"launchedAt,omitempty"`
}

// Content 는 캠페인 콘텐츠 초안이다.
type Content struct {
	Headline       string   `json:"headline,omitempty"`
	Subheadline    string   `json:"subheadline,omitempty"`
	Description    string   `json:"description,omitempty"`
	CallToAction   string   `json:"callToAction,omitempty"`
	KeyMessages    []string `json:"keyMessages,omitempty"`
	VisualElements []string `json:"visualElements,omitempty"`
	Tone           string   `json:"tone,omitempty"`
	BrandVoice     string   `json:"brandVoice,omitempty"`
}

// Metrics 는 캠페인 성과 예측치다. 비율 지표는 [0,100] 범위다.
type Metrics struct {
	ExpectedCTR            float64 `json:"expectedCTR"`
	ExpectedConversionRate float64 `json:"expectedConversionRate"`
	EstimatedRevenue       float64 `json:"estimatedRevenue"`
	ExpectedROI            float64 `json:"expectedROI"`
	ReadinessScore         float64 `json:"readinessScore"`
	PredictedEngagement    float64 `json:"predictedEngagement"`
}

// AdvanceStatus 는 상태를 전진 전이시킨다. 역방향/미지 상태는 거부한다.
func (c *Campaign) AdvanceStatus(next Status) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrStatusTransition, next)
	}
	if statusRank[next] < statusRank[c.Status] {
		return fmt.Errorf("%w: %s -> %s", ErrStatusTransition, c.Status, next)
	}
	c.Status = next
	return nil
}

// Launch 는 캠페인을 launched 상태로 전이하고 launchedAt 을 기록한다.
// 이미 launched/completed 인 캠페인은 다시 런칭할 수 없다.
func (c *Campaign) Launch(now time.Time) error {
	if statusRank[c.Status] >= statusRank[StatusLaunched] {
		return fmt.Errorf("%w: already %s", ErrStatusTransition, c.Status)
	}
	c.Status = StatusLaunched
	launchedAt := now
	c.LaunchedAt = &launchedAt
	c.UpdatedAt = now
	return nil
}

// SeasonLabel 은 프롬프트/폴백에 쓰일 시즌 문구를 반환한다.
func (c Campaign) SeasonLabel() string {
	if c.Season != "" {
		return c.Season
	}
	if len(c.PrimaryFestivalsOrSeason) > 0 && c.PrimaryFestivalsOrSeason[0] != "" {
		return c.PrimaryFestivalsOrSeason[0]
	}
	return "General season"
}

// Clone 은 캠페인의 깊은 복사본을 반환한다.
func (c Campaign) Clone() Campaign {
	clone := c
	clone.PrimaryFestivalsOrSeason = cloneStrings(c.PrimaryFestivalsOrSeason)
	clone.Channels = cloneStrings(c.Channels)
	clone.ContentIdeas = cloneStrings(c.ContentIdeas)
	clone.Content.KeyMessages = cloneStrings(c.Content.KeyMessages)
	clone.Content.VisualElements = cloneStrings(c.Content.VisualElements)
	clone.Personas = ClonePersonas(c.Personas)
	if c.LaunchedAt != nil {
		launchedAt := *c.LaunchedAt
		clone.LaunchedAt = &launchedAt
	}
	return clone
}

// Persona 는 캠페인별 고객 아키타입이다.
// Offers 는 항상 정확히 12개를 유지한다. 이 불변식이 이 패키지의 핵심이다.
type Persona struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Description       string       `json:"description"`
	Demographics      Demographics `json:"demographics"`
	PainPoints        []string     `json:"painPoints"`
	Motivations       []string     `json:"motivations"`
	Offers            []Offer      `json:"offers"`
	PreferredChannels []string     `json:"preferredChannels"`
	MessagingTone     string       `json:"messagingTone"`
}

// Demographics 는 페르소나 인구통계 정보다.
type Demographics struct {
	Age       string   `json:"age"`
	Income    string   `json:"income"`
	Location  string   `json:"location"`
	Interests []string `json:"interests"`
}

// Offer 는 페르소나 맞춤 프로모션 제안이다.
type Offer struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Discount     float64  `json:"discount,omitempty"`
	DiscountType string   `json:"discountType"`
	Value        string   `json:"value"`
	Terms        []string `json:"terms,omitempty"`
	Urgency      string   `json:"urgency,omitempty"`
	Exclusivity  string   `json:"exclusivity,omitempty"`
	CallToAction string   `json:"callToAction"`
}

// discountTypes 는 허용되는 discountType 태그 집합이다.
var discountTypes = map[string]struct{}{
	"percentage":    {},
	"fixed":         {},
	"bogo":          {},
	"free_shipping": {},
	"points":        {},
	"cashback":      {},
	"service":       {},
	"event":         {},
	"access":        {},
	"membership":    {},
	"upgrade":       {},
	"package":       {},
	"challenge":     {},
	"warranty":      {},
	"family":        {},
	"education":     {},
}

// ValidDiscountType 은 허용된 discountType 값인지 반환한다.
func ValidDiscountType(s string) bool {
	_, ok := discountTypes[s]
	return ok
}

// Clone 은 페르소나의 깊은 복사본을 반환한다.
// 캠페인은 페르소나 목록을 값으로 소유하므로 공유 슬라이스를 남기지 않는다.
func (p Persona) Clone() Persona {
	clone := p
	clone.Demographics.Interests = cloneStrings(p.Demographics.Interests)
	clone.PainPoints = cloneStrings(p.PainPoints)
	clone.Motivations = cloneStrings(p.Motivations)
	clone.PreferredChannels = cloneStrings(p.PreferredChannels)
	clone.Offers = cloneOffers(p.Offers)
	return clone
}

// ClonePersonas 는 페르소나 슬라이스의 깊은 복사본을 반환한다.
func ClonePersonas(personas []Persona) []Persona {
	if personas == nil {
		return nil
	}
	clones := make([]Persona, len(personas))
	for i, p := range personas {
		clones[i] = p.Clone()
	}
	return clones
}

func cloneOffers(offers []Offer) []Offer {
	if offers == nil {
		return nil
	}
	clones := make([]Offer, len(offers))
	for i, offer := range offers {
		clones[i] = offer
		clones[i].Terms = cloneStrings(offer.Terms)
	}
	return clones
}

func cloneStrings(values []string) []string {
	if values == nil {
		return nil
	}
	clone := make([]string, len(values))
	copy(clone, values)
	return clone
}

// CampaignFilters 는 캠페인 생성 요청의 선택 필터다.
type CampaignFilters struct {
	Season   string `json:"season,omitempty"`
	Festival string `json:"festival,omitempty"`
	Trend    string `json:"trend,omitempty"`
	Audience string `json:"audience,omitempty"`
	Budget   string `json:"budget,omitempty"`
	Duration string `json:"duration,omitempty"`
}

// ResponseType 은 플래너 응답의 표시 유형이다.
type ResponseType string

const (
	ResponseText       ResponseType = "text"
	ResponseCampaign   ResponseType = "campaign"
	ResponseSuggestion ResponseType = "suggestion"
	ResponsePersonas   ResponseType = "personas"
	ResponseOffers     ResponseType = "offers"
)

// Intent 는 챗 응답 페이로드의 의도 구분자다.
type Intent string

const (
	IntentSuggestCampaigns  Intent = "SuggestCampaigns"
	IntentCampaignDetails   Intent = "CampaignDetails"
	IntentCustomizeCampaign Intent = "CustomizeCampaign"
	IntentLaunchCampaign    Intent = "LaunchCampaign"
)

// PlannerResponse 는 플래너 파사드의 공통 응답이다.
type PlannerResponse struct {
	Message   string       `json:"message"`
	Type      ResponseType `json:"type"`
	Campaigns []Campaign   `json:"campaigns,omitempty"`
	Data      any          `json:"data,omitempty"`
}

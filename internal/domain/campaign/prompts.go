package campaign

import (
	"embed"
	"fmt"
	"strings"

	"github.com/campaignai/campaign-planner-go/internal/prompt"
)

//go:embed prompts/*.yml
var promptFiles embed.FS

// Prompts 는 임베드된 YAML 번들로 세 가지 의도의 프롬프트를 만든다.
// 같은 입력에 대해 항상 같은 문자열을 낸다.
type Prompts struct {
	bundles map[string]map[string]string
}

// LoadPrompts 는 임베드된 프롬프트 번들을 로드한다.
func LoadPrompts() (*Prompts, error) {
	bundles, err := prompt.LoadYAMLDir(promptFiles, "prompts")
	if err != nil {
		return nil, fmt.Errorf("load prompt bundles: %w", err)
	}
	for _, name := range []string{"campaigns", "personas", "chat"} {
		if _, err := prompt.Get(bundles, name); err != nil {
			return nil, err
		}
	}
	return &Prompts{bundles: bundles}, nil
}

// CampaignPrompt 는 캠페인 생성 프롬프트를 만든다.
func (p *Prompts) CampaignPrompt(query string, filters CampaignFilters) (string, error) {
	bundle, err := prompt.Get(p.bundles, "campaigns")
	if err != nil {
		return "", err
	}
	template, err := prompt.Field(bundle, "template", "campaigns.template")
	if err != nil {
		return "", err
	}
	schema, err := prompt.Field(bundle, "schema", "campaigns.schema")
	if err != nil {
		return "", err
	}

	return prompt.FormatTemplate(template, map[string]string{
		"query":    query,
		"season":   fallbackString(filters.Season, "current season"),
		"festival": fallbackString(filters.Festival, "relevant festivals"),
		"trend":    fallbackString(filters.Trend, "current trends"),
		"schema":   schema,
	})
}

// PersonaPrompt 는 페르소나/오퍼 생성 프롬프트를 만든다.
// 정확히 5개 페르소나 x 12개 오퍼 지시가 템플릿에 포함되어 있다.
// 텍스트 지시만으로는 부족하므로 최종 보장은 정규화 단계가 맡는다.
func (p *Prompts) PersonaPrompt(c Campaign) (string, error) {
	bundle, err := prompt.Get(p.bundles, "personas")
	if err != nil {
		return "", err
	}
	template, err := prompt.Field(bundle, "template", "personas.template")
	if err != nil {
		return "", err
	}
	schema, err := prompt.Field(bundle, "schema", "personas.schema")
	if err != nil {
		return "", err
	}

	keyMessages := c.Content.KeyMessages
	if len(keyMessages) == 0 {
		keyMessages = c.ContentIdeas
	}
	if len(keyMessages) == 0 {
		keyMessages = []string{"General campaign message"}
	}

	channels := strings.Join(c.Channels, ", ")
	if channels == "" {
		channels = "Email, SMS, Social"
	}

	return prompt.FormatTemplate(template, map[string]string{
		"title":          c.Title,
		"description":    c.Description,
		"targetAudience": c.TargetAudience,
		"season":         c.SeasonLabel(),
		"keyMessages":    strings.Join(keyMessages, ", "),
		"channels":       channels,
		"schema":         schema,
	})
}

// ChatPrompt 는 챗 프롬프트를 만든다. 출력 계약 전문이 포함된다.
func (p *Prompts) ChatPrompt(message string, contextJSON string, today string) (string, error) {
	bundle, err := prompt.Get(p.bundles, "chat")
	if err != nil {
		return "", err
	}
	template, err := prompt.Field(bundle, "template", "chat.template")
	if err != nil {
		return "", err
	}
	contract, err := prompt.Field(bundle, "contract", "chat.contract")
	if err != nil {
		return "", err
	}

	return prompt.FormatTemplate(template, map[string]string{
		"today":    today,
		"contract": contract,
		"message":  message,
		"context":  fallbackString(contextJSON, "None"),
	})
}

func fallbackString(value string, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

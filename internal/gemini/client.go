package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/campaignai/campaign-planner-go/internal/config"
	"github.com/campaignai/campaign-planner-go/internal/llm"
	"github.com/campaignai/campaign-planner-go/internal/metrics"
	"github.com/campaignai/campaign-planner-go/internal/usage"
)

var (
	// ErrNotConfigured 는 API 키가 없거나 자리표시자 값일 때 반환된다.
	// 네트워크 호출 전에 감지되며 전송 오류와 구분해서 노출해야 한다.
	ErrNotConfigured = errors.New("gemini api key not configured")
	// ErrModelUnavailable 는 모델 호출이 실패했을 때 반환된다.
	ErrModelUnavailable = errors.New("gemini model unavailable")
)

// Request 는 Gemini 요청 데이터다.
type Request struct {
	Prompt       string
	SystemPrompt string
	History      []llm.HistoryEntry
}

// Client 는 Gemini 호출을 담당한다.
// 재시도/캐싱 없이 요청당 1회 호출만 수행한다.
type Client struct {
	cfg           *config.Config
	metrics       *metrics.Store
	usageRecorder *usage.Recorder

	mu     sync.Mutex
	client *genai.Client
}

// NewClient 는 Gemini 클라이언트를 생성한다.
func NewClient(cfg *config.Config, metricsStore *metrics.Store, usageRecorder *usage.Recorder) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if metricsStore == nil {
		return nil, errors.New("metrics store is nil")
	}
	return &Client{
		cfg:           cfg,
		metrics:       metricsStore,
		usageRecorder: usageRecorder,
	}, nil
}

// Chat 은 텍스트 생성 요청을 수행하고 원문 텍스트를 반환한다.
func (c *Client) Chat(ctx context.Context, req Request) (llm.ChatResult, error) {
	start := time.Now()
	response, err := c.generate(ctx, req)
	if err != nil {
		c.metrics.RecordError(time.Since(start))
		return llm.ChatResult{}, err
	}

	tokenUsage := extractUsage(response)
	c.metrics.RecordSuccess(time.Since(start), tokenUsage)
	c.recordUsage(ctx, tokenUsage)

	return llm.ChatResult{
		Text:  response.Text(),
		Usage: tokenUsage,
		Model: c.cfg.Gemini.Model,
	}, nil
}

func (c *Client) recordUsage(ctx context.Context, tokenUsage llm.Usage) {
	if c.usageRecorder == nil {
		return
	}
	c.usageRecorder.Record(ctx, int64(tokenUsage.InputTokens), int64(tokenUsage.OutputTokens))
}

func (c *Client) generate(ctx context.Context, req Request) (*genai.GenerateContentResponse, error) {
	client, err := c.ensureClient(ctx)
	if err != nil {
		return nil, err
	}

	generateConfig := c.buildGenerateConfig(req.SystemPrompt)
	contents := buildContents(req.Prompt, req.History)
	response, err := client.Models.GenerateContent(ctx, c.cfg.Gemini.Model, contents, generateConfig)
	if err != nil {
		// 취소는 폴백 대상이 아니므로 그대로 전파한다.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	return response, nil
}

func (c *Client) ensureClient(ctx context.Context) (*genai.Client, error) {
	if !c.cfg.Gemini.IsConfigured() {
		return nil, ErrNotConfigured
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	timeout := time.Duration(c.cfg.Gemini.TimeoutSeconds) * time.Second
	client, err := genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
		APIKey:  c.cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			Timeout: genai.Ptr(timeout),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	c.client = client
	return client, nil
}

func (c *Client) buildGenerateConfig(systemPrompt string) *genai.GenerateContentConfig {
	generateConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(c.cfg.Gemini.Temperature)),
		MaxOutputTokens: int32(c.cfg.Gemini.MaxOutputTokens),
	}
	if systemPrompt != "" {
		generateConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}
	return generateConfig
}

func buildContents(prompt string, history []llm.HistoryEntry) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, entry := range history {
		var role genai.Role = genai.RoleUser
		if strings.EqualFold(entry.Role, "assistant") {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(entry.Content, role))
	}
	contents = append(contents, genai.NewContentFromText(prompt, genai.RoleUser))
	return contents
}

func extractUsage(response *genai.GenerateContentResponse) llm.Usage {
	if response == nil || response.UsageMetadata == nil {
		return llm.Usage{}
	}
	meta := response.UsageMetadata
	return llm.Usage{
		InputTokens:  int(meta.PromptTokenCount),
		OutputTokens: int(meta.CandidatesTokenCount),
		TotalTokens:  int(meta.TotalTokenCount),
	}
}

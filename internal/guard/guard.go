// Package guard 는 챗 입력의 프롬프트 인젝션 시도를 검사한다.
// 임베드된 룰팩의 정규식/문구 규칙으로 점수를 매기고
// 임계값을 넘으면 차단한다.
package guard

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/campaignai/campaign-planner-go/internal/cache"
	"github.com/campaignai/campaign-planner-go/internal/config"
)

const (
	cacheMaxSize = 512
	cacheTTL     = 10 * time.Minute
)

// Match 는 입력에 걸린 룰팩 규칙 하나다. Rule 은 룰팩의 규칙 id
// (문구 규칙은 "phrase:" 접두) 이고 Weight 는 점수 기여분이다.
type Match struct {
	Rule   string  `json:"rule"`
	Weight float64 `json:"weight"`
}

// Evaluation 은 입력 평가 결과다.
type Evaluation struct {
	Score     float64 `json:"score"`
	Threshold float64 `json:"threshold"`
	Hits      []Match `json:"hits,omitempty"`
}

// Malicious 는 점수가 임계값 이상인지 반환한다.
func (e Evaluation) Malicious() bool {
	return e.Score >= e.Threshold
}

// TopRule 은 가장 가중치가 높은 규칙 id 를 반환한다.
// 차단 로그와 오류에 결정 근거로 실린다.
func (e Evaluation) TopRule() string {
	rule := ""
	weight := 0.0
	for _, hit := range e.Hits {
		if hit.Weight > weight {
			weight = hit.Weight
			rule = hit.Rule
		}
	}
	return rule
}

// BlockedError 는 가드가 차단한 입력 오류다.
type BlockedError struct {
	Score     float64
	Threshold float64
	Rule      string
}

func (e *BlockedError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("input blocked by injection guard (rule=%s, score=%.2f, threshold=%.2f)",
			e.Rule, e.Score, e.Threshold)
	}
	return fmt.Sprintf("input blocked by injection guard (score=%.2f, threshold=%.2f)", e.Score, e.Threshold)
}

// InjectionGuard: 입력 문자열을 검사하는 보안 가드입니다.
type InjectionGuard struct {
	cfg    *config.Config
	logger *slog.Logger
	packs  []compiledPack
	cache  *cache.TTLCache[string, Evaluation]
	group  singleflight.Group
}

// NewGuard: 입력 검증 가드를 생성합니다.
func NewGuard(cfg *config.Config, logger *slog.Logger) (*InjectionGuard, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	guard := &InjectionGuard{
		cfg:    cfg,
		logger: logger,
		cache:  cache.NewTTLCache[string, Evaluation](cacheMaxSize, cacheTTL),
	}

	if cfg.Guard.Enabled {
		guard.packs = loadRulepacks(rulepackFiles, "rulepacks", logger)
		if logger != nil {
			logger.Info("guard_ready", "packs", len(guard.packs), "threshold", guard.threshold())
		}
	}

	return guard, nil
}

// Evaluate: 입력 문자열을 평가합니다.
func (g *InjectionGuard) Evaluate(input string) Evaluation {
	if g == nil || g.cfg == nil || !g.cfg.Guard.Enabled {
		return Evaluation{Score: 0, Hits: nil, Threshold: math.Inf(1)}
	}

	if cached, ok := g.cache.Get(input); ok {
		return cached
	}

	value, _, _ := g.group.Do(input, func() (any, error) {
		result := g.evaluateInternal(input)
		g.cache.Set(input, result)
		return result, nil
	})

	if evaluation, ok := value.(Evaluation); ok {
		return evaluation
	}
	return Evaluation{Score: 0, Hits: nil, Threshold: g.threshold()}
}

// EnsureSafe: 위험 입력을 오류로 반환합니다.
// 어떤 규칙이 결정적이었는지 로그와 오류 양쪽에 싣는다.
func (g *InjectionGuard) EnsureSafe(input string) error {
	evaluation := g.Evaluate(input)
	if evaluation.Malicious() {
		rule := evaluation.TopRule()
		if g.logger != nil {
			g.logger.Warn("guard_blocked",
				"rule", rule,
				"score", evaluation.Score,
				"threshold", evaluation.Threshold,
				"input", trimForLog(input),
			)
		}
		return &BlockedError{Score: evaluation.Score, Threshold: evaluation.Threshold, Rule: rule}
	}
	return nil
}

// IsMalicious: 입력이 위험한지 여부를 반환합니다.
func (g *InjectionGuard) IsMalicious(input string) bool {
	return g.Evaluate(input).Malicious()
}

func (g *InjectionGuard) threshold() float64 {
	if g.cfg == nil {
		return 0.7
	}
	if g.cfg.Guard.Threshold > 0 {
		return g.cfg.Guard.Threshold
	}

	maxThreshold := 0.0
	for _, pack := range g.packs {
		if pack.Threshold > maxThreshold {
			maxThreshold = pack.Threshold
		}
	}
	if maxThreshold > 0 {
		return maxThreshold
	}
	return 0.7
}

func (g *InjectionGuard) evaluateInternal(input string) Evaluation {
	score, hits := g.evaluatePacks(input)
	return Evaluation{Score: score, Hits: hits, Threshold: g.threshold()}
}

func (g *InjectionGuard) evaluatePacks(text string) (float64, []Match) {
	total := 0.0
	hits := make([]Match, 0)
	textLower := strings.ToLower(text)

	for _, pack := range g.packs {
		for _, rule := range pack.RegexRules {
			if rule.Pattern.MatchString(text) {
				total += rule.Weight
				hits = append(hits, Match{Rule: rule.ID, Weight: rule.Weight})
			}
		}

		if pack.PhraseMatcher == nil {
			continue
		}
		matches := pack.PhraseMatcher.MatchThreadSafe([]byte(textLower))
		for _, index := range matches {
			if index < 0 || index >= len(pack.Phrases) {
				continue
			}
			phrase := pack.Phrases[index]
			weight := pack.PhraseWeights[phrase]
			if weight <= 0 {
				continue
			}
			total += weight
			hits = append(hits, Match{Rule: "phrase:" + phrase, Weight: weight})
		}
	}

	return total, hits
}

func trimForLog(value string) string {
	value = strings.TrimSpace(value)
	if len(value) <= 50 {
		return value
	}
	return value[:50]
}

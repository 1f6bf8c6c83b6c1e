package metrics

import (
	"sync/atomic"
	"time"

	"github.com/campaignai/campaign-planner-go/internal/llm"
)

// Store 는 LLM 호출 통계를 저장한다.
type Store struct {
	totalCalls        int64
	totalErrors       int64
	totalFallbacks    int64
	totalInputTokens  int64
	totalOutputTokens int64
	totalDurationMs   int64
}

// NewStore 는 통계 저장소를 생성한다.
func NewStore() *Store {
	return &Store{}
}

// RecordSuccess 는 성공 호출 통계를 기록한다.
func (s *Store) RecordSuccess(duration time.Duration, usage llm.Usage) {
	atomic.AddInt64(&s.totalCalls, 1)
	atomic.AddInt64(&s.totalInputTokens, int64(usage.InputTokens))
	atomic.AddInt64(&s.totalOutputTokens, int64(usage.OutputTokens))
	atomic.AddInt64(&s.totalDurationMs, duration.Milliseconds())
}

// RecordError 는 실패 호출 통계를 기록한다.
func (s *Store) RecordError(duration time.Duration) {
	atomic.AddInt64(&s.totalCalls, 1)
	atomic.AddInt64(&s.totalErrors, 1)
	atomic.AddInt64(&s.totalDurationMs, duration.Milliseconds())
}

// RecordFallback 는 폴백 데이터로 응답한 횟수를 기록한다.
func (s *Store) RecordFallback() {
	atomic.AddInt64(&s.totalFallbacks, 1)
}

// UsageTotals 는 누적 사용량을 반환한다.
func (s *Store) UsageTotals() llm.Usage {
	input := atomic.LoadInt64(&s.totalInputTokens)
	output := atomic.LoadInt64(&s.totalOutputTokens)
	return llm.Usage{
		InputTokens:  int(input),
		OutputTokens: int(output),
		TotalTokens:  int(input + output),
	}
}

// Snapshot 는 통계 스냅샷을 반환한다.
func (s *Store) Snapshot() map[string]float64 {
	totalCalls := atomic.LoadInt64(&s.totalCalls)
	totalErrors := atomic.LoadInt64(&s.totalErrors)
	totalFallbacks := atomic.LoadInt64(&s.totalFallbacks)
	input := atomic.LoadInt64(&s.totalInputTokens)
	output := atomic.LoadInt64(&s.totalOutputTokens)
	durationMs := atomic.LoadInt64(&s.totalDurationMs)

	avgDuration := 0.0
	if totalCalls > 0 {
		avgDuration = float64(durationMs) / float64(totalCalls)
	}

	return map[string]float64{
		"total_calls":         float64(totalCalls),
		"total_errors":        float64(totalErrors),
		"total_fallbacks":     float64(totalFallbacks),
		"total_input_tokens":  float64(input),
		"total_output_tokens": float64(output),
		"total_tokens":        float64(input + output),
		"total_duration_ms":   float64(durationMs),
		"avg_duration_ms":     avgDuration,
	}
}

package usage

import (
	"context"
	"log/slog"
	"time"
)

// Recorder 는 요청별 토큰 사용량을 저장한다.
type Recorder struct {
	repo   *Repository
	logger *slog.Logger
}

// NewRecorder 는 Recorder를 생성한다.
func NewRecorder(repo *Repository, logger *slog.Logger) *Recorder {
	return &Recorder{
		repo:   repo,
		logger: logger,
	}
}

// Record 는 1회 요청의 토큰 사용량을 기록한다.
// 사용량 DB가 비활성이면 조용히 무시한다.
func (r *Recorder) Record(ctx context.Context, inputTokens int64, outputTokens int64) {
	if r == nil || r.repo == nil || !r.repo.IsEnabled() {
		return
	}
	if inputTokens <= 0 && outputTokens <= 0 {
		return
	}

	if err := r.repo.RecordUsage(ctx, inputTokens, outputTokens, 1, time.Time{}); err != nil {
		if r.logger != nil {
			r.logger.Warn("usage_db_save_failed", "err", err)
		}
	}
}

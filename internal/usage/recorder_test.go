package usage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/campaignai/campaign-planner-go/internal/config"
)

func TestRepositoryDisabled(t *testing.T) {
	repo := NewRepository(&config.Config{}, nil)
	if repo.IsEnabled() {
		t.Fatalf("expected disabled repository")
	}

	err := repo.RecordUsage(context.Background(), 10, 20, 1, time.Time{})
	if !errors.Is(err, ErrUsageDisabled) {
		t.Fatalf("expected ErrUsageDisabled, got %v", err)
	}

	if _, err := repo.GetDailyUsage(context.Background(), time.Time{}); !errors.Is(err, ErrUsageDisabled) {
		t.Fatalf("expected ErrUsageDisabled, got %v", err)
	}
}

func TestRecorderSkipsWhenDisabled(t *testing.T) {
	recorder := NewRecorder(NewRepository(&config.Config{}, nil), nil)
	// 비활성 상태에서는 DB 연결 시도 없이 반환해야 한다.
	recorder.Record(context.Background(), 10, 20)

	var nilRecorder *Recorder
	nilRecorder.Record(context.Background(), 10, 20)
}

func TestRecordUsageSkipsZero(t *testing.T) {
	repo := NewRepository(&config.Config{}, nil)
	if err := repo.RecordUsage(context.Background(), 0, 0, 0, time.Time{}); err != nil {
		t.Fatalf("zero usage should be a no-op, got %v", err)
	}
}

func TestDailyUsageTotal(t *testing.T) {
	usage := DailyUsage{InputTokens: 10, OutputTokens: 25}
	if usage.TotalTokens() != 35 {
		t.Fatalf("expected 35, got %d", usage.TotalTokens())
	}
}

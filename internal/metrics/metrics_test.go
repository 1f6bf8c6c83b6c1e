package metrics

import (
	"testing"
	"time"

	"github.com/campaignai/campaign-planner-go/internal/llm"
)

func TestStoreRecording(t *testing.T) {
	store := NewStore()

	store.RecordSuccess(100*time.Millisecond, llm.Usage{InputTokens: 10, OutputTokens: 20})
	store.RecordError(50 * time.Millisecond)
	store.RecordFallback()

	snapshot := store.Snapshot()
	if snapshot["total_calls"] != 2 {
		t.Fatalf("expected 2 calls, got %v", snapshot["total_calls"])
	}
	if snapshot["total_errors"] != 1 {
		t.Fatalf("expected 1 error, got %v", snapshot["total_errors"])
	}
	if snapshot["total_fallbacks"] != 1 {
		t.Fatalf("expected 1 fallback, got %v", snapshot["total_fallbacks"])
	}
	if snapshot["total_tokens"] != 30 {
		t.Fatalf("expected 30 tokens, got %v", snapshot["total_tokens"])
	}
	if snapshot["total_duration_ms"] != 150 {
		t.Fatalf("expected 150ms, got %v", snapshot["total_duration_ms"])
	}
	if snapshot["avg_duration_ms"] != 75 {
		t.Fatalf("expected avg 75ms, got %v", snapshot["avg_duration_ms"])
	}

	usage := store.UsageTotals()
	if usage.TotalTokens != 30 {
		t.Fatalf("expected usage total 30, got %d", usage.TotalTokens)
	}
}

package httperror

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/campaignai/campaign-planner-go/internal/domain/campaign"
	"github.com/campaignai/campaign-planner-go/internal/gemini"
	"github.com/campaignai/campaign-planner-go/internal/guard"
	"github.com/campaignai/campaign-planner-go/internal/llmparse"
	"github.com/campaignai/campaign-planner-go/internal/store"
)

func TestFromErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   ErrorCode
		wantStatus int
	}{
		{"guard blocked", &guard.BlockedError{Score: 0.9, Threshold: 0.8}, ErrorCodeGuardBlocked, http.StatusBadRequest},
		{"campaign not found", store.ErrCampaignNotFound, ErrorCodeCampaignNotFound, http.StatusNotFound},
		{"personas not found", store.ErrPersonasNotFound, ErrorCodeCampaignNotFound, http.StatusNotFound},
		{"campaign exists", store.ErrCampaignExists, ErrorCodeCampaignExists, http.StatusConflict},
		{"status regression", campaign.ErrStatusTransition, ErrorCodeCampaignStatus, http.StatusConflict},
		{"store disabled", store.ErrStoreDisabled, ErrorCodeStore, http.StatusServiceUnavailable},
		{"llm not configured", gemini.ErrNotConfigured, ErrorCodeLLMNotConfigured, http.StatusServiceUnavailable},
		{"llm unavailable", gemini.ErrModelUnavailable, ErrorCodeLLM, http.StatusBadGateway},
		{"wrapped llm unavailable", fmt.Errorf("chat: %w", gemini.ErrModelUnavailable), ErrorCodeLLM, http.StatusBadGateway},
		{"timeout", context.DeadlineExceeded, ErrorCodeLLMTimeout, http.StatusGatewayTimeout},
		{"no payload", llmparse.ErrNoPayload, ErrorCodeLLMParsing, http.StatusBadGateway},
		{"malformed payload", llmparse.ErrMalformedPayload, ErrorCodeLLMParsing, http.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), ErrorCodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			apiErr := FromError(tc.err)
			if apiErr == nil {
				t.Fatalf("expected error mapping")
			}
			if apiErr.Code != tc.wantCode {
				t.Fatalf("expected code %s, got %s", tc.wantCode, apiErr.Code)
			}
			if apiErr.Status != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, apiErr.Status)
			}
		})
	}
}

func TestGuardBlockedCarriesRule(t *testing.T) {
	apiErr := FromError(&guard.BlockedError{Score: 0.9, Threshold: 0.7, Rule: "ignore_instructions"})
	if apiErr == nil || apiErr.Code != ErrorCodeGuardBlocked {
		t.Fatalf("expected guard blocked mapping, got %+v", apiErr)
	}
	if apiErr.Details["rule"] != "ignore_instructions" {
		t.Fatalf("expected rule detail, got %+v", apiErr.Details)
	}

	apiErr = FromError(&guard.BlockedError{Score: 0.9, Threshold: 0.7})
	if _, ok := apiErr.Details["rule"]; ok {
		t.Fatalf("rule detail should be absent when no rule matched: %+v", apiErr.Details)
	}
}

func TestFromErrorNil(t *testing.T) {
	if FromError(nil) != nil {
		t.Fatalf("nil error must map to nil")
	}
}

func TestFromErrorPassthrough(t *testing.T) {
	original := NewInvalidInput("bad filter")
	mapped := FromError(fmt.Errorf("wrap: %w", original))
	if mapped != original {
		t.Fatalf("expected wrapped *Error to be unwrapped")
	}
}

func TestResponseIncludesRequestID(t *testing.T) {
	status, payload := Response(NewMissingField("id"), "req-1")
	if status != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", status)
	}
	if payload.RequestID == nil || *payload.RequestID != "req-1" {
		t.Fatalf("expected request id")
	}
	if payload.ErrorCode != string(ErrorCodeMissingField) {
		t.Fatalf("unexpected code: %s", payload.ErrorCode)
	}
}

func TestNewMissingField(t *testing.T) {
	err := NewMissingField("query")
	if err.Status != http.StatusBadRequest {
		t.Fatalf("expected 400 status, got: %d", err.Status)
	}
	if err.Code != ErrorCodeMissingField {
		t.Fatalf("expected missing field error code")
	}
	if err.Details["field"] != "query" {
		t.Fatalf("expected field detail, got %+v", err.Details)
	}
}

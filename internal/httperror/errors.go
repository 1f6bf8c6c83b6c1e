package httperror

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/campaignai/campaign-planner-go/internal/domain/campaign"
	"github.com/campaignai/campaign-planner-go/internal/gemini"
	"github.com/campaignai/campaign-planner-go/internal/guard"
	"github.com/campaignai/campaign-planner-go/internal/llmparse"
	"github.com/campaignai/campaign-planner-go/internal/store"
)

// ErrorCode 는 API 오류 코드다.
type ErrorCode string

const (
	// ErrorCodeInternal 는 내부 오류 코드다.
	ErrorCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrorCodeValidation 는 검증 오류 코드다.
	ErrorCodeValidation ErrorCode = "VALIDATION_ERROR"
	// ErrorCodeUnauthorized 는 인증 오류 코드다.
	ErrorCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	// ErrorCodeHTTPRateLimit 는 요청 제한 오류 코드다.
	ErrorCodeHTTPRateLimit ErrorCode = "HTTP_RATE_LIMIT"
	// ErrorCodeLLM 는 LLM 오류 코드다.
	ErrorCodeLLM ErrorCode = "LLM_ERROR"
	// ErrorCodeLLMNotConfigured 는 LLM 미설정 코드다.
	ErrorCodeLLMNotConfigured ErrorCode = "LLM_NOT_CONFIGURED"
	// ErrorCodeLLMTimeout 는 LLM 타임아웃 코드다.
	ErrorCodeLLMTimeout ErrorCode = "LLM_TIMEOUT"
	// ErrorCodeLLMParsing 는 LLM 파싱 오류 코드다.
	ErrorCodeLLMParsing ErrorCode = "LLM_PARSING_ERROR"
	// ErrorCodeCampaignNotFound 는 캠페인 미존재 코드다.
	ErrorCodeCampaignNotFound ErrorCode = "CAMPAIGN_NOT_FOUND"
	// ErrorCodeCampaignExists 는 캠페인 중복 코드다.
	ErrorCodeCampaignExists ErrorCode = "CAMPAIGN_EXISTS"
	// ErrorCodeCampaignStatus 는 상태 전이 오류 코드다.
	ErrorCodeCampaignStatus ErrorCode = "CAMPAIGN_STATUS"
	// ErrorCodeStore 는 저장소 오류 코드다.
	ErrorCodeStore ErrorCode = "STORE_ERROR"
	// ErrorCodeGuardBlocked 는 가드 차단 코드다.
	ErrorCodeGuardBlocked ErrorCode = "GUARD_BLOCKED"
	// ErrorCodeInvalidInput 는 입력 오류 코드다.
	ErrorCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrorCodeMissingField 는 필드 누락 코드다.
	ErrorCodeMissingField ErrorCode = "MISSING_FIELD"
)

// ErrorResponse 는 API 오류 응답 본문이다.
type ErrorResponse struct {
	ErrorCode string         `json:"error_code"`
	ErrorType string         `json:"error_type"`
	Message   string         `json:"message"`
	RequestID *string        `json:"request_id"`
	Details   map[string]any `json:"details"`
}

// Error 는 내부 표준 오류 타입이다.
type Error struct {
	Code    ErrorCode
	Status  int
	Type    string
	Message string
	Details map[string]any
}

// Error 는 오류 메시지를 반환한다.
func (e *Error) Error() string {
	return e.Message
}

// Response 는 오류를 HTTP 응답으로 변환한다.
func Response(err error, requestID string) (int, ErrorResponse) {
	apiErr := FromError(err)
	if apiErr == nil {
		apiErr = NewInternalError("unknown error")
	}

	var requestIDPtr *string
	if requestID != "" {
		requestIDPtr = &requestID
	}

	return apiErr.Status, ErrorResponse{
		ErrorCode: string(apiErr.Code),
		ErrorType: apiErr.Type,
		Message:   apiErr.Message,
		RequestID: requestIDPtr,
		Details:   apiErr.Details,
	}
}

// FromError 는 오류를 내부 오류 타입으로 변환한다.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var blocked *guard.BlockedError
	if errors.As(err, &blocked) {
		return NewGuardBlocked(blocked.Score, blocked.Threshold, blocked.Rule)
	}

	if errors.Is(err, store.ErrCampaignNotFound) || errors.Is(err, store.ErrPersonasNotFound) {
		return NewCampaignNotFound()
	}

	if errors.Is(err, store.ErrCampaignExists) {
		return &Error{
			Code:    ErrorCodeCampaignExists,
			Status:  http.StatusConflict,
			Type:    "CampaignExistsError",
			Message: "Campaign already exists",
		}
	}

	if errors.Is(err, campaign.ErrStatusTransition) {
		return &Error{
			Code:    ErrorCodeCampaignStatus,
			Status:  http.StatusConflict,
			Type:    "CampaignStatusError",
			Message: "Campaign status cannot move backwards",
		}
	}

	if errors.Is(err, store.ErrStoreDisabled) {
		return &Error{
			Code:    ErrorCodeStore,
			Status:  http.StatusServiceUnavailable,
			Type:    "StoreError",
			Message: "Campaign store is not available",
		}
	}

	if errors.Is(err, gemini.ErrNotConfigured) {
		return &Error{
			Code:    ErrorCodeLLMNotConfigured,
			Status:  http.StatusServiceUnavailable,
			Type:    "LLMNotConfiguredError",
			Message: "Gemini API key is not configured",
		}
	}

	if errors.Is(err, gemini.ErrModelUnavailable) {
		return NewLLMError("LLM model unavailable", http.StatusBadGateway)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewLLMTimeoutError("LLM request timed out")
	}

	if errors.Is(err, llmparse.ErrNoPayload) || errors.Is(err, llmparse.ErrMalformedPayload) {
		return &Error{
			Code:    ErrorCodeLLMParsing,
			Status:  http.StatusBadGateway,
			Type:    "LLMParsingError",
			Message: "Failed to parse LLM response",
		}
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return NewValidationError(err)
	}

	return NewInternalError(err.Error())
}

// NewInternalError 는 내부 오류를 생성한다.
func NewInternalError(message string) *Error {
	return &Error{
		Code:    ErrorCodeInternal,
		Status:  http.StatusInternalServerError,
		Type:    "InternalError",
		Message: message,
		Details: nil,
	}
}

// NewValidationError 는 검증 오류를 생성한다.
func NewValidationError(err error) *Error {
	return &Error{
		Code:    ErrorCodeValidation,
		Status:  http.StatusUnprocessableEntity,
		Type:    "ValidationError",
		Message: "Input validation failed",
		Details: validationDetails(err),
	}
}

// NewMissingField 는 누락 필드 오류를 생성한다.
func NewMissingField(field string) *Error {
	return &Error{
		Code:    ErrorCodeMissingField,
		Status:  http.StatusBadRequest,
		Type:    "MissingFieldError",
		Message: fmt.Sprintf("Field '%s' required", field),
		Details: map[string]any{"field": field},
	}
}

// NewInvalidInput 는 입력 오류를 생성한다.
func NewInvalidInput(message string) *Error {
	return &Error{
		Code:    ErrorCodeInvalidInput,
		Status:  http.StatusBadRequest,
		Type:    "InvalidInputError",
		Message: message,
		Details: nil,
	}
}

// NewUnauthorized 는 인증 오류를 생성한다.
func NewUnauthorized(details map[string]any) *Error {
	return &Error{
		Code:    ErrorCodeUnauthorized,
		Status:  http.StatusUnauthorized,
		Type:    "UnauthorizedError",
		Message: "Invalid API key",
		Details: details,
	}
}

// NewRateLimitExceeded 는 요청 제한 오류를 생성한다.
func NewRateLimitExceeded(details map[string]any) *Error {
	return &Error{
		Code:    ErrorCodeHTTPRateLimit,
		Status:  http.StatusTooManyRequests,
		Type:    "HTTPRateLimitExceededError",
		Message: "Rate limit exceeded",
		Details: details,
	}
}

// NewGuardBlocked 는 가드 차단 오류를 생성한다. rule 이 있으면 상세에 싣는다.
func NewGuardBlocked(score float64, threshold float64, rule string) *Error {
	details := map[string]any{"score": score, "threshold": threshold}
	if rule != "" {
		details["rule"] = rule
	}
	return &Error{
		Code:    ErrorCodeGuardBlocked,
		Status:  http.StatusBadRequest,
		Type:    "GuardBlockedError",
		Message: fmt.Sprintf("Input blocked by injection guard (score=%.2f, threshold=%.2f)", score, threshold),
		Details: details,
	}
}

// NewCampaignNotFound 는 캠페인 미존재 오류를 생성한다.
func NewCampaignNotFound() *Error {
	return &Error{
		Code:    ErrorCodeCampaignNotFound,
		Status:  http.StatusNotFound,
		Type:    "CampaignNotFoundError",
		Message: "Campaign not found",
	}
}

// NewLLMTimeoutError 는 LLM 타임아웃 오류를 생성한다.
func NewLLMTimeoutError(message string) *Error {
	return &Error{
		Code:    ErrorCodeLLMTimeout,
		Status:  http.StatusGatewayTimeout,
		Type:    "LLMTimeoutError",
		Message: message,
		Details: nil,
	}
}

// NewLLMError 는 LLM 오류를 생성한다.
func NewLLMError(message string, status int) *Error {
	return &Error{
		Code:    ErrorCodeLLM,
		Status:  status,
		Type:    "LLMError",
		Message: message,
		Details: nil,
	}
}

// FieldError 는 필드 오류 상세 정보다.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
}

func validationDetails(err error) map[string]any {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]FieldError, 0, len(validationErrors))
		for _, validationErr := range validationErrors {
			fields = append(fields, FieldError{
				Field:   validationErr.Field(),
				Message: validationErr.Error(),
				Value:   validationErr.Value(),
			})
		}
		return map[string]any{"errors": fields}
	}

	return map[string]any{
		"errors": []FieldError{
			{
				Field:   "body",
				Message: err.Error(),
				Value:   nil,
			},
		},
	}
}

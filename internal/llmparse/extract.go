// Package llmparse 는 모델 응답 텍스트에서 JSON 페이로드를 추출/해석한다.
package llmparse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

var (
	// ErrNoPayload 는 응답에 JSON 객체가 전혀 없을 때 반환된다.
	ErrNoPayload = errors.New("no json payload in response")
	// ErrMalformedPayload 는 JSON 추출은 되었으나 해석에 실패했을 때 반환된다.
	ErrMalformedPayload = errors.New("malformed json payload")
)

// ExtractObject 는 모델 응답에서 첫 번째 최상위 JSON 객체를 추출해 맵으로 해석한다.
// 모델이 코드 펜스나 설명 문장으로 JSON을 감싸는 경우가 많으므로
// 정규식 대신 중괄호 균형 스캐너로 객체 경계를 찾는다.
func ExtractObject(text string) (map[string]any, error) {
	raw, err := ExtractRaw(text)
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return payload, nil
}

// ExtractRaw 는 응답 텍스트에서 첫 번째 균형 잡힌 JSON 객체 구간을 반환한다.
// 문자열 리터럴 내부의 중괄호와 이스케이프를 구분해 센다.
func ExtractRaw(text string) (string, error) {
	trimmed := stripCodeFence(text)

	start := strings.IndexByte(trimmed, '{')
	if start < 0 {
		return "", ErrNoPayload
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(trimmed); i++ {
		ch := trimmed[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return trimmed[start : i+1], nil
			}
		}
	}

	// 여는 중괄호는 있으나 닫히지 않음: 잘린 응답으로 본다.
	return "", fmt.Errorf("%w: unbalanced braces", ErrMalformedPayload)
}

// stripCodeFence 는 ```json ... ``` 형태의 코드 펜스를 벗겨낸다.
// 펜스가 없으면 원문을 그대로 반환한다.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	body := trimmed[3:]
	if newline := strings.IndexByte(body, '\n'); newline >= 0 {
		// 언어 태그(json 등)가 붙은 첫 줄은 버린다.
		firstLine := strings.TrimSpace(body[:newline])
		if firstLine == "" || isFenceTag(firstLine) {
			body = body[newline+1:]
		}
	}
	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}

func isFenceTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

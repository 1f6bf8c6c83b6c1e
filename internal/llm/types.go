package llm

// HistoryEntry: 대화 히스토리 항목입니다.
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Usage: 토큰 사용량 정보를 담습니다.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// ChatResult: LLM 응답 텍스트와 사용량을 담습니다.
type ChatResult struct {
	Text  string
	Usage Usage
	Model string
}

package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestIDHeader 는 요청 ID 헤더 키다.
const RequestIDHeader = "X-Request-ID"

const (
	requestIDKey = "request_id"

	// 플래너가 발급한 ID 임을 표시하는 접두어. 대시보드 쪽 ID 와 구분된다.
	requestIDPrefix = "plnr-"

	// 클라이언트가 보낸 ID 허용 최대 길이. 넘으면 새로 발급한다.
	maxRequestIDLength = 64
)

// RequestID 는 요청 ID를 부여하는 미들웨어다.
// 클라이언트가 보낸 값이 정상이면 그대로 쓰고, 비었거나 과도하게 길면 새로 만든다.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(RequestIDHeader))
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = generateRequestID()
		}
		c.Set(requestIDKey, requestID)

		c.Next()

		c.Header(RequestIDHeader, requestID)
	}
}

// GetRequestID: 컨텍스트의 요청 ID를 반환합니다.
func GetRequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	requestID, ok := value.(string)
	if !ok {
		return ""
	}
	return requestID
}

func generateRequestID() string {
	bytes := make([]byte, 12)
	if _, err := rand.Read(bytes); err != nil {
		// rand 실패는 사실상 일어나지 않지만, 빈 ID 로 로그를 더럽히지 않는다.
		return fmt.Sprintf("%s%x", requestIDPrefix, time.Now().UnixNano())
	}
	return requestIDPrefix + hex.EncodeToString(bytes)
}

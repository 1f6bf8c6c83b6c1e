package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campaignai/campaign-planner-go/internal/config"
	"github.com/campaignai/campaign-planner-go/internal/httperror"
)

const (
	headerAPIKey        = "X-API-Key"
	headerAuthorization = "Authorization"
	bearerScheme        = "bearer "
)

// APIKeyAuth 는 API 키 인증 미들웨어다.
// 키를 설정하지 않으면 개방 모드로 동작한다. 로컬 대시보드 개발 기본값이다.
func APIKeyAuth(cfg *config.Config) gin.HandlerFunc {
	expected := ""
	if cfg != nil {
		expected = strings.TrimSpace(cfg.HTTPAuth.APIKey)
	}
	open := expected == ""

	return func(c *gin.Context) {
		if open || !isProtectedPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		if !keyMatches(clientAPIKey(c), expected) {
			details := map[string]any{"path": c.Request.URL.Path}
			status, payload := httperror.Response(httperror.NewUnauthorized(details), GetRequestID(c))
			c.AbortWithStatusJSON(status, payload)
			return
		}

		c.Next()
	}
}

// clientAPIKey 는 X-API-Key 우선, 없으면 Authorization Bearer 토큰을 읽는다.
func clientAPIKey(c *gin.Context) string {
	if c == nil {
		return ""
	}

	if value := strings.TrimSpace(c.GetHeader(headerAPIKey)); value != "" {
		return value
	}

	return cutBearer(c.GetHeader(headerAuthorization))
}

func cutBearer(authValue string) string {
	authValue = strings.TrimSpace(authValue)
	if len(authValue) < len(bearerScheme) {
		return ""
	}
	if !strings.EqualFold(authValue[:len(bearerScheme)], bearerScheme) {
		return ""
	}
	return strings.TrimSpace(authValue[len(bearerScheme):])
}

func keyMatches(provided string, expected string) bool {
	if provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}

// isProtectedPath: /api/ 아래만 보호한다. /health 는 무인증이다.
func isProtectedPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}

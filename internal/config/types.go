package config

import (
	"net"
	"net/url"
	"strconv"
	"strings"
)

// GeminiConfig: Gemini 모델 설정입니다.
type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float64
	MaxOutputTokens int
	TimeoutSeconds  int
}

// placeholderKeys 는 설정되지 않은 것으로 간주하는 자리표시자 값 목록이다.
var placeholderKeys = map[string]struct{}{
	"changeme":            {},
	"your-api-key":        {},
	"your_api_key":        {},
	"your-gemini-api-key": {},
	"api-key-here":        {},
	// 유출되어 폐기된 데모 키. 복붙된 채로 배포되는 사고를 막는다.
	"aizasychiflkgjl2-jk0c1djjtawnb4vg6xihmq": {},
}

// IsConfigured: API 키가 실제 값으로 설정되었는지 확인한다.
// 빈 값과 자리표시자 값은 전송 오류와 구분되는 설정 오류로 처리해야 한다.
func (g GeminiConfig) IsConfigured() bool {
	key := strings.TrimSpace(g.APIKey)
	if key == "" {
		return false
	}
	_, placeholder := placeholderKeys[strings.ToLower(key)]
	return !placeholder
}

// GuardConfig: 채팅 입력 검사 설정입니다.
type GuardConfig struct {
	Enabled   bool
	Threshold float64
}

// LoggingConfig: 로깅 설정입니다.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig: HTTP 서버 설정입니다.
type HTTPConfig struct {
	Host         string
	Port         int
	HTTP2Enabled bool
}

// HTTPAuthConfig: API 키 인증 설정입니다.
type HTTPAuthConfig struct {
	APIKey string
}

// HTTPRateLimitConfig: 요청 제한 설정입니다.
type HTTPRateLimitConfig struct {
	RequestsPerMinute int
	CacheSize         int
	CacheTTLSeconds   int
}

// StoreConfig: 캠페인 저장소 연결 설정입니다.
type StoreConfig struct {
	URL          string
	Enabled      bool
	Required     bool
	DisableCache bool
	Compress     bool
}

// DatabaseConfig: 사용량 DB 연결 설정입니다.
type DatabaseConfig struct {
	Host                   string
	Port                   int
	Name                   string
	User                   string
	Password               string
	MinPool                int
	MaxPool                int
	ConnMaxLifetimeMinutes int
	ConnMaxIdleTimeMinutes int
	UsageEnabled           bool
}

// DSN: DB 접속 문자열을 반환합니다.
func (d DatabaseConfig) DSN() string {
	host := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	u := &url.URL{
		Scheme: "postgresql",
		Host:   host,
		Path:   "/" + d.Name,
	}
	if d.Password == "" {
		u.User = url.User(d.User)
	} else {
		u.User = url.UserPassword(d.User, d.Password)
	}
	return u.String()
}

// Config: 애플리케이션 전체 설정입니다.
type Config struct {
	Gemini        GeminiConfig
	Guard         GuardConfig
	Logging       LoggingConfig
	HTTP          HTTPConfig
	HTTPAuth      HTTPAuthConfig
	HTTPRateLimit HTTPRateLimitConfig
	Store         StoreConfig
	Database      DatabaseConfig
}

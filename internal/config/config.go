// 환경변수 기반 설정 로더
//
// 환경변수:
//   - AI_PROVIDER: groq | gemini (default: groq)
//   - GROQ_API_KEY, GROQ_BASE_URL, GROQ_MODEL
//   - GEMINI_API_KEY, GEMINI_MODEL
//   - AI_TIMEOUT: 업스트림 호출 타임아웃 (default: 30s)
//   - HOST (default: 0.0.0.0), PORT (default: 5050)
//   - CORS_ALLOWED_ORIGINS (default: *)
//   - LOG_LEVEL (default: info)

package config

import (
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

type Config struct {
	Server   ServerConfig
	Provider string
	Groq     GroqConfig
	Gemini   GeminiConfig
	Timeout  time.Duration
	LogLevel string
}

type ServerConfig struct {
	Host           string
	Port           string
	AllowedOrigins []string
}

type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Host:           getenv("HOST", "0.0.0.0"),
			Port:           getenv("PORT", "5050"),
			AllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Provider: strings.ToLower(getenv("AI_PROVIDER", ProviderGroq)),
		Groq: GroqConfig{
			APIKey:  strings.TrimSpace(os.Getenv("GROQ_API_KEY")),
			BaseURL: getenv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			Model:   getenv("GROQ_MODEL", "llama3-8b-8192"),
		},
		Gemini: GeminiConfig{
			APIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			Model:  getenv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		Timeout:  getDuration("AI_TIMEOUT", 30*time.Second),
		LogLevel: getenv("LOG_LEVEL", "info"),
	}
}

// Addr returns the listen address, e.g. 0.0.0.0:5050.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Model 은 선택된 provider의 모델 이름
func (c Config) Model() string {
	if c.Provider == ProviderGemini {
		return c.Gemini.Model
	}
	return c.Groq.Model
}

func getenv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

// "30s" 형식과 초 단위 정수("30") 모두 허용
func getDuration(key string, fallback time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	if d, err := time.ParseDuration(val); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(val); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

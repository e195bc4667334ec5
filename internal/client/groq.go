// Groq (OpenAI 호환) chat completions API와 HTTP 통신하는 클라이언트 정의
//
// 환경변수:
//   - GROQ_API_KEY: Bearer 토큰
//   - GROQ_BASE_URL: API URL (예: https://api.groq.com/openai/v1)
//   - GROQ_MODEL: 모델 이름 (예: llama3-8b-8192)

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/justice-chain/classifier/internal/config"
)

const (
	// 분류 라벨 한 단어만 받으면 되므로 짧게 제한
	completionMaxTokens = 10
	defaultTimeout      = 30 * time.Second
)

// GroqClient 구조체 정의
type GroqClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest 구조체 정의
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ChatCompletionResponse 구조체 정의
type ChatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// StatusError is returned when the upstream answers with a non-200 status.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error: %d", e.Provider, e.StatusCode)
}

// GroqClient 객체 생성
func NewGroqClient(cfg config.GroqConfig, timeout time.Duration) (*GroqClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing GROQ_API_KEY")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &GroqClient{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

func (c *GroqClient) Model() string {
	return c.model
}

// POST /chat/completions 단일 턴 요청 후 choices[0].message.content 반환 (동기)
func (c *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	req := ChatCompletionRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0,
		MaxTokens:   completionMaxTokens,
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request to groq: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{Provider: "Groq", StatusCode: resp.StatusCode, Body: string(body)}
	}

	var completion ChatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("empty completion result")
	}

	return completion.Choices[0].Message.Content, nil
}

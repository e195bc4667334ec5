package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/justice-chain/classifier/internal/config"
	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, cfg config.GeminiConfig, timeout time.Duration) (*GeminiClient, error) {
	return newGeminiClient(ctx, cfg, timeout, "")
}

// baseURL 은 테스트에서만 지정
func newGeminiClient(ctx context.Context, cfg config.GeminiConfig, timeout time.Duration, baseURL string) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, err
	}
	return &GeminiClient{client: client, model: cfg.Model}, nil
}

func (c *GeminiClient) Model() string {
	return c.model
}

func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	res, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0),
		MaxOutputTokens: completionMaxTokens,
	})
	if err != nil {
		return "", err
	}
	if res == nil || len(res.Candidates) == 0 {
		return "", fmt.Errorf("empty completion result")
	}
	return res.Text(), nil
}

package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/justice-chain/classifier/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroqClientRequiresKey(t *testing.T) {
	_, err := NewGroqClient(config.GroqConfig{BaseURL: "http://localhost"}, time.Second)
	require.Error(t, err)
}

func TestGroqComplete(t *testing.T) {
	var got ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/openai/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":" High \n"}}]}`))
	}))
	defer srv.Close()

	c, err := NewGroqClient(config.GroqConfig{APIKey: "test-key", BaseURL: srv.URL + "/openai/v1/", Model: "llama3-8b-8192"}, time.Second)
	require.NoError(t, err)

	reply, err := c.Complete(context.Background(), "classify this")
	require.NoError(t, err)
	assert.Equal(t, " High \n", reply)

	assert.Equal(t, "llama3-8b-8192", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "classify this", got.Messages[0].Content)
	assert.Zero(t, got.Temperature)
	assert.Equal(t, 10, got.MaxTokens)
}

func TestGroqCompleteStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":"overloaded"}`))
	}))
	defer srv.Close()

	c, err := NewGroqClient(config.GroqConfig{APIKey: "k", BaseURL: srv.URL, Model: "m"}, time.Second)
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "p")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, "Groq API error: 503", err.Error())
}

func TestGroqCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c, err := NewGroqClient(config.GroqConfig{APIKey: "k", BaseURL: srv.URL, Model: "m"}, time.Second)
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "p")
	require.Error(t, err)
}

func TestGroqCompleteTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Low"}}]}`))
	}))
	defer srv.Close()

	c, err := NewGroqClient(config.GroqConfig{APIKey: "k", BaseURL: srv.URL, Model: "m"}, 20*time.Millisecond)
	require.NoError(t, err)

	_, err = c.Complete(context.Background(), "p")
	require.Error(t, err)
}

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, status int, body any) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func anthropicAt(t *testing.T, url string) *AnthropicProvider {
	t.Helper()
	p, err := NewAnthropicProvider(KeyModel{APIKey: "test-key", Model: "claude-haiku"},
		option.WithBaseURL(url), option.WithMaxRetries(0))
	require.NoError(t, err)
	return p
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func TestAnthropicProvider_Structured(t *testing.T) {
	url := serve(t, http.StatusOK, anthropicMessage(`{"story":"Seven birds sat","first":7}`, "end_turn"))
	p := anthropicAt(t, url)

	resp, err := p.Generate(context.Background(), UserRequest("Retell.", "7 + 3", testSchema(), 200))
	require.NoError(t, err)
	assert.Equal(t, 80, resp.Usage.TotalTokens)
	assert.Equal(t, "end", resp.StopReason)
	assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())
}

func TestAnthropicProvider_SchemaMismatch(t *testing.T) {
	url := serve(t, http.StatusOK, anthropicMessage(`{"story":"no numbers"}`, "end_turn"))
	_, err := anthropicAt(t, url).Generate(context.Background(), UserRequest("", "x", testSchema(), 200))

	var inv *ErrInvalidResponse
	assert.True(t, errors.As(err, &inv), "got %v", err)
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	url := serve(t, http.StatusOK, anthropicMessage(`{"story":"Seven`, "max_tokens"))
	_, err := anthropicAt(t, url).Generate(context.Background(), UserRequest("", "x", testSchema(), 5))

	var mt *ErrMaxTokensExceeded
	assert.True(t, errors.As(err, &mt), "got %v", err)
}

func TestAnthropicProvider_ErrorStatus(t *testing.T) {
	body := map[string]any{"type": "error", "error": map[string]any{"type": "x", "message": "nope"}}

	_, err := anthropicAt(t, serve(t, http.StatusTooManyRequests, body)).Generate(context.Background(), UserRequest("", "x", nil, 10))
	var rl *ErrRateLimit
	assert.True(t, errors.As(err, &rl), "got %v", err)

	_, err = anthropicAt(t, serve(t, http.StatusInternalServerError, body)).Generate(context.Background(), UserRequest("", "x", nil, 10))
	var unavail *ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavail), "got %v", err)
}

func openAICompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAIProvider_Structured(t *testing.T) {
	url := serve(t, http.StatusOK, openAICompletion(`{"story":"Four apples","first":4}`, "stop"))
	p, err := NewOpenAIProvider(KeyModelURL{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url + "/v1"})
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), UserRequest("sys", "4 + 1", testSchema(), 200))
	require.NoError(t, err)
	assert.Equal(t, 40, resp.Usage.InputTokens)
	assert.Equal(t, 25, resp.Usage.OutputTokens)
	assert.Equal(t, "gpt-4o-mini", resp.Model)
}

func TestOpenAIProvider_Truncated(t *testing.T) {
	url := serve(t, http.StatusOK, openAICompletion(`{"story":`, "length"))
	p, err := NewOpenAIProvider(KeyModelURL{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url + "/v1"})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), UserRequest("", "x", testSchema(), 3))
	var mt *ErrMaxTokensExceeded
	assert.True(t, errors.As(err, &mt), "got %v", err)
}

func TestOpenAIProvider_RateLimited(t *testing.T) {
	url := serve(t, http.StatusTooManyRequests, map[string]any{
		"error": map[string]any{"message": "slow down", "type": "rate_limit_error"},
	})
	p, err := NewOpenAIProvider(KeyModelURL{APIKey: "k", Model: "gpt-4o-mini", BaseURL: url + "/v1"})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), UserRequest("", "x", nil, 10))
	var rl *ErrRateLimit
	assert.True(t, errors.As(err, &rl), "got %v", err)
}

func TestNewOpenRouterProvider_DefaultsBaseURL(t *testing.T) {
	_, err := NewOpenRouterProvider(KeyModelURL{})
	assert.Error(t, err)

	p, err := NewOpenRouterProvider(KeyModelURL{APIKey: "k", Model: "google/gemini-2.0-flash-exp"})
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.0-flash-exp", p.ModelID())
}

func TestGeminiSchema(t *testing.T) {
	s := geminiSchema(testSchema().Definition)
	require.Contains(t, s.Properties, "story")
	assert.Equal(t, []string{"story", "first"}, s.Required)
	assert.Equal(t, geminiTypes["integer"], s.Properties["first"].Type)
}

func TestResolveModel(t *testing.T) {
	assert.Equal(t, "claude-haiku-4-5-20251001", resolveModel("claude-haiku", anthropicAliases))
	assert.Equal(t, "gemini-2.0-flash", resolveModel("gemini-flash", geminiAliases))
	assert.Equal(t, "custom-model", resolveModel("custom-model", geminiAliases))
}

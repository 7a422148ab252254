// Package llm is a small provider abstraction over hosted language models.
// Callers send a Request with an optional JSON Schema and get back
// validated JSON.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a response for a request.
type Provider interface {
	// Generate sends req to the model. When req.Schema is set the returned
	// Content has been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model the provider is configured to call.
	ModelID() string
}

// Role is the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Request describes one generation call.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks the provider for structured JSON output.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// UserRequest builds a single-turn request.
func UserRequest(system, prompt string, schema *Schema, maxTokens int) Request {
	return Request{
		System:    system,
		Messages:  []Message{{Role: RoleUser, Content: prompt}},
		Schema:    schema,
		MaxTokens: maxTokens,
	}
}

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name is kebab-case, e.g. "story-retelling".
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model output.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is "end" or "max_tokens".
	StopReason string
}

// Decode unmarshals the response content into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Content, v); err != nil {
		return &ErrInvalidResponse{Content: r.Content, Err: err}
	}
	return nil
}

// Usage is the token count for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel maps a friendly alias to a model ID; unknown names pass
// through unchanged.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}

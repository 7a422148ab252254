package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderNone       = ""
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures a provider. Field tags follow the
// application's config file layout under the "llm" section.
type Config struct {
	Provider string `mapstructure:"provider"`

	Anthropic  KeyModel    `mapstructure:"anthropic"`
	OpenAI     KeyModelURL `mapstructure:"openai"`
	Gemini     KeyModel    `mapstructure:"gemini"`
	OpenRouter KeyModelURL `mapstructure:"openrouter"`
	Retry      RetryConfig `mapstructure:"retry"`
}

// KeyModel is an API key and model alias.
type KeyModel struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

// KeyModelURL is a KeyModel for OpenAI-compatible APIs with a base URL.
type KeyModelURL struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// RetryConfig configures exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
	Multiplier  float64       `mapstructure:"multiplier"`
}

// DefaultConfig returns a config with no provider selected. Narration is
// short, so the defaults favour small fast models.
func DefaultConfig() Config {
	return Config{
		Anthropic:  KeyModel{Model: "claude-haiku"},
		OpenAI:     KeyModelURL{Model: "gpt-4o-mini"},
		Gemini:     KeyModel{Model: "gemini-flash"},
		OpenRouter: KeyModelURL{Model: "google/gemini-2.0-flash-exp", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     3 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// Discover fills in the provider from the vendors' standard API key
// variables when cfg names none. It reports whether a provider is set.
func Discover(cfg Config) (Config, bool) {
	if cfg.Provider != ProviderNone {
		return cfg, true
	}
	probes := []struct {
		env      string
		provider string
		key      *string
	}{
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &cfg.Anthropic.APIKey},
		{"OPENAI_API_KEY", ProviderOpenAI, &cfg.OpenAI.APIKey},
		{"GEMINI_API_KEY", ProviderGemini, &cfg.Gemini.APIKey},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &cfg.OpenRouter.APIKey},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			if *p.key == "" {
				*p.key = k
			}
			return cfg, true
		}
	}
	return cfg, false
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	var key string
	switch c.Provider {
	case ProviderNone:
		return ErrNotConfigured
	case ProviderMock:
		return nil
	case ProviderAnthropic:
		key = c.Anthropic.APIKey
	case ProviderOpenAI:
		key = c.OpenAI.APIKey
	case ProviderGemini:
		key = c.Gemini.APIKey
	case ProviderOpenRouter:
		key = c.OpenRouter.APIKey
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("llm.%s.api_key is required for the %s provider", c.Provider, c.Provider)
	}
	return nil
}

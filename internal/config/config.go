// Package config loads application settings from an optional YAML file
// and REASONTREE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/reasontree/internal/llm"
	"github.com/abhisek/reasontree/internal/narrator"
	"github.com/abhisek/reasontree/internal/problemgen"
)

// EnvPrefix is prepended to every environment override, e.g.
// REASONTREE_LOG_LEVEL for log.level.
const EnvPrefix = "REASONTREE"

// Config holds all configuration for the application.
type Config struct {
	// DB is the SQLite path. Empty means the XDG data directory.
	DB string `mapstructure:"db"`

	// Tier is the default difficulty for non-interactive commands.
	Tier problemgen.Tier `mapstructure:"tier"`

	Log       LogConfig       `mapstructure:"log"`
	LLM       llm.Config      `mapstructure:"llm"`
	Narration narrator.Config `mapstructure:"narration"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`

	// File receives logs while the TUI owns the terminal. Empty means a
	// reasontree.log next to the database.
	File string `mapstructure:"file"`
}

// Load reads configuration from path, or from config.yaml in the user
// config directory or the working directory when path is empty. A missing
// default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "reasontree"))
		}
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if _, err := problemgen.ParseTier(string(cfg.Tier)); err != nil {
		return nil, fmt.Errorf("config tier: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("db", "")
	v.SetDefault("tier", string(problemgen.TierEasy))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	l := llm.DefaultConfig()
	v.SetDefault("llm.provider", l.Provider)
	for name, km := range map[string]llm.KeyModel{"anthropic": l.Anthropic, "gemini": l.Gemini} {
		v.SetDefault("llm."+name+".api_key", km.APIKey)
		v.SetDefault("llm."+name+".model", km.Model)
	}
	for name, kmu := range map[string]llm.KeyModelURL{"openai": l.OpenAI, "openrouter": l.OpenRouter} {
		v.SetDefault("llm."+name+".api_key", kmu.APIKey)
		v.SetDefault("llm."+name+".model", kmu.Model)
		v.SetDefault("llm."+name+".base_url", kmu.BaseURL)
	}
	v.SetDefault("llm.retry.max_attempts", l.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", l.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", l.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", l.Retry.Multiplier)

	n := narrator.DefaultConfig()
	v.SetDefault("narration.max_tokens", n.MaxTokens)
	v.SetDefault("narration.temperature", n.Temperature)
	v.SetDefault("narration.timeout", n.Timeout)
}

// LogFile returns the log file path, defaulting to dbPath's directory.
func (c *Config) LogFile(dbPath string) string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(filepath.Dir(dbPath), "reasontree.log")
}

// Package narrator retells story problems through a language model.
package narrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/reasontree/internal/i18n"
	"github.com/abhisek/reasontree/internal/llm"
	"github.com/abhisek/reasontree/internal/problemgen"
)

// ErrMismatch is returned when the model changed the problem's numbers.
var ErrMismatch = errors.New("narration does not match the problem")

// Config holds narration request settings.
type Config struct {
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// DefaultConfig returns defaults for narration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   200,
		Temperature: 0.7,
		Timeout:     8 * time.Second,
	}
}

// Narrator asks a provider for a fresh wording of a story problem.
// A nil *Narrator is valid and always declines.
type Narrator struct {
	provider llm.Provider
	cfg      Config
}

// New creates a narrator. It returns nil when provider is nil.
func New(provider llm.Provider, cfg Config) *Narrator {
	if provider == nil {
		return nil
	}
	return &Narrator{provider: provider, cfg: cfg}
}

// Enabled reports whether narration requests will be made.
func (n *Narrator) Enabled() bool {
	return n != nil && n.provider != nil
}

// Model returns the provider's model ID, or "" when disabled.
func (n *Narrator) Model() string {
	if !n.Enabled() {
		return ""
	}
	return n.provider.ModelID()
}

type storyOutput struct {
	Story  string `json:"story"`
	First  int    `json:"first"`
	Second int    `json:"second"`
}

// Narrate returns a retelling of sp in lang. Callers keep sp.StoryText
// whenever an error is returned.
func (n *Narrator) Narrate(ctx context.Context, sp problemgen.StoryProblem, lang i18n.Lang) (string, error) {
	if !n.Enabled() {
		return "", llm.ErrNotConfigured
	}
	if n.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.cfg.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, "story-narration")

	req := llm.UserRequest(systemPrompt, buildUserMessage(sp, lang), StorySchema, n.cfg.MaxTokens)
	req.Temperature = n.cfg.Temperature

	resp, err := n.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("story narration: %w", err)
	}

	var out storyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse narration: %w", err)
	}
	if err := check(out, sp.Question); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.Story), nil
}

// check verifies the echoed numbers and that both appear in the text.
// The answer must not be given away unless it coincides with an operand.
func check(out storyOutput, q problemgen.Question) error {
	if out.First != q.First || out.Second != q.Second {
		return fmt.Errorf("%w: got %d and %d, want %d and %d",
			ErrMismatch, out.First, out.Second, q.First, q.Second)
	}
	nums := numbers(out.Story)
	for _, want := range []int{q.First, q.Second} {
		if !nums[want] {
			return fmt.Errorf("%w: %d missing from story", ErrMismatch, want)
		}
	}
	if nums[q.Answer] && q.Answer != q.First && q.Answer != q.Second {
		return fmt.Errorf("%w: story reveals the answer", ErrMismatch)
	}
	return nil
}

func numbers(s string) map[int]bool {
	found := make(map[int]bool)
	fields := strings.FieldsFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	for _, f := range fields {
		if v, err := strconv.Atoi(f); err == nil {
			found[v] = true
		}
	}
	return found
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/reasontree/internal/i18n"
	"github.com/abhisek/reasontree/internal/llm"
	"github.com/abhisek/reasontree/internal/logging"
	"github.com/abhisek/reasontree/internal/narrator"
	"github.com/abhisek/reasontree/internal/problemgen"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect and try the story narration model",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which language model provider is configured",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		llmCfg, ok := llm.Discover(cfg.LLM)
		if !ok {
			fmt.Println("No provider configured. Story problems use their built-in wording.")
			fmt.Println("Set llm.provider in the config file or one of ANTHROPIC_API_KEY,")
			fmt.Println("OPENAI_API_KEY, GEMINI_API_KEY, OPENROUTER_API_KEY.")
			return nil
		}

		fmt.Printf("%-12s  %s\n", "Provider", llmCfg.Provider)
		fmt.Printf("%-12s  %s\n", "Model", modelFor(llmCfg))
		fmt.Printf("%-12s  %d attempts, %s initial wait\n", "Retry", llmCfg.Retry.MaxAttempts, llmCfg.Retry.InitialWait)
		fmt.Printf("%-12s  %d tokens, timeout %s\n", "Narration", cfg.Narration.MaxTokens, cfg.Narration.Timeout)
		if err := llmCfg.Validate(); err != nil {
			fmt.Printf("%-12s  %v\n", "Problem", err)
		}
		return nil
	},
}

var llmNarrateCmd = &cobra.Command{
	Use:   "narrate",
	Short: "Generate one story problem and ask the model to retell it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		llmCfg, ok := llm.Discover(cfg.LLM)
		if !ok {
			return llm.ErrNotConfigured
		}

		logger := logging.Discard()
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			if logger, err = logging.New(cfg.Log, cmd.ErrOrStderr()); err != nil {
				return err
			}
		}
		provider, err := llm.New(cmd.Context(), llmCfg, logger)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		lang := i18n.Default
		if v, _ := cmd.Flags().GetString("lang"); v != "" {
			if lang, err = i18n.ParseLanguage(v); err != nil {
				return err
			}
		}
		t, err := i18n.New(lang)
		if err != nil {
			return err
		}

		sp := problemgen.NewDefault().Story(cfg.Tier, problemgen.OpAny, t.Lookup)
		sep := strings.Repeat("─", 60)
		fmt.Println("TEMPLATE")
		fmt.Println(sep)
		fmt.Println(sp.StoryText)
		fmt.Printf("(%s = %d)\n", sp.Text, sp.Answer)

		story, err := narrator.New(provider, cfg.Narration).Narrate(cmd.Context(), sp, lang)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println("NARRATION (" + provider.ModelID() + ")")
		fmt.Println(sep)
		fmt.Println(story)
		return nil
	},
}

func modelFor(cfg llm.Config) string {
	switch cfg.Provider {
	case llm.ProviderAnthropic:
		return cfg.Anthropic.Model
	case llm.ProviderOpenAI:
		return cfg.OpenAI.Model
	case llm.ProviderGemini:
		return cfg.Gemini.Model
	case llm.ProviderOpenRouter:
		return cfg.OpenRouter.Model
	default:
		return "mock"
	}
}

func init() {
	llmNarrateCmd.Flags().String("lang", "", "Story language: en, ru or es")
	llmNarrateCmd.Flags().BoolP("verbose", "v", false, "Log the request to stderr")

	llmCmd.AddCommand(llmStatusCmd)
	llmCmd.AddCommand(llmNarrateCmd)
}

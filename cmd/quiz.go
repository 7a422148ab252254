package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/reasontree/internal/i18n"
	"github.com/abhisek/reasontree/internal/problemgen"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Print sample questions for a difficulty tier (no database)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		tier := cfg.Tier
		if v, _ := cmd.Flags().GetString("tier"); v != "" {
			if tier, err = problemgen.ParseTier(strings.ToLower(v)); err != nil {
				return err
			}
		}
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			return fmt.Errorf("count must be positive, got %d", count)
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

		gen := problemgen.NewDefault()
		fmt.Printf("Tier: %s (numbers up to %d)\n\n", tier, tier.MaxNumber())
		for i := range count {
			var text string
			var q problemgen.Question
			if i%3 == 2 {
				sp := gen.Story(tier, problemgen.OpAny, t.Lookup)
				q, text = sp.Question, sp.StoryText+"\n    "+sp.Text+" = ?"
			} else {
				vq := gen.Visual(tier, problemgen.OpAny)
				q = vq.Question
				text = fmt.Sprintf("%s %s = ?", vq.Object.Emoji(), vq.Text)
			}
			fmt.Printf("%2d. %s\n", i+1, text)
			fmt.Printf("    options: %v  answer: %d\n", gen.Options(q.Answer, 3), q.Answer)
		}

		seq := gen.Sequence(tier, problemgen.SequenceAny)
		fmt.Printf("\nSequence (%s): %s\n", seq.Kind, formatSequence(seq))
		return nil
	},
}

func formatSequence(seq problemgen.Sequence) string {
	parts := make([]string, len(seq.Values))
	for i, n := range seq.Values {
		if seq.IsMissing(i) {
			parts[i] = "__"
			continue
		}
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}

func init() {
	quizCmd.Flags().String("tier", "", "Difficulty tier: easy, medium or hard (defaults to config)")
	quizCmd.Flags().IntP("count", "n", 6, "Number of questions to print")
	quizCmd.Flags().String("lang", "", "Language for story problems: en, ru or es")
}

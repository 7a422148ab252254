package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/config"
	"github.com/abhisek/reasontree/internal/llm"
	"github.com/abhisek/reasontree/internal/logging"
	"github.com/abhisek/reasontree/internal/narrator"
	"github.com/abhisek/reasontree/internal/screen"
	"github.com/abhisek/reasontree/internal/screens/home"
	"github.com/abhisek/reasontree/internal/screens/welcome"
	"github.com/abhisek/reasontree/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the app",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
// Logs go to a file because the TUI owns the terminal.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logger, closer, err := logging.NewFile(cfg.Log, cfg.LogFile(dbPath))
	if err != nil {
		return err
	}
	defer closer.Close()

	actx := app.NewAppContext(ctx, app.Options{
		Repo:     st,
		Logger:   logger,
		Narrator: buildNarrator(cmd, cfg, logger),
	})
	actx.Load()

	logger.WithFields(logrus.Fields{
		"db":       dbPath,
		"language": actx.T.Language(),
		"narrator": actx.Narrator.Model(),
	}).Info("starting")

	root := welcome.New(actx, func() screen.Screen { return home.New(actx) })
	return app.Run(actx, root)
}

// buildNarrator returns nil when no language model is configured, which
// leaves story problems on their built-in wording.
func buildNarrator(cmd *cobra.Command, cfg *config.Config, logger logrus.FieldLogger) *narrator.Narrator {
	llmCfg, ok := llm.Discover(cfg.LLM)
	if !ok {
		return nil
	}
	provider, err := llm.New(cmd.Context(), llmCfg, logger.WithField("component", "llm"))
	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			fmt.Fprintln(os.Stderr, "Story narration unavailable:", err)
		}
		logger.WithError(err).Warn("llm provider not available")
		return nil
	}
	return narrator.New(provider, cfg.Narration)
}

package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reasontree/internal/llm"
	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/store"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	return rootCmd.ExecuteContext(context.Background())
}

func TestFormatSequence(t *testing.T) {
	seq := problemgen.Sequence{Values: [5]int{2, 4, 6, 8, 10}, Missing: [2]int{1, 3}}
	assert.Equal(t, "2, __, 6, __, 10", formatSequence(seq))
}

func TestReset_RequiresConfirmation(t *testing.T) {
	db := filepath.Join(t.TempDir(), "r.db")
	s, err := store.Open(db)
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), store.KeyLanguage, "es"))
	require.NoError(t, s.Close())

	err = execute(t, "reset", "--db", db)
	assert.ErrorContains(t, err, "--yes")

	require.NoError(t, execute(t, "reset", "--db", db, "--yes"))
	s, err = store.Open(db)
	require.NoError(t, err)
	defer s.Close()
	entries, err := s.Entries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStatsAndTree_EmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "s.db")
	assert.NoError(t, execute(t, "stats", "--db", db))
	assert.NoError(t, execute(t, "tree", "--db", db))
	assert.NoError(t, execute(t, "data", "--db", db))
}

func TestQuiz_RejectsUnknownTier(t *testing.T) {
	err := execute(t, "quiz", "--tier", "impossible")
	assert.ErrorIs(t, err, problemgen.ErrUnknownTier)
	assert.NoError(t, execute(t, "quiz", "--tier", "hard", "-n", "3", "--lang", "es"))
}

func TestModelFor(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.Provider = llm.ProviderGemini
	assert.Equal(t, "gemini-flash", modelFor(cfg))
}

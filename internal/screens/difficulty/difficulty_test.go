package difficulty

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reasontree/internal/app/apptest"
	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/router"
	"github.com/abhisek/reasontree/internal/screen"
)

type stubScreen struct{ tier problemgen.Tier }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return string(s.tier) }
func (s *stubScreen) Title() string                           { return "stub" }

func TestDifficulty_ReplacesWithChosenTier(t *testing.T) {
	tests := []struct {
		downs int
		want  problemgen.Tier
	}{
		{0, problemgen.TierEasy},
		{1, problemgen.TierMedium},
		{2, problemgen.TierHard},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			var got problemgen.Tier
			d := New(apptest.New(t), "Addition", func(tier problemgen.Tier) screen.Screen {
				got = tier
				return &stubScreen{tier: tier}
			})
			for range tt.downs {
				d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
			}

			_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
			require.NotNil(t, cmd)
			msg, ok := cmd().(router.ReplaceScreenMsg)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, msg.Screen.(*stubScreen).tier)
		})
	}
}

func TestDifficulty_ViewIsLocalized(t *testing.T) {
	actx := apptest.New(t)
	d := New(actx, "Addition", func(problemgen.Tier) screen.Screen { return &stubScreen{} })

	view := d.View(80, 20)
	for _, want := range []string{"Choose your level", "Easy", "Medium", "Hard"} {
		assert.True(t, strings.Contains(view, want), "view missing %q", want)
	}
	assert.Equal(t, "Addition", d.Title())
}

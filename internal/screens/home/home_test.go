package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reasontree/internal/app/apptest"
	"github.com/abhisek/reasontree/internal/i18n"
	"github.com/abhisek/reasontree/internal/router"
	"github.com/abhisek/reasontree/internal/screen"
	"github.com/abhisek/reasontree/internal/screens/difficulty"
	"github.com/abhisek/reasontree/internal/screens/labyrinth"
	"github.com/abhisek/reasontree/internal/screens/lesson"
	"github.com/abhisek/reasontree/internal/screens/menu"
	"github.com/abhisek/reasontree/internal/screens/settings"
	"github.com/abhisek/reasontree/internal/screens/stats"
)

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg")
	return msg.Screen
}

func selectItem(s screen.Screen, index int) tea.Cmd {
	for range index {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestMenuItems(t *testing.T) {
	tests := []struct {
		index int
		check func(t *testing.T, s screen.Screen)
	}{
		{0, func(t *testing.T, s screen.Screen) {
			m, ok := s.(*menu.MenuScreen)
			require.True(t, ok)
			assert.Equal(t, "Learn Math", m.Title())
		}},
		{1, func(t *testing.T, s screen.Screen) {
			m, ok := s.(*menu.MenuScreen)
			require.True(t, ok)
			assert.Equal(t, "Play Games", m.Title())
		}},
		{2, func(t *testing.T, s screen.Screen) {
			_, ok := s.(*stats.StatsScreen)
			assert.True(t, ok)
		}},
		{3, func(t *testing.T, s screen.Screen) {
			_, ok := s.(*settings.SettingsScreen)
			assert.True(t, ok)
		}},
	}
	for _, tt := range tests {
		h := New(apptest.New(t))
		tt.check(t, pushed(t, selectItem(h, tt.index)))
	}
}

func TestQuit(t *testing.T) {
	h := New(apptest.New(t))
	cmd := selectItem(h, 4)
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestLearnPath_StartsLessonAtTier(t *testing.T) {
	actx := apptest.New(t)
	learn := pushed(t, selectItem(New(actx), 0))

	picker := pushed(t, selectItem(learn, 1))
	d, ok := picker.(*difficulty.DifficultyScreen)
	require.True(t, ok)
	assert.Equal(t, "Subtraction", d.Title())

	cmd := selectItem(d, 2)
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	v, ok := msg.Screen.(*lesson.VisualScreen)
	require.True(t, ok)
	assert.Equal(t, "Subtraction", v.Title())
}

func TestGamesPath_StartsLabyrinth(t *testing.T) {
	actx := apptest.New(t)
	games := pushed(t, selectItem(New(actx), 1))
	picker := pushed(t, selectItem(games, 2))

	msg, ok := selectItem(picker, 0)().(router.ReplaceScreenMsg)
	require.True(t, ok)
	_, ok = msg.Screen.(*labyrinth.LabyrinthScreen)
	assert.True(t, ok)
}

func TestView_FollowsLanguage(t *testing.T) {
	actx := apptest.New(t)
	h := New(actx)
	assert.Contains(t, h.View(120, 40), "Learn Math")

	actx.Settings.ChangeLanguage(actx.Ctx, i18n.Spanish)
	view := h.View(120, 40)
	assert.NotContains(t, view, "Learn Math")
	assert.Equal(t, actx.T.T("menu.learn_math"), h.menu.Items[0].Label)
}

func TestView_ShowsRewards(t *testing.T) {
	actx := apptest.New(t)
	actx.Engine.AddLeaves(actx.Ctx, 3)
	actx.Engine.AddSparks(actx.Ctx, 2)

	view := New(actx).View(120, 40)
	assert.Contains(t, view, "🍃 3")
	assert.Contains(t, view, "✨ 2")
	assert.Contains(t, view, "Tree of Reason")
}

package app_test

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/app/apptest"
	"github.com/abhisek/reasontree/internal/progress"
	"github.com/abhisek/reasontree/internal/rewards"
	"github.com/abhisek/reasontree/internal/router"
	"github.com/abhisek/reasontree/internal/screen"
)

type stubScreen struct {
	title  string
	esc    bool
	closed bool
	got    []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd { return nil }

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) HandlesEsc() bool     { return s.esc }
func (s *stubScreen) Close()               { s.closed = true }

var (
	escKey   = tea.KeyPressMsg{Code: tea.KeyEscape}
	ctrlCKey = tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
)

func update(t *testing.T, m tea.Model, msg tea.Msg) (app.AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(app.AppModel)
	require.True(t, ok)
	return am, cmd
}

func TestAppModel_CtrlCQuitsAndClosesScreens(t *testing.T) {
	root := &stubScreen{title: "root"}
	m := app.NewAppModel(apptest.New(t), root)

	_, cmd := update(t, m, ctrlCKey)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, root.closed)
}

func TestAppModel_EscPopsOnlyAboveRoot(t *testing.T) {
	root := &stubScreen{title: "root"}
	m := app.NewAppModel(apptest.New(t), root)

	m, cmd := update(t, m, escKey)
	assert.Nil(t, cmd)

	child := &stubScreen{title: "child"}
	m, _ = update(t, m, router.PushScreenMsg{Screen: child})

	_, cmd = update(t, m, escKey)
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}

func TestAppModel_EscHandledByScreen(t *testing.T) {
	root := &stubScreen{title: "root"}
	m := app.NewAppModel(apptest.New(t), root)
	child := &stubScreen{title: "child", esc: true}
	m, _ = update(t, m, router.PushScreenMsg{Screen: child})

	_, cmd := update(t, m, escKey)
	assert.Nil(t, cmd)
	require.Len(t, child.got, 1)
	assert.Equal(t, escKey, child.got[0])
}

func TestAppModel_WindowSizeNotForwarded(t *testing.T) {
	root := &stubScreen{title: "root"}
	m := app.NewAppModel(apptest.New(t), root)

	update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Empty(t, root.got)
}

func TestFinishLesson(t *testing.T) {
	clock := apptest.NewClock()
	actx := apptest.New(t, apptest.WithClock(clock.Now))
	started := clock.Now()
	clock.Advance(3*time.Minute + 20*time.Second)

	actx.Attempt(progress.TypeAddition, true, "easy")
	out := actx.FinishLesson("addition_visual", 7, 10, started, nil)

	assert.True(t, out.Lesson)
	assert.Equal(t, 7, out.Score)
	assert.Equal(t, 10, out.Total)
	assert.Equal(t, rewards.LeafPerLesson, out.Leaves)
	assert.Equal(t, rewards.StageSapling, out.Stage)

	st := actx.Tracker.Stats()
	assert.Equal(t, 1, st.TotalLessons)
	assert.Equal(t, 3, st.TotalTimeSpent)
	assert.Equal(t, 1, actx.Wallet().Leaves)
}

func TestFinishGame(t *testing.T) {
	actx := apptest.New(t)
	out := actx.FinishGame(rewards.GameLostNumbers, 5, actx.Now(), []string{"x", "x"})

	assert.False(t, out.Lesson)
	assert.Equal(t, rewards.SparksForGame(rewards.GameLostNumbers, 5), out.Sparks)
	assert.Equal(t, out.Sparks, actx.Wallet().Sparks)
	assert.Equal(t, 1, actx.Tracker.Stats().TotalGames)
	assert.Equal(t, "x", out.Achievements[0])
	assert.NotContains(t, out.Achievements[1:], "x")
}

func TestStartSession(t *testing.T) {
	actx := apptest.New(t)
	actx.StartSession()
	assert.NotEmpty(t, actx.SessionID)
	assert.Equal(t, 1, actx.Tracker.Stats().SessionCount)
}

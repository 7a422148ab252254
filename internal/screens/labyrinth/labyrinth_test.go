package labyrinth

import (
	"slices"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reasontree/internal/app/apptest"
	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/progress"
	"github.com/abhisek/reasontree/internal/router"
)

func choose(t *testing.T, l *LabyrinthScreen, value int) tea.Cmd {
	t.Helper()
	idx := slices.Index(l.choices.Options, value)
	require.GreaterOrEqual(t, idx, 0)
	l.choices.Selected = idx
	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

// solveMaze answers every door of the current maze and returns the last
// command.
func solveMaze(t *testing.T, l *LabyrinthScreen) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for l.pos < len(l.maze.Path)-1 {
		cmd = choose(t, l, l.door().Answer)
	}
	return cmd
}

func TestCorrectAnswerMovesRobot(t *testing.T) {
	actx := apptest.New(t)
	l := New(actx, problemgen.TierEasy)
	door := l.maze.Path[1]

	assert.Nil(t, choose(t, l, l.door().Answer))
	assert.Equal(t, 1, l.pos)
	assert.Equal(t, door, l.maze.Path[l.pos])
	assert.Equal(t, 1, l.score)

	history := actx.Tracker.Record().AttemptHistory
	require.Len(t, history, 1)
	assert.Equal(t, progress.TypeLabyrinth, history[0].Type)
}

func TestWrongAnswerStays(t *testing.T) {
	l := New(apptest.New(t), problemgen.TierEasy)
	answer := l.door().Answer
	wrong := -1
	for _, v := range l.choices.Options {
		if v != answer {
			wrong = v
			break
		}
	}

	choose(t, l, wrong)
	assert.Equal(t, 0, l.pos)
	assert.Zero(t, l.score)
	assert.Equal(t, "Not quite, try again!", l.feedback)
}

func TestReachingExitClearsLevel(t *testing.T) {
	l := New(apptest.New(t), problemgen.TierEasy)
	first := l.maze

	cmd := solveMaze(t, l)
	require.NotNil(t, cmd)
	assert.True(t, l.busy)

	_, cmd = l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Nil(t, cmd, "input locked between levels")

	l.Update(nextLevelMsg{level: 0})
	assert.Equal(t, 1, l.level)
	assert.NotSame(t, first, l.maze)
	assert.Zero(t, l.pos)
}

func TestAllLevelsFinishGame(t *testing.T) {
	actx := apptest.New(t)
	l := New(actx, problemgen.TierEasy)
	require.Equal(t, 3, l.levels)

	var last tea.Cmd
	for level := range l.levels {
		solveMaze(t, l)
		_, last = l.Update(nextLevelMsg{level: level})
	}
	require.NotNil(t, last)
	_, ok := last().(router.ReplaceScreenMsg)
	assert.True(t, ok)

	rec := actx.Tracker.Record()
	require.Len(t, rec.GamesPlayed, 1)
	assert.Equal(t, "number_labyrinth", rec.GamesPlayed[0].ID)
	// Every path on a 4x4 grid has 6 doors.
	assert.Equal(t, 18, rec.GamesPlayed[0].Score)
	assert.Equal(t, 3, actx.Engine.State().Sparks)
}

func TestView(t *testing.T) {
	l := New(apptest.New(t), problemgen.TierEasy)
	view := l.View(100, 40)
	assert.Contains(t, view, "Level 1 of 3")
	assert.Contains(t, view, "🤖")
	assert.Contains(t, view, l.door().Question)
}

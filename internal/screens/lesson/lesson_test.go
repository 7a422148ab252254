package lesson

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reasontree/internal/app/apptest"
	"github.com/abhisek/reasontree/internal/llm"
	"github.com/abhisek/reasontree/internal/narrator"
	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/progress"
	"github.com/abhisek/reasontree/internal/router"
	"github.com/abhisek/reasontree/internal/schedule"
	"github.com/abhisek/reasontree/internal/screen"
	"github.com/abhisek/reasontree/internal/screens/results"
)

func typeAnswer(s screen.Screen, n int) {
	for _, r := range strconv.Itoa(n) {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// deliver runs cmd and hands its result to s the way the router does.
func deliver(t *testing.T, s screen.Screen, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := schedule.Unwrap(cmd())
	require.True(t, ok)
	s.Update(msg)
}

func enter(s screen.Screen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestVisual_CorrectAnswerSchedulesAdvance(t *testing.T) {
	actx := apptest.New(t)
	v := NewVisual(actx, problemgen.TierEasy, problemgen.OpAdd)

	typeAnswer(v, v.question.Answer)
	cmd := enter(v)

	require.NotNil(t, cmd)
	assert.True(t, v.answered)
	assert.Equal(t, 1, v.score)
	assert.Equal(t, "Correct!", v.feedback)

	// Input is locked while feedback shows.
	typeAnswer(v, 9)
	assert.Equal(t, strconv.Itoa(v.question.Answer), v.input.Value())

	v.Update(advanceMsg{index: 0})
	assert.Equal(t, 1, v.index)
	assert.False(t, v.answered)
	assert.Empty(t, v.input.Value())
}

func TestVisual_WrongAnswerStillAdvances(t *testing.T) {
	actx := apptest.New(t)
	v := NewVisual(actx, problemgen.TierEasy, problemgen.OpSub)

	typeAnswer(v, v.question.Answer+1)
	cmd := enter(v)

	require.NotNil(t, cmd)
	assert.Equal(t, 0, v.score)
	assert.Contains(t, v.feedback, strconv.Itoa(v.question.Answer))

	history := actx.Tracker.Record().AttemptHistory
	require.Len(t, history, 1)
	assert.Equal(t, progress.TypeSubtraction, history[0].Type)
	assert.False(t, history[0].Correct)
	assert.Equal(t, "easy", history[0].Difficulty)
}

func TestVisual_EmptyInputIsNotGraded(t *testing.T) {
	actx := apptest.New(t)
	v := NewVisual(actx, problemgen.TierEasy, problemgen.OpAdd)

	cmd := enter(v)
	assert.Nil(t, cmd)
	assert.False(t, v.answered)
	assert.Equal(t, "Not quite, try again!", v.feedback)
	assert.Zero(t, actx.Tracker.Stats().TotalAttempts)
}

func TestVisual_StaleAdvanceIgnored(t *testing.T) {
	v := NewVisual(apptest.New(t), problemgen.TierEasy, problemgen.OpAdd)
	v.Update(advanceMsg{index: 3})
	assert.Equal(t, 0, v.index)
}

func TestVisual_CompletesLesson(t *testing.T) {
	actx := apptest.New(t)
	v := NewVisual(actx, problemgen.TierMedium, problemgen.OpAdd)

	var last tea.Cmd
	for i := range QuestionsPerLesson {
		typeAnswer(v, v.question.Answer)
		require.NotNil(t, enter(v))
		_, last = v.Update(advanceMsg{index: i})
	}

	require.NotNil(t, last)
	msg, ok := last().(router.ReplaceScreenMsg)
	require.True(t, ok)
	_, ok = msg.Screen.(*results.ResultsScreen)
	assert.True(t, ok)

	rec := actx.Tracker.Record()
	require.Len(t, rec.LessonsCompleted, 1)
	assert.Equal(t, IDAdditionVisual, rec.LessonsCompleted[0].ID)
	assert.Equal(t, QuestionsPerLesson, rec.LessonsCompleted[0].Score)
	assert.Equal(t, 1, actx.Engine.State().Leaves)
	assert.Equal(t, QuestionsPerLesson, rec.Skills.Addition)
}

func TestVisual_CloseCancelsScope(t *testing.T) {
	v := NewVisual(apptest.New(t), problemgen.TierEasy, problemgen.OpAdd)
	v.Close()
	assert.True(t, v.scope.Cancelled())
}

func TestVisual_ViewShowsQuestion(t *testing.T) {
	v := NewVisual(apptest.New(t), problemgen.TierEasy, problemgen.OpAdd)
	view := v.View(100, 40)
	assert.Contains(t, view, v.question.Text+" = ?")
	assert.Contains(t, view, "Question 1 of 10")
	assert.Equal(t, "Addition", v.Title())
}

func TestObjectRows_Wraps(t *testing.T) {
	rows := strings.Split(objectRows("*", 23), "\n")
	require.Len(t, rows, 3)
	assert.Equal(t, strings.Repeat("*", 10), rows[0])
	assert.Equal(t, "***", rows[2])
}

func TestStory_HintAfterTwoWrongTries(t *testing.T) {
	actx := apptest.New(t)
	s := NewStory(actx, problemgen.TierEasy)
	wrong := s.problem.Answer + 1

	typeAnswer(s, wrong)
	assert.Nil(t, enter(s))
	assert.Empty(t, s.Hint())
	assert.Empty(t, s.input.Value())

	typeAnswer(s, wrong)
	assert.Nil(t, enter(s))
	assert.Contains(t, s.Hint(), fmt.Sprintf("%d %s %d", s.problem.First, s.problem.Op, s.problem.Second))
	assert.False(t, s.answered)

	typeAnswer(s, s.problem.Answer)
	require.NotNil(t, enter(s))
	assert.True(t, s.answered)
	assert.Equal(t, 1, s.score)
	assert.Equal(t, "Excellent!", s.feedback)

	history := actx.Tracker.Record().AttemptHistory
	require.Len(t, history, 3)
	assert.Equal(t, progress.TypeStoryProblem, history[2].Type)
	assert.Contains(t, actx.Tracker.Record().CompletedAchievements, "persistent")
}

func TestStory_SkipAdvancesWithoutRecording(t *testing.T) {
	actx := apptest.New(t)
	s := NewStory(actx, problemgen.TierEasy)

	s.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	assert.Equal(t, 1, s.index)
	assert.Zero(t, actx.Tracker.Stats().TotalAttempts)
}

func TestStory_UsesTemplateText(t *testing.T) {
	s := NewStory(apptest.New(t), problemgen.TierEasy)
	assert.NotEmpty(t, s.text)
	assert.NotContains(t, s.text, "%{")
	assert.Nil(t, s.narrate())
}

func TestStory_NarrationReplacesText(t *testing.T) {
	actx := apptest.New(t)
	s := NewStory(actx, problemgen.TierEasy)
	p := s.problem

	told := fmt.Sprintf("Once there were %d owls and then %d more owls came along.", p.First, p.Second)
	body, err := json.Marshal(map[string]any{"story": told, "first": p.First, "second": p.Second})
	require.NoError(t, err)
	actx.Narrator = narrator.New(llm.NewMockProvider(llm.MockResponse{Content: body}), narrator.DefaultConfig())

	deliver(t, s, s.narrate())
	assert.Equal(t, told, s.text)
}

func TestStory_NarrationFailureKeepsTemplate(t *testing.T) {
	actx := apptest.New(t)
	s := NewStory(actx, problemgen.TierEasy)
	template := s.text
	actx.Narrator = narrator.New(llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}}), narrator.DefaultConfig())

	deliver(t, s, s.narrate())
	assert.Equal(t, template, s.text)
}

func TestStory_StaleNarrationIgnored(t *testing.T) {
	s := NewStory(apptest.New(t), problemgen.TierEasy)
	template := s.text
	s.Update(narratedMsg{index: 5, text: "late"})
	assert.Equal(t, template, s.text)
}

func storyReply(t *testing.T, p problemgen.StoryProblem) llm.MockResponse {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"story":  fmt.Sprintf("Old story with %d and %d.", p.First, p.Second),
		"first":  p.First,
		"second": p.Second,
	})
	require.NoError(t, err)
	return llm.MockResponse{Content: body}
}

func TestStory_NarrationFromClosedScreenDropped(t *testing.T) {
	actx := apptest.New(t)
	first := NewStory(actx, problemgen.TierEasy)
	actx.Narrator = narrator.New(llm.NewMockProvider(storyReply(t, first.problem)), narrator.DefaultConfig())
	r := router.New(first)

	// The reply is already in flight when the lesson is left.
	late := first.narrate()()
	require.NotNil(t, late)

	second := NewStory(actx, problemgen.TierEasy)
	r.Update(router.ReplaceScreenMsg{Screen: second})
	require.Same(t, second, r.Active())
	template := second.text

	r.Update(late)
	assert.Equal(t, template, second.text)
	assert.Equal(t, 0, second.index)
}

func TestStory_NarrationAfterCloseDeliversNothing(t *testing.T) {
	actx := apptest.New(t)
	s := NewStory(actx, problemgen.TierEasy)
	actx.Narrator = narrator.New(llm.NewMockProvider(storyReply(t, s.problem)), narrator.DefaultConfig())

	cmd := s.narrate()
	s.Close()
	assert.Nil(t, cmd())
}

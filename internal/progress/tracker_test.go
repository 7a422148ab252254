package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reasontree/internal/store"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestTracker(t *testing.T) (*Tracker, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	logger, _ := test.NewNullLogger()
	tr := NewTracker(
		store.Quiet(mem, logger),
		WithClock(func() time.Time { return fixedNow }),
		WithLogger(logger),
	)
	return tr, mem
}

func TestRecordAttempt_StreakAfterMistake(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tr.RecordAttempt(ctx, TypeAddition, false, "easy")
	tr.RecordAttempt(ctx, TypeAddition, true, "easy")

	rec := tr.Record()
	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Equal(t, 1, rec.BestStreak)
	assert.Equal(t, 1, rec.Skills.Addition)
	require.Len(t, rec.AttemptHistory, 2)
	assert.Equal(t, fixedNow, rec.AttemptHistory[1].At)
}

func TestRecordAttempt_StreakResetKeepsBest(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	for range 4 {
		tr.RecordAttempt(ctx, TypeSubtraction, true, "medium")
	}
	tr.RecordAttempt(ctx, TypeSubtraction, false, "medium")
	tr.RecordAttempt(ctx, TypeSubtraction, true, "medium")

	rec := tr.Record()
	assert.Equal(t, 1, rec.CurrentStreak)
	assert.Equal(t, 4, rec.BestStreak)
	assert.Equal(t, 5, rec.Skills.Subtraction)
}

func TestRecordAttempt_SkillMapping(t *testing.T) {
	tests := []struct {
		qtype QuestionType
		skill Skill
	}{
		{TypeAddition, SkillAddition},
		{TypeSubtraction, SkillSubtraction},
		{TypeSequence, SkillPatternRecognition},
		{TypeLabyrinth, SkillLogicalThinking},
		{TypeStoryProblem, SkillNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.qtype), func(t *testing.T) {
			tr, _ := newTestTracker(t)
			tr.RecordAttempt(context.Background(), tt.qtype, true, "easy")
			tr.RecordAttempt(context.Background(), tt.qtype, false, "easy")

			skills := tr.Record().Skills
			total := skills.Addition + skills.Subtraction + skills.PatternRecognition + skills.LogicalThinking
			if tt.skill == SkillNone {
				assert.Zero(t, total)
				return
			}
			assert.Equal(t, 1, skills.Get(tt.skill))
			assert.Equal(t, 1, total)
		})
	}
}

func TestCompleteLessonAndGame(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	tr.CompleteLesson(ctx, "addition_visual", 8, 3)
	tr.CompleteGame(ctx, "lost_numbers", 4, 2)

	rec := tr.Record()
	require.Len(t, rec.LessonsCompleted, 1)
	require.Len(t, rec.GamesPlayed, 1)
	assert.Equal(t, Completion{ID: "addition_visual", CompletedAt: fixedNow, Score: 8, Duration: 3}, rec.LessonsCompleted[0])
	assert.Equal(t, 12, rec.TotalScore)
	assert.Equal(t, 5, rec.TotalTimeSpent)
}

func TestTotalsNeverDecrease(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	prevScore, prevTime := 0, 0
	for i := range 6 {
		switch {
		case i%3 == 2:
			tr.CompleteLesson(ctx, "addition_visual", -i, -1)
			tr.CompleteGame(ctx, "labyrinth", -5, -3)
		case i%2 == 0:
			tr.CompleteLesson(ctx, "story_problems", i, 1)
		default:
			tr.CompleteGame(ctx, "find_pair", 0, 0)
		}
		tr.RecordAttempt(ctx, TypeAddition, i%3 == 0, "easy")

		rec := tr.Record()
		assert.GreaterOrEqual(t, rec.TotalScore, prevScore)
		assert.GreaterOrEqual(t, rec.TotalTimeSpent, prevTime)
		prevScore, prevTime = rec.TotalScore, rec.TotalTimeSpent
	}
}

func TestStartSession(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	id1 := tr.StartSession(ctx)
	id2 := tr.StartSession(ctx)

	_, err := uuid.Parse(id1)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)

	rec := tr.Record()
	assert.Equal(t, 2, rec.SessionCount)
	require.NotNil(t, rec.LastSessionAt)
	assert.Equal(t, fixedNow, *rec.LastSessionAt)
	assert.Equal(t, id2, rec.LastSessionID)
}

func TestStats(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()

	s := tr.Stats()
	assert.Zero(t, s.Accuracy, "no attempts means zero accuracy")

	tr.RecordAttempt(ctx, TypeAddition, true, "easy")
	tr.RecordAttempt(ctx, TypeAddition, true, "easy")
	tr.RecordAttempt(ctx, TypeAddition, false, "easy")
	tr.CompleteLesson(ctx, "addition_visual", 2, 1)

	before := tr.Record()
	s = tr.Stats()
	assert.Equal(t, 67, s.Accuracy)
	assert.Equal(t, 3, s.TotalAttempts)
	assert.Equal(t, 2, s.CorrectAnswers)
	assert.Equal(t, 1, s.TotalLessons)
	assert.Equal(t, 2, s.BestStreak)
	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, before, tr.Record(), "stats must not mutate the record")
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.Save(ctx, store.KeyProgress, map[string]any{
		"total_score":   40,
		"session_count": 3,
	}))

	tr := NewTracker(store.Quiet(mem, nil))
	tr.Load(ctx)

	rec := tr.Record()
	assert.Equal(t, 40, rec.TotalScore)
	assert.Equal(t, 3, rec.SessionCount)
	assert.NotNil(t, rec.AttemptHistory)
	assert.NotNil(t, rec.CompletedAchievements)
}

func TestLoad_NullAchievementLog(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	require.NoError(t, mem.Save(ctx, store.KeyAchievements, nil))

	tr := NewTracker(store.Quiet(mem, nil), WithClock(func() time.Time { return fixedNow }))
	tr.Load(ctx)

	require.True(t, tr.UnlockAchievement(ctx, "persistent"))
	at, ok := tr.UnlockedAt("persistent")
	assert.True(t, ok)
	assert.Equal(t, fixedNow, at)
}

func TestCompletion_NegativeValuesCountAsZero(t *testing.T) {
	tr, _ := newTestTracker(t)
	ctx := context.Background()
	tr.CompleteLesson(ctx, "addition_visual", -4, -2)

	rec := tr.Record()
	require.Len(t, rec.LessonsCompleted, 1)
	assert.Zero(t, rec.LessonsCompleted[0].Score)
	assert.Zero(t, rec.LessonsCompleted[0].Duration)
	assert.Zero(t, rec.TotalScore)
	assert.Zero(t, rec.TotalTimeSpent)
}

func TestLoad_FailureKeepsDefaults(t *testing.T) {
	mem := store.NewMemory()
	mem.FailWith = errors.New("corrupt")
	logger, hook := test.NewNullLogger()

	tr := NewTracker(store.Quiet(mem, logger))
	tr.Load(context.Background())

	assert.Equal(t, DefaultRecord(), tr.Record())
	assert.NotEmpty(t, hook.AllEntries())
}

func TestSaveFailureKeepsMemoryState(t *testing.T) {
	mem := store.NewMemory()
	mem.FailWith = errors.New("disk full")
	tr := NewTracker(store.Quiet(mem, nil))

	tr.RecordAttempt(context.Background(), TypeAddition, true, "easy")
	assert.Equal(t, 1, tr.Record().CurrentStreak)
}

func TestPersistRoundTrip(t *testing.T) {
	tr, mem := newTestTracker(t)
	ctx := context.Background()
	tr.RecordAttempt(ctx, TypeSequence, true, "hard")
	tr.CompleteGame(ctx, "lost_numbers", 3, 2)

	again := NewTracker(store.Quiet(mem, nil))
	again.Load(ctx)
	assert.Equal(t, tr.Record(), again.Record())
}

func TestRecord_ReturnsCopy(t *testing.T) {
	tr, _ := newTestTracker(t)
	tr.RecordAttempt(context.Background(), TypeAddition, true, "easy")

	rec := tr.Record()
	rec.AttemptHistory[0].Correct = false
	rec.CompletedAchievements = append(rec.CompletedAchievements, "bogus")

	assert.True(t, tr.Record().AttemptHistory[0].Correct)
	assert.NotContains(t, tr.Record().CompletedAchievements, "bogus")
}

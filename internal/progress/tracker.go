package progress

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/reasontree/internal/store"
)

// Tracker accumulates the learner's progress and persists it after every
// change. In-memory state is updated first; a failed save is logged by the
// persister and the in-memory state is kept.
//
// A Tracker is owned by the UI loop and is not safe for concurrent use.
type Tracker struct {
	record       Record
	unlockedAt   map[string]time.Time
	persister    store.Persister
	logger       logrus.FieldLogger
	now          func() time.Time
	achievements AchievementSet
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the logger used for progress events.
func WithLogger(l logrus.FieldLogger) Option {
	return func(t *Tracker) { t.logger = l }
}

// NewTracker creates a tracker holding the default record.
// Call Load to restore persisted progress.
func NewTracker(p store.Persister, opts ...Option) *Tracker {
	t := &Tracker{
		record:       DefaultRecord(),
		unlockedAt:   make(map[string]time.Time),
		persister:    p,
		logger:       logrus.StandardLogger(),
		now:          time.Now,
		achievements: Achievements,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load merges the persisted record and achievement log over the defaults.
// An absent or unreadable record leaves the defaults in place.
func (t *Tracker) Load(ctx context.Context) {
	rec := DefaultRecord()
	if t.persister.Load(ctx, store.KeyProgress, &rec) {
		t.record = normalize(rec)
	}

	log := make(map[string]time.Time)
	if t.persister.Load(ctx, store.KeyAchievements, &log) && log != nil {
		t.unlockedAt = log
	}
}

// RecordAttempt appends an attempt, updates the streaks and, for a correct
// answer, the matching skill counter. It returns achievements unlocked by
// this attempt.
func (t *Tracker) RecordAttempt(ctx context.Context, qtype QuestionType, correct bool, difficulty string) []string {
	r := &t.record
	r.AttemptHistory = append(r.AttemptHistory, Attempt{
		Type:       qtype,
		Correct:    correct,
		Difficulty: difficulty,
		At:         t.now(),
	})

	if correct {
		r.CurrentStreak++
		r.Skills.inc(qtype.Skill())
	} else {
		r.CurrentStreak = 0
	}
	r.BestStreak = max(r.BestStreak, r.CurrentStreak)

	unlocked := t.evaluate()
	t.save(ctx)
	return unlocked
}

// CompleteLesson appends a lesson completion and adds score and duration
// (minutes) to the totals. Negative values count as zero.
func (t *Tracker) CompleteLesson(ctx context.Context, id string, score, duration int) []string {
	t.record.LessonsCompleted = append(t.record.LessonsCompleted, t.completion(id, score, duration))
	return t.finishCompletion(ctx, score, duration)
}

// CompleteGame appends a game completion and adds score and duration
// (minutes) to the totals.
func (t *Tracker) CompleteGame(ctx context.Context, id string, score, duration int) []string {
	t.record.GamesPlayed = append(t.record.GamesPlayed, t.completion(id, score, duration))
	return t.finishCompletion(ctx, score, duration)
}

func (t *Tracker) completion(id string, score, duration int) Completion {
	return Completion{ID: id, CompletedAt: t.now(), Score: max(0, score), Duration: max(0, duration)}
}

func (t *Tracker) finishCompletion(ctx context.Context, score, duration int) []string {
	t.record.TotalScore += max(0, score)
	t.record.TotalTimeSpent += max(0, duration)
	unlocked := t.evaluate()
	t.save(ctx)
	return unlocked
}

// StartSession increments the session count, stamps the session time and
// returns a fresh session ID.
func (t *Tracker) StartSession(ctx context.Context) string {
	now := t.now()
	id := uuid.NewString()
	t.record.SessionCount++
	t.record.LastSessionAt = &now
	t.record.LastSessionID = id

	t.logger.WithFields(logrus.Fields{
		"session_id": id,
		"count":      t.record.SessionCount,
	}).Info("session started")

	t.save(ctx)
	return id
}

// UnlockAchievement marks id as unlocked. It reports false if it already was.
func (t *Tracker) UnlockAchievement(ctx context.Context, id string) bool {
	if !t.unlock(id) {
		return false
	}
	t.save(ctx)
	return true
}

func (t *Tracker) unlock(id string) bool {
	if lo.Contains(t.record.CompletedAchievements, id) {
		return false
	}
	t.record.CompletedAchievements = append(t.record.CompletedAchievements, id)
	t.unlockedAt[id] = t.now()
	t.logger.WithField("achievement", id).Info("achievement unlocked")
	return true
}

func (t *Tracker) evaluate() []string {
	ids := t.achievements.Evaluate(t.record)
	for _, id := range ids {
		t.unlock(id)
	}
	return ids
}

// UnlockedAt returns when id was unlocked.
func (t *Tracker) UnlockedAt(id string) (time.Time, bool) {
	at, ok := t.unlockedAt[id]
	return at, ok
}

// Stats derives summary numbers from the record without changing it.
func (t *Tracker) Stats() Stats {
	r := t.record
	total := len(r.AttemptHistory)
	correct := lo.CountBy(r.AttemptHistory, func(a Attempt) bool { return a.Correct })

	accuracy := 0
	if total > 0 {
		accuracy = int(math.Round(float64(correct) / float64(total) * 100))
	}

	return Stats{
		TotalLessons:   len(r.LessonsCompleted),
		TotalGames:     len(r.GamesPlayed),
		TotalScore:     r.TotalScore,
		TotalAttempts:  total,
		CorrectAnswers: correct,
		Accuracy:       accuracy,
		CurrentStreak:  r.CurrentStreak,
		BestStreak:     r.BestStreak,
		TotalTimeSpent: r.TotalTimeSpent,
		SessionCount:   r.SessionCount,
		Skills:         r.Skills,
		Achievements:   len(r.CompletedAchievements),
	}
}

// Record returns a copy of the current record.
func (t *Tracker) Record() Record {
	return t.record.clone()
}

func (t *Tracker) save(ctx context.Context) {
	t.persister.Save(ctx, store.KeyProgress, t.record)
	if len(t.unlockedAt) > 0 {
		t.persister.Save(ctx, store.KeyAchievements, t.unlockedAt)
	}
}

// normalize replaces nil slices left by a stored "null".
func normalize(r Record) Record {
	if r.LessonsCompleted == nil {
		r.LessonsCompleted = []Completion{}
	}
	if r.GamesPlayed == nil {
		r.GamesPlayed = []Completion{}
	}
	if r.AttemptHistory == nil {
		r.AttemptHistory = []Attempt{}
	}
	if r.CompletedAchievements == nil {
		r.CompletedAchievements = []string{}
	}
	return r
}

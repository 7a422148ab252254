package app

import (
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/progress"
	"github.com/abhisek/reasontree/internal/rewards"
)

// Outcome summarises a finished lesson or game for the results screen.
type Outcome struct {
	Lesson bool
	Score  int
	Total  int

	Leaves   int
	NewStage bool
	Stage    rewards.Stage
	Sparks   int

	// Achievements lists IDs unlocked during the activity, in order.
	Achievements []string
}

// Attempt records one graded answer and returns any achievements it
// unlocked.
func (a *AppContext) Attempt(qtype progress.QuestionType, correct bool, tier problemgen.Tier) []string {
	return a.Tracker.RecordAttempt(a.Ctx, qtype, correct, string(tier))
}

// FinishLesson records the lesson and grants its leaf.
func (a *AppContext) FinishLesson(id string, score, total int, started time.Time, unlocked []string) Outcome {
	unlocked = append(unlocked, a.Tracker.CompleteLesson(a.Ctx, id, score, a.minutesSince(started))...)
	res := a.Engine.AddLeaves(a.Ctx, rewards.LeafPerLesson)

	a.Logger.WithFields(logrus.Fields{
		"lesson": id,
		"score":  score,
		"total":  total,
	}).Info("lesson complete")

	return Outcome{
		Lesson:       true,
		Score:        score,
		Total:        total,
		Leaves:       res.Leaves,
		NewStage:     res.NewStage,
		Stage:        a.Engine.State().Stage,
		Achievements: lo.Uniq(unlocked),
	}
}

// FinishGame records the game and grants its sparks.
func (a *AppContext) FinishGame(game rewards.Game, score int, started time.Time, unlocked []string) Outcome {
	unlocked = append(unlocked, a.Tracker.CompleteGame(a.Ctx, string(game), score, a.minutesSince(started))...)
	sparks := rewards.SparksForGame(game, score)
	a.Engine.AddSparks(a.Ctx, sparks)

	a.Logger.WithFields(logrus.Fields{
		"game":   game,
		"score":  score,
		"sparks": sparks,
	}).Info("game complete")

	return Outcome{
		Score:        score,
		Sparks:       sparks,
		Stage:        a.Engine.State().Stage,
		Achievements: lo.Uniq(unlocked),
	}
}

// minutesSince returns whole minutes elapsed since started.
func (a *AppContext) minutesSince(started time.Time) int {
	return max(0, int(a.now().Sub(started)/time.Minute))
}

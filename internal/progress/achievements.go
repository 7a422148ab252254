package progress

import "github.com/samber/lo"

// Achievement is a milestone unlocked once a record meets its requirement.
type Achievement struct {
	ID          string
	Requirement string
	Threshold   int

	met func(r Record, threshold int) bool
}

// Met reports whether r satisfies the achievement.
func (a Achievement) Met(r Record) bool {
	return a.met(r, a.Threshold)
}

// AchievementSet is an ordered list of achievements.
type AchievementSet []Achievement

// Achievements are the milestones the tracker checks after every change.
var Achievements = AchievementSet{
	{
		ID:          "first_step",
		Requirement: "complete_first_lesson",
		Threshold:   1,
		met: func(r Record, n int) bool {
			return len(r.LessonsCompleted) >= n
		},
	},
	{
		ID:          "pattern_seeker",
		Requirement: "solve_sequences",
		Threshold:   5,
		met: func(r Record, n int) bool {
			return r.Skills.PatternRecognition >= n
		},
	},
	{
		ID:          "mathematician",
		Requirement: "correct_streak",
		Threshold:   3,
		met: func(r Record, n int) bool {
			return r.BestStreak >= n
		},
	},
	{
		ID:          "persistent",
		Requirement: "retry_after_mistake",
		Threshold:   1,
		met: func(r Record, n int) bool {
			return retriesAfterMistake(r.AttemptHistory) >= n
		},
	},
}

// Evaluate returns the IDs of achievements r meets but has not unlocked yet.
func (s AchievementSet) Evaluate(r Record) []string {
	var ids []string
	for _, a := range s {
		if lo.Contains(r.CompletedAchievements, a.ID) {
			continue
		}
		if a.Met(r) {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// Find returns the achievement with the given ID.
func (s AchievementSet) Find(id string) (Achievement, bool) {
	return lo.Find(s, func(a Achievement) bool { return a.ID == id })
}

// retriesAfterMistake counts correct attempts that directly follow an
// incorrect attempt of the same type.
func retriesAfterMistake(history []Attempt) int {
	n := 0
	for i := 1; i < len(history); i++ {
		prev, cur := history[i-1], history[i]
		if !prev.Correct && cur.Correct && prev.Type == cur.Type {
			n++
		}
	}
	return n
}

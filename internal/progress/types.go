package progress

import "time"

// QuestionType identifies what kind of question an attempt answered.
type QuestionType string

const (
	TypeAddition     QuestionType = "addition"
	TypeSubtraction  QuestionType = "subtraction"
	TypeSequence     QuestionType = "sequence"
	TypeLabyrinth    QuestionType = "labyrinth"
	TypeStoryProblem QuestionType = "story_problem"
)

// Skill is a per-skill counter tracked on the record.
type Skill string

const (
	SkillNone               Skill = ""
	SkillAddition           Skill = "addition"
	SkillSubtraction        Skill = "subtraction"
	SkillPatternRecognition Skill = "pattern_recognition"
	SkillLogicalThinking    Skill = "logical_thinking"
)

// Skill returns the counter a correct attempt of this type increments.
// Story problems are not tracked.
func (t QuestionType) Skill() Skill {
	switch t {
	case TypeAddition:
		return SkillAddition
	case TypeSubtraction:
		return SkillSubtraction
	case TypeSequence:
		return SkillPatternRecognition
	case TypeLabyrinth:
		return SkillLogicalThinking
	case TypeStoryProblem:
		return SkillNone
	default:
		return SkillNone
	}
}

// Skills holds the per-skill correct-answer counters.
type Skills struct {
	Addition           int `json:"addition"`
	Subtraction        int `json:"subtraction"`
	PatternRecognition int `json:"pattern_recognition"`
	LogicalThinking    int `json:"logical_thinking"`
}

// Get returns the counter for s.
func (s Skills) Get(skill Skill) int {
	switch skill {
	case SkillAddition:
		return s.Addition
	case SkillSubtraction:
		return s.Subtraction
	case SkillPatternRecognition:
		return s.PatternRecognition
	case SkillLogicalThinking:
		return s.LogicalThinking
	}
	return 0
}

func (s *Skills) inc(skill Skill) {
	switch skill {
	case SkillAddition:
		s.Addition++
	case SkillSubtraction:
		s.Subtraction++
	case SkillPatternRecognition:
		s.PatternRecognition++
	case SkillLogicalThinking:
		s.LogicalThinking++
	}
}

// Completion records one finished lesson or game.
type Completion struct {
	ID          string    `json:"id"`
	CompletedAt time.Time `json:"completed_at"`
	Score       int       `json:"score"`

	// Duration is in minutes.
	Duration int `json:"duration"`
}

// Attempt records one graded answer.
type Attempt struct {
	Type       QuestionType `json:"type"`
	Correct    bool         `json:"correct"`
	Difficulty string       `json:"difficulty"`
	At         time.Time    `json:"timestamp"`
}

// Record is the persisted progress of the single local learner.
// It only ever grows: entries are appended and counters incremented.
type Record struct {
	LessonsCompleted []Completion `json:"lessons_completed"`
	GamesPlayed      []Completion `json:"games_played"`

	TotalScore int `json:"total_score"`

	// TotalTimeSpent is in minutes.
	TotalTimeSpent int `json:"total_time_spent"`

	SessionCount  int        `json:"session_count"`
	LastSessionAt *time.Time `json:"last_session_date"`
	LastSessionID string     `json:"last_session_id,omitempty"`

	CurrentStreak int `json:"current_streak"`
	BestStreak    int `json:"best_streak"`

	Skills Skills `json:"skills_tracked"`

	AttemptHistory        []Attempt `json:"attempt_history"`
	CompletedAchievements []string  `json:"completed_achievements"`
}

// DefaultRecord returns the record of a learner who has done nothing yet.
func DefaultRecord() Record {
	return Record{
		LessonsCompleted:      []Completion{},
		GamesPlayed:           []Completion{},
		AttemptHistory:        []Attempt{},
		CompletedAchievements: []string{},
	}
}

func (r Record) clone() Record {
	c := r
	c.LessonsCompleted = append([]Completion{}, r.LessonsCompleted...)
	c.GamesPlayed = append([]Completion{}, r.GamesPlayed...)
	c.AttemptHistory = append([]Attempt{}, r.AttemptHistory...)
	c.CompletedAchievements = append([]string{}, r.CompletedAchievements...)
	if r.LastSessionAt != nil {
		t := *r.LastSessionAt
		c.LastSessionAt = &t
	}
	return c
}

// Stats is a read-only projection of a Record.
type Stats struct {
	TotalLessons   int
	TotalGames     int
	TotalScore     int
	TotalAttempts  int
	CorrectAnswers int

	// Accuracy is the rounded percentage of correct attempts, 0 without attempts.
	Accuracy int

	CurrentStreak  int
	BestStreak     int
	TotalTimeSpent int
	SessionCount   int
	Skills         Skills
	Achievements   int
}

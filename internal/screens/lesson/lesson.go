// Package lesson implements the learning screens: counting-object
// addition and subtraction, and story problems.
package lesson

import (
	"time"

	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/progress"
)

const (
	// QuestionsPerLesson is the length of every lesson.
	QuestionsPerLesson = 10

	// FeedbackDelay is how long a graded visual question stays on screen.
	FeedbackDelay = 800 * time.Millisecond

	// StoryFeedbackDelay is how long a solved story problem stays on screen.
	StoryFeedbackDelay = FeedbackDelay + 200*time.Millisecond

	// HintAfterAttempts is the number of wrong tries before the hint shows.
	HintAfterAttempts = 2
)

// Lesson IDs recorded on completion.
const (
	IDAdditionVisual    = "addition_visual"
	IDSubtractionVisual = "subtraction_visual"
	IDStoryProblems     = "story_problems"
)

// advanceMsg moves past question index once its feedback has been shown.
type advanceMsg struct {
	index int
}

// visualKind maps an operation to its lesson ID, attempt type and
// translation keys.
type visualKind struct {
	id     string
	qtype  progress.QuestionType
	title  string
	prompt string
}

func kindFor(op problemgen.Operation) visualKind {
	if op == problemgen.OpSub {
		return visualKind{
			id:     IDSubtractionVisual,
			qtype:  progress.TypeSubtraction,
			title:  "learning.subtraction",
			prompt: "learning.take_away",
		}
	}
	return visualKind{
		id:     IDAdditionVisual,
		qtype:  progress.TypeAddition,
		title:  "learning.addition",
		prompt: "learning.combine_objects",
	}
}

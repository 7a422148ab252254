package lesson

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/progress"
	"github.com/abhisek/reasontree/internal/router"
	"github.com/abhisek/reasontree/internal/schedule"
	"github.com/abhisek/reasontree/internal/screen"
	"github.com/abhisek/reasontree/internal/screens/results"
	"github.com/abhisek/reasontree/internal/ui/components"
	"github.com/abhisek/reasontree/internal/ui/layout"
)

// narratedMsg carries a retelling for question index.
type narratedMsg struct {
	index int
	text  string
	err   error
}

// StoryScreen asks QuestionsPerLesson story problems. A wrong answer may
// be retried; the hint appears after HintAfterAttempts wrong tries and a
// question can be skipped.
type StoryScreen struct {
	actx  *app.AppContext
	tier  problemgen.Tier
	scope *schedule.Scope

	index    int
	problem  problemgen.StoryProblem
	text     string
	input    components.AnswerInput
	attempts int
	showHint bool

	answered bool
	correct  bool
	feedback string

	score    int
	started  time.Time
	unlocked []string
}

var (
	_ screen.Screen          = (*StoryScreen)(nil)
	_ screen.Closer          = (*StoryScreen)(nil)
	_ screen.KeyHintProvider = (*StoryScreen)(nil)
)

// NewStory creates a story-problem lesson at tier.
func NewStory(actx *app.AppContext, tier problemgen.Tier) *StoryScreen {
	s := &StoryScreen{
		actx:    actx,
		tier:    tier,
		scope:   schedule.NewScope(),
		started: actx.Now(),
		input:   components.NewAnswerInput(actx.T.T("learning.type_answer")),
	}
	s.nextQuestion()
	return s
}

func (s *StoryScreen) nextQuestion() {
	s.problem = s.actx.Gen.Story(s.tier, problemgen.OpAny, s.actx.T.Lookup)
	s.text = s.problem.StoryText
	s.input.Reset()
	s.attempts = 0
	s.showHint = false
	s.answered = false
	s.correct = false
	s.feedback = ""
}

func (s *StoryScreen) Init() tea.Cmd {
	return tea.Batch(s.input.Init(), s.narrate())
}

func (s *StoryScreen) Close() {
	s.scope.Cancel()
}

func (s *StoryScreen) Title() string {
	return s.actx.T.T("learning.story_problems")
}

func (s *StoryScreen) KeyHints() []layout.KeyHint {
	t := s.actx.T
	return []layout.KeyHint{
		{Key: "Enter", Description: t.T("common.check")},
		{Key: "S", Description: t.T("common.skip")},
		{Key: "Esc", Description: t.T("common.back")},
	}
}

// narrate asks the narrator for a retelling of the current problem. The
// template text stays when no narrator is configured or the call fails.
// Closing the screen cancels the request and drops its reply.
func (s *StoryScreen) narrate() tea.Cmd {
	n := s.actx.Narrator
	if !n.Enabled() {
		return nil
	}
	index, problem, lang := s.index, s.problem, s.actx.T.Language()
	return s.scope.Do(func(ctx context.Context) tea.Msg {
		text, err := n.Narrate(ctx, problem, lang)
		return narratedMsg{index: index, text: text, err: err}
	})
}

func (s *StoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case narratedMsg:
		if msg.index != s.index {
			return s, nil
		}
		if msg.err != nil {
			s.actx.Logger.WithError(msg.err).Debug("story narration unavailable")
			return s, nil
		}
		s.text = msg.text
		return s, nil

	case advanceMsg:
		if msg.index != s.index {
			return s, nil
		}
		return s, s.advance()

	case tea.KeyPressMsg:
		if s.answered {
			return s, nil
		}
		switch msg.String() {
		case "enter":
			return s, s.submit()
		case "s":
			return s, s.advance()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *StoryScreen) submit() tea.Cmd {
	t := s.actx.T
	if _, ok := problemgen.ParseAnswer(s.input.Value()); !ok {
		s.feedback = t.T("common.incorrect")
		return nil
	}

	s.attempts++
	s.correct = s.input.Check(s.problem.Answer)
	s.unlocked = append(s.unlocked, s.actx.Attempt(progress.TypeStoryProblem, s.correct, s.tier)...)

	if !s.correct {
		s.feedback = t.T("feedback.almost")
		s.input.Reset()
		if s.attempts >= HintAfterAttempts {
			s.showHint = true
		}
		return nil
	}

	s.answered = true
	s.input.Submit(true)
	s.score++
	s.feedback = t.T("feedback.excellent")
	return s.scope.After(StoryFeedbackDelay, advanceMsg{index: s.index})
}

func (s *StoryScreen) advance() tea.Cmd {
	s.index++
	if s.index >= QuestionsPerLesson {
		out := s.actx.FinishLesson(IDStoryProblems, s.score, QuestionsPerLesson, s.started, s.unlocked)
		return router.Replace(results.New(s.actx, s.Title(), out))
	}
	s.nextQuestion()
	return s.narrate()
}

// Hint returns the hint text, or "" while it is hidden.
func (s *StoryScreen) Hint() string {
	if !s.showHint {
		return ""
	}
	return s.actx.T.T("story_problems.hint",
		"first", s.problem.First,
		"op", string(s.problem.Op),
		"second", s.problem.Second)
}

func (s *StoryScreen) View(width, height int) string {
	t := s.actx.T

	question := s.text
	if s.actx.LargeText() {
		question = s.text + "\n\n" + components.BigText(s.problem.Text+" = ?")
	}

	return renderLesson(lessonView{
		width:    width,
		height:   height,
		counter:  t.T("game_ui.question", "current", s.index+1, "total", QuestionsPerLesson),
		score:    t.T("game_ui.score", "score", s.score),
		prompt:   "📖",
		question: question,
		input:    s.input.View(),
		hint:     s.Hint(),
		feedback: s.feedback,
		correct:  s.correct,
		percent:  s.index * 100 / QuestionsPerLesson,
	})
}

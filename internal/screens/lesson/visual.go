package lesson

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/router"
	"github.com/abhisek/reasontree/internal/schedule"
	"github.com/abhisek/reasontree/internal/screen"
	"github.com/abhisek/reasontree/internal/screens/results"
	"github.com/abhisek/reasontree/internal/ui/components"
	"github.com/abhisek/reasontree/internal/ui/layout"
)

// VisualScreen asks QuestionsPerLesson questions drawn with countable
// objects. Every graded answer advances after FeedbackDelay, right or
// wrong.
type VisualScreen struct {
	actx  *app.AppContext
	tier  problemgen.Tier
	op    problemgen.Operation
	kind  visualKind
	scope *schedule.Scope

	index    int
	question problemgen.VisualQuestion
	input    components.AnswerInput

	answered bool
	correct  bool
	feedback string

	score    int
	started  time.Time
	unlocked []string
}

var (
	_ screen.Screen          = (*VisualScreen)(nil)
	_ screen.Closer          = (*VisualScreen)(nil)
	_ screen.KeyHintProvider = (*VisualScreen)(nil)
)

// NewVisual creates a lesson for op (OpAdd or OpSub) at tier.
func NewVisual(actx *app.AppContext, tier problemgen.Tier, op problemgen.Operation) *VisualScreen {
	v := &VisualScreen{
		actx:    actx,
		tier:    tier,
		op:      op,
		kind:    kindFor(op),
		scope:   schedule.NewScope(),
		started: actx.Now(),
		input:   components.NewAnswerInput(actx.T.T("learning.type_answer")),
	}
	v.nextQuestion()
	return v
}

func (v *VisualScreen) nextQuestion() {
	v.question = v.actx.Gen.Visual(v.tier, v.op)
	v.input.Reset()
	v.answered = false
	v.correct = false
	v.feedback = ""
}

func (v *VisualScreen) Init() tea.Cmd {
	return v.input.Init()
}

func (v *VisualScreen) Close() {
	v.scope.Cancel()
}

func (v *VisualScreen) Title() string {
	return v.actx.T.T(v.kind.title)
}

func (v *VisualScreen) KeyHints() []layout.KeyHint {
	t := v.actx.T
	return []layout.KeyHint{
		{Key: "Enter", Description: t.T("common.check")},
		{Key: "Esc", Description: t.T("common.back")},
	}
}

func (v *VisualScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if msg.index != v.index {
			return v, nil
		}
		return v, v.advance()

	case tea.KeyPressMsg:
		if v.answered {
			return v, nil
		}
		if msg.String() == "enter" {
			return v, v.submit()
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *VisualScreen) submit() tea.Cmd {
	t := v.actx.T
	if _, ok := problemgen.ParseAnswer(v.input.Value()); !ok {
		v.feedback = t.T("common.incorrect")
		return nil
	}

	v.correct = v.input.Check(v.question.Answer)
	v.answered = true
	v.input.Submit(v.correct)
	v.unlocked = append(v.unlocked, v.actx.Attempt(v.kind.qtype, v.correct, v.tier)...)

	if v.correct {
		v.score++
		v.feedback = t.T("common.correct")
	} else {
		v.feedback = t.T("common.answer_was", "answer", v.question.Answer)
	}
	return v.scope.After(FeedbackDelay, advanceMsg{index: v.index})
}

func (v *VisualScreen) advance() tea.Cmd {
	v.index++
	if v.index >= QuestionsPerLesson {
		out := v.actx.FinishLesson(v.kind.id, v.score, QuestionsPerLesson, v.started, v.unlocked)
		return router.Replace(results.New(v.actx, v.Title(), out))
	}
	v.nextQuestion()
	return nil
}

func (v *VisualScreen) View(width, height int) string {
	t := v.actx.T
	q := v.question.Question

	question := q.Text + " = ?"
	if v.actx.LargeText() {
		question = components.BigText(question)
	}

	return renderLesson(lessonView{
		width:    width,
		height:   height,
		counter:  t.T("game_ui.question", "current", v.index+1, "total", QuestionsPerLesson),
		score:    t.T("game_ui.score", "score", v.score),
		prompt:   t.T(v.kind.prompt),
		picture:  renderObjects(v.question),
		question: question,
		input:    v.input.View(),
		feedback: v.feedback,
		correct:  v.correct,
		percent:  v.index * 100 / QuestionsPerLesson,
	})
}

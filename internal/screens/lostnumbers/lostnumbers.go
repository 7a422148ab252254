// Package lostnumbers implements the sequence gap-filling game.
package lostnumbers

import (
	"slices"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/progress"
	"github.com/abhisek/reasontree/internal/rewards"
	"github.com/abhisek/reasontree/internal/router"
	"github.com/abhisek/reasontree/internal/schedule"
	"github.com/abhisek/reasontree/internal/screen"
	"github.com/abhisek/reasontree/internal/screens/results"
	"github.com/abhisek/reasontree/internal/ui/components"
	"github.com/abhisek/reasontree/internal/ui/layout"
	"github.com/abhisek/reasontree/internal/ui/theme"
)

const (
	// Rounds is the number of sequences per game.
	Rounds = 5

	// gapDistractors is the number of wrong options offered per gap.
	gapDistractors = 5

	gapDelay      = 500 * time.Millisecond
	roundDelay    = 1000 * time.Millisecond
	feedbackClear = 800 * time.Millisecond
)

type nextGapMsg struct{ round int }

type nextRoundMsg struct{ round int }

type clearFeedbackMsg struct{ mistake int }

// LostNumbersScreen shows Rounds sequences with two hidden terms. The gaps
// are filled left to right by picking from the options; a round scores
// once both gaps are found.
type LostNumbersScreen struct {
	actx  *app.AppContext
	tier  problemgen.Tier
	scope *schedule.Scope

	round   int
	seq     problemgen.Sequence
	gap     int
	filled  [2]bool
	choices components.Choices

	feedback string
	correct  bool
	mistakes int
	busy     bool

	score    int
	started  time.Time
	unlocked []string
}

var (
	_ screen.Screen          = (*LostNumbersScreen)(nil)
	_ screen.Closer          = (*LostNumbersScreen)(nil)
	_ screen.KeyHintProvider = (*LostNumbersScreen)(nil)
)

// New starts a game at tier.
func New(actx *app.AppContext, tier problemgen.Tier) *LostNumbersScreen {
	l := &LostNumbersScreen{
		actx:    actx,
		tier:    tier,
		scope:   schedule.NewScope(),
		started: actx.Now(),
	}
	l.nextSequence()
	return l
}

func (l *LostNumbersScreen) nextSequence() {
	l.seq = l.actx.Gen.Sequence(l.tier, problemgen.SequenceAny)
	l.gap = 0
	l.filled = [2]bool{}
	l.feedback = ""
	l.busy = false
	l.setOptions()
}

func (l *LostNumbersScreen) setOptions() {
	opts := l.actx.Gen.Options(l.seq.Answers[l.gap], gapDistractors)
	slices.Sort(opts)
	l.choices = components.NewChoices(opts)
}

func (l *LostNumbersScreen) Init() tea.Cmd {
	return nil
}

func (l *LostNumbersScreen) Close() {
	l.scope.Cancel()
}

func (l *LostNumbersScreen) Title() string {
	return l.actx.T.T("games.lost_numbers")
}

func (l *LostNumbersScreen) KeyHints() []layout.KeyHint {
	t := l.actx.T
	return []layout.KeyHint{
		{Key: "←→", Description: t.T("common.navigate")},
		{Key: "Enter", Description: t.T("common.select")},
		{Key: "Esc", Description: t.T("common.back")},
	}
}

func (l *LostNumbersScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case nextGapMsg:
		if msg.round == l.round {
			l.gap = 1
			l.feedback = ""
			l.busy = false
			l.setOptions()
		}
		return l, nil

	case nextRoundMsg:
		if msg.round != l.round {
			return l, nil
		}
		return l, l.advance()

	case clearFeedbackMsg:
		if msg.mistake == l.mistakes && !l.busy {
			l.feedback = ""
		}
		return l, nil

	case tea.KeyPressMsg:
		if l.busy {
			return l, nil
		}
		var picked int
		l.choices, picked = l.choices.Update(msg)
		if picked >= 0 {
			return l, l.pick(l.choices.Value(picked))
		}
	}
	return l, nil
}

func (l *LostNumbersScreen) pick(n int) tea.Cmd {
	t := l.actx.T
	correct := n == l.seq.Answers[l.gap]
	l.unlocked = append(l.unlocked, l.actx.Attempt(progress.TypeSequence, correct, l.tier)...)
	l.correct = correct

	if !correct {
		l.mistakes++
		l.feedback = t.T("common.incorrect")
		return l.scope.After(feedbackClear, clearFeedbackMsg{mistake: l.mistakes})
	}

	l.filled[l.gap] = true
	l.feedback = t.T("feedback.excellent")
	l.busy = true
	if l.gap == 0 {
		return l.scope.After(gapDelay, nextGapMsg{round: l.round})
	}
	l.score++
	return l.scope.After(roundDelay, nextRoundMsg{round: l.round})
}

func (l *LostNumbersScreen) advance() tea.Cmd {
	l.round++
	if l.round >= Rounds {
		out := l.actx.FinishGame(rewards.GameLostNumbers, l.score, l.started, l.unlocked)
		return router.Replace(results.New(l.actx, l.Title(), out))
	}
	l.nextSequence()
	return nil
}

// renderSequence draws the terms, with the active gap highlighted.
func (l *LostNumbersScreen) renderSequence() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(6).
		Align(lipgloss.Center)

	cells := make([]string, 0, problemgen.SequenceLength)
	for i, v := range l.seq.Values {
		switch {
		case !l.seq.IsMissing(i):
			cells = append(cells, box.Foreground(theme.Text).Render(strconv.Itoa(v)))
		case l.filledAt(i):
			cells = append(cells, box.Foreground(theme.Success).BorderForeground(theme.Success).Bold(true).Render(strconv.Itoa(v)))
		case l.seq.Missing[l.gap] == i:
			cells = append(cells, box.Foreground(theme.Accent).BorderForeground(theme.Accent).Bold(true).Render("?"))
		default:
			cells = append(cells, box.Foreground(theme.TextDim).Render("?"))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

func (l *LostNumbersScreen) filledAt(i int) bool {
	for g, idx := range l.seq.Missing {
		if idx == i && l.filled[g] {
			return true
		}
	}
	return false
}

func (l *LostNumbersScreen) View(width, height int) string {
	t := l.actx.T
	cw := components.ContentWidth(width)

	top := lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.T("games.round", "current", l.round+1, "total", Rounds)) +
		"   " + lipgloss.NewStyle().Foreground(theme.Spark).Render(t.T("game_ui.score", "score", l.score))

	feedback := " "
	if l.feedback != "" {
		style := theme.Incorrect
		if l.correct {
			style = theme.Correct
		}
		feedback = style.Render(l.feedback)
	}

	card := lipgloss.JoinVertical(lipgloss.Center,
		theme.Body.Render(t.T("games.complete_sequence")),
		"",
		l.renderSequence(),
		"",
		theme.Hint.Render(t.T("games.pick_gap")),
		"",
		l.choices.View(),
	)

	content := lipgloss.JoinVertical(lipgloss.Center,
		top,
		"",
		components.Card(card, cw),
		"",
		feedback,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Package findpair implements the memory game that matches equations with
// their answers.
package findpair

import (
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/problemgen"
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
	columns = 4

	matchDelay  = 500 * time.Millisecond
	flipBack    = 1000 * time.Millisecond
	finishDelay = 1000 * time.Millisecond
)

type card struct {
	pairID   int
	text     string
	equation bool
	flipped  bool
	matched  bool
}

type matchMsg struct{ a, b int }

type flipBackMsg struct{ a, b int }

type finishMsg struct{}

// FindPairScreen lays out an equation card and an answer card for every
// pair, face down. Two flipped cards of the same pair stay matched; any
// other two flip back.
type FindPairScreen struct {
	actx  *app.AppContext
	tier  problemgen.Tier
	scope *schedule.Scope

	cards    []card
	cursor   int
	selected []int
	pairs    int
	matched  int
	moves    int
	done     bool

	score   int
	started time.Time
}

var (
	_ screen.Screen          = (*FindPairScreen)(nil)
	_ screen.Closer          = (*FindPairScreen)(nil)
	_ screen.KeyHintProvider = (*FindPairScreen)(nil)
)

// New deals the tier's PairCount pairs.
func New(actx *app.AppContext, tier problemgen.Tier) *FindPairScreen {
	pairs := actx.Gen.Pairs(tier, tier.Config().PairCount)

	cards := make([]card, 0, 2*len(pairs))
	for _, p := range pairs {
		cards = append(cards,
			card{pairID: p.ID, text: p.Equation, equation: true},
			card{pairID: p.ID, text: strconv.Itoa(p.Answer)},
		)
	}
	problemgen.Shuffle(actx.Gen, cards)

	return &FindPairScreen{
		actx:    actx,
		tier:    tier,
		scope:   schedule.NewScope(),
		cards:   cards,
		pairs:   len(pairs),
		started: actx.Now(),
	}
}

func (f *FindPairScreen) Init() tea.Cmd {
	return nil
}

func (f *FindPairScreen) Close() {
	f.scope.Cancel()
}

func (f *FindPairScreen) Title() string {
	return f.actx.T.T("games.find_pair")
}

func (f *FindPairScreen) KeyHints() []layout.KeyHint {
	t := f.actx.T
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: t.T("common.navigate")},
		{Key: "Enter", Description: t.T("common.select")},
		{Key: "Esc", Description: t.T("common.back")},
	}
}

func (f *FindPairScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case matchMsg:
		f.cards[msg.a].matched = true
		f.cards[msg.b].matched = true
		f.selected = nil
		f.matched++
		f.score++
		if f.matched == f.pairs {
			f.done = true
			return f, f.scope.After(finishDelay, finishMsg{})
		}
		return f, nil

	case flipBackMsg:
		f.cards[msg.a].flipped = false
		f.cards[msg.b].flipped = false
		f.selected = nil
		return f, nil

	case finishMsg:
		out := f.actx.FinishGame(rewards.GameFindPair, f.score, f.started, nil)
		return f, router.Replace(results.New(f.actx, f.Title(), out))

	case tea.KeyPressMsg:
		return f, f.handleKey(msg.String())
	}
	return f, nil
}

func (f *FindPairScreen) handleKey(key string) tea.Cmd {
	n := len(f.cards)
	switch key {
	case "left", "h":
		if f.cursor > 0 {
			f.cursor--
		}
	case "right", "l", "tab":
		if f.cursor < n-1 {
			f.cursor++
		}
	case "up", "k":
		if f.cursor-columns >= 0 {
			f.cursor -= columns
		}
	case "down", "j":
		if f.cursor+columns < n {
			f.cursor += columns
		}
	case "enter", "space":
		return f.flip(f.cursor)
	}
	return nil
}

// flip turns card i face up. At most two cards are face up at once.
func (f *FindPairScreen) flip(i int) tea.Cmd {
	if f.done || len(f.selected) >= 2 {
		return nil
	}
	c := &f.cards[i]
	if c.flipped || c.matched {
		return nil
	}
	c.flipped = true
	f.selected = append(f.selected, i)
	if len(f.selected) < 2 {
		return nil
	}

	f.moves++
	a, b := f.selected[0], f.selected[1]
	if f.cards[a].pairID == f.cards[b].pairID {
		return f.scope.After(matchDelay, matchMsg{a: a, b: b})
	}
	return f.scope.After(flipBack, flipBackMsg{a: a, b: b})
}

func (f *FindPairScreen) renderCard(i int) string {
	c := f.cards[i]
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(9).
		Align(lipgloss.Center)

	label := "🃏"
	switch {
	case c.matched:
		style = style.Foreground(theme.Success).BorderForeground(theme.Success)
		label = c.text
	case c.flipped:
		style = style.Foreground(theme.Text).BorderForeground(theme.Accent).Bold(true)
		label = c.text
	default:
		style = style.Foreground(theme.TextDim).BorderForeground(theme.Border)
	}
	if i == f.cursor {
		style = style.BorderForeground(theme.Primary).BorderStyle(lipgloss.ThickBorder())
	}
	return style.Render(label)
}

func (f *FindPairScreen) View(width, height int) string {
	t := f.actx.T

	var rows []string
	for start := 0; start < len(f.cards); start += columns {
		end := min(start+columns, len(f.cards))
		row := make([]string, 0, columns)
		for i := start; i < end; i++ {
			row = append(row, f.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	status := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		t.T("games.pairs_found", "found", f.matched, "total", f.pairs))

	content := lipgloss.JoinVertical(lipgloss.Center,
		components.Banner(t.T("games.match_cards"), theme.Title, components.ContentWidth(width)),
		status,
		"",
		strings.Join(rows, "\n"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

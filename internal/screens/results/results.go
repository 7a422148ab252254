// Package results shows what a finished lesson or game earned.
package results

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/router"
	"github.com/abhisek/reasontree/internal/screen"
	"github.com/abhisek/reasontree/internal/ui/components"
	"github.com/abhisek/reasontree/internal/ui/layout"
	"github.com/abhisek/reasontree/internal/ui/theme"
)

// ResultsScreen displays an activity outcome.
type ResultsScreen struct {
	actx    *app.AppContext
	title   string
	outcome app.Outcome
}

var (
	_ screen.Screen          = (*ResultsScreen)(nil)
	_ screen.KeyHintProvider = (*ResultsScreen)(nil)
)

// New creates a ResultsScreen for the activity named title.
func New(actx *app.AppContext, title string, outcome app.Outcome) *ResultsScreen {
	return &ResultsScreen{actx: actx, title: title, outcome: outcome}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return r.title
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: r.actx.T.T("common.next")},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "space":
			return r, router.Pop
		}
	}
	return r, nil
}

// Lines returns the outcome messages in display order.
func (r *ResultsScreen) Lines() []string {
	t := r.actx.T
	o := r.outcome

	var lines []string
	if o.Lesson {
		lines = append(lines,
			t.T("feedback.lesson_complete", "score", o.Score, "total", o.Total),
			"🍃 "+t.T("feedback.leaves_earned", "count", o.Leaves))
		if o.NewStage {
			lines = append(lines, o.Stage.Icon()+" "+t.T("feedback.new_stage", "stage", t.T("tree."+string(o.Stage))))
		}
	} else {
		lines = append(lines, t.T("feedback.game_complete", "score", o.Score))
		if o.Sparks > 0 {
			lines = append(lines, "✨ "+t.T("feedback.sparks_earned", "count", o.Sparks))
		}
	}
	for _, id := range o.Achievements {
		lines = append(lines, "🏆 "+t.T("feedback.achievement", "name", t.T("achievements."+id)))
	}
	return lines
}

func (r *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	lines := r.Lines()

	var body strings.Builder
	body.WriteString(theme.Title.Render(lines[0]))
	for _, line := range lines[1:] {
		body.WriteString("\n\n")
		body.WriteString(theme.Body.Render(line))
	}

	sections := []string{
		components.Banner(r.actx.T.T("results.title"), theme.Title, cw),
		"",
	}
	if !layout.IsCompact(width, height) {
		sections = append(sections, components.RenderTree(r.outcome.Stage), "")
	}
	sections = append(sections, components.Card(body.String(), cw))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

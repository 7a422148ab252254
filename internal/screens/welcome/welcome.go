package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/i18n"
	"github.com/abhisek/reasontree/internal/router"
	"github.com/abhisek/reasontree/internal/schedule"
	"github.com/abhisek/reasontree/internal/screen"
	"github.com/abhisek/reasontree/internal/ui/components"
	"github.com/abhisek/reasontree/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// sparkle frames cycle around the tree
var sparkleFrames = []string{"✦", "✧"}

type tickMsg struct{}

// WelcomeScreen greets the child with a growing-tree animation, starts the
// play session and hands over to the home screen.
type WelcomeScreen struct {
	actx         *app.AppContext
	homeFactory  func() screen.Screen
	scope        *schedule.Scope
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var (
	_ screen.Screen = (*WelcomeScreen)(nil)
	_ screen.Closer = (*WelcomeScreen)(nil)
)

// New creates a WelcomeScreen that will transition to the screen produced
// by homeFactory. With reduced motion the animation is skipped.
func New(actx *app.AppContext, homeFactory func() screen.Screen) *WelcomeScreen {
	w := &WelcomeScreen{
		actx:        actx,
		homeFactory: homeFactory,
		scope:       schedule.NewScope(),
	}
	if actx.ReducedMotion() {
		w.elapsed = totalDur
	}
	return w
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	if w.elapsed >= totalDur {
		return nil
	}
	return w.scope.After(tickInterval, tickMsg{})
}

func (w *WelcomeScreen) Close() {
	w.scope.Cancel()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		if w.actx.ReducedMotion() {
			return w, nil
		}
		return w, w.scope.After(tickInterval, tickMsg{})

	case tea.KeyPressMsg:
		// The first key during the animation only fast-forwards it.
		if w.elapsed < totalDur {
			w.elapsed = totalDur
			return w, nil
		}
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	w.actx.StartSession()
	return router.Replace(w.homeFactory())
}

func (w *WelcomeScreen) View(width, height int) string {
	t := w.actx.T
	var sections []string

	rendered := components.RenderTree(w.actx.Engine.State().Stage)

	if w.elapsed >= phase1End && !w.actx.ReducedMotion() {
		sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
		s1 := lipgloss.NewStyle().Foreground(theme.Spark).Render(sparkle)
		s2 := lipgloss.NewStyle().Foreground(theme.Leaf).Render(sparkle)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 0 {
			lines[0] = s1 + "  " + lines[0] + "  " + s2
		}
		if len(lines) > 2 {
			lines[2] = s2 + "  " + lines[2] + "  " + s1
		}
		rendered = strings.Join(lines, "\n")
	}
	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		english := t.Language() == i18n.English
		sections = append(sections,
			"",
			RenderBanner(t.T("app.name"), english, width),
			"",
			theme.Title.Render(t.T("welcome.greeting")),
			theme.Body.Render(t.T("welcome.question")),
			"",
		)

		button := lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Primary).
			Padding(0, 3).
			Render("▸ " + t.T("welcome.lets_start"))
		sections = append(sections, button, "", theme.Hint.Render(t.T("common.press_any_key")))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

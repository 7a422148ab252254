package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/reasontree/internal/app"
	"github.com/abhisek/reasontree/internal/problemgen"
	"github.com/abhisek/reasontree/internal/router"
	"github.com/abhisek/reasontree/internal/screen"
	"github.com/abhisek/reasontree/internal/screens/difficulty"
	"github.com/abhisek/reasontree/internal/screens/findpair"
	"github.com/abhisek/reasontree/internal/screens/labyrinth"
	"github.com/abhisek/reasontree/internal/screens/lesson"
	"github.com/abhisek/reasontree/internal/screens/lostnumbers"
	"github.com/abhisek/reasontree/internal/screens/menu"
	"github.com/abhisek/reasontree/internal/screens/settings"
	"github.com/abhisek/reasontree/internal/screens/stats"
	"github.com/abhisek/reasontree/internal/ui/components"
	"github.com/abhisek/reasontree/internal/ui/layout"
)

// activity is a menu entry that starts after a difficulty pick.
type activity struct {
	key   string
	icon  string
	start difficulty.Start
}

// HomeScreen is the main menu.
type HomeScreen struct {
	actx *app.AppContext
	menu components.Menu
	keys []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(actx *app.AppContext) *HomeScreen {
	keys := []string{"menu.learn_math", "menu.play_games", "menu.my_progress", "menu.settings", "common.quit"}
	icons := []string{"📚", "🎮", "🌳", "⚙", "👋"}

	actions := []func() tea.Cmd{
		func() tea.Cmd { return router.Push(learnMenu(actx)) },
		func() tea.Cmd { return router.Push(gamesMenu(actx)) },
		func() tea.Cmd { return router.Push(stats.New(actx)) },
		func() tea.Cmd { return router.Push(settings.New(actx)) },
		func() tea.Cmd { return tea.Quit },
	}

	items := make([]components.MenuItem, len(keys))
	for i := range keys {
		items[i] = components.MenuItem{Label: actx.T.T(keys[i]), Icon: icons[i], Action: actions[i]}
	}

	return &HomeScreen{
		actx: actx,
		menu: components.NewMenu(items),
		keys: keys,
	}
}

func learnMenu(actx *app.AppContext) screen.Screen {
	return activityMenu(actx, "menu.learn_math", "menu.choose_lesson", []activity{
		{"learning.addition", "➕", func(tier problemgen.Tier) screen.Screen {
			return lesson.NewVisual(actx, tier, problemgen.OpAdd)
		}},
		{"learning.subtraction", "➖", func(tier problemgen.Tier) screen.Screen {
			return lesson.NewVisual(actx, tier, problemgen.OpSub)
		}},
		{"learning.story_problems", "📖", func(tier problemgen.Tier) screen.Screen {
			return lesson.NewStory(actx, tier)
		}},
	})
}

func gamesMenu(actx *app.AppContext) screen.Screen {
	return activityMenu(actx, "menu.play_games", "menu.choose_game", []activity{
		{"games.lost_numbers", "🔢", func(tier problemgen.Tier) screen.Screen {
			return lostnumbers.New(actx, tier)
		}},
		{"games.find_pair", "🎴", func(tier problemgen.Tier) screen.Screen {
			return findpair.New(actx, tier)
		}},
		{"games.number_labyrinth", "🧩", func(tier problemgen.Tier) screen.Screen {
			return labyrinth.New(actx, tier)
		}},
	})
}

func activityMenu(actx *app.AppContext, titleKey, subtitleKey string, acts []activity) screen.Screen {
	t := actx.T
	items := make([]components.MenuItem, 0, len(acts))
	for _, a := range acts {
		items = append(items, components.MenuItem{
			Label: t.T(a.key),
			Icon:  a.icon,
			Action: func() tea.Cmd {
				return router.Push(difficulty.New(actx, t.T(a.key), a.start))
			},
		})
	}
	return menu.New(t.T(titleKey), t.T(subtitleKey), items)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	t := h.actx.T
	compact := layout.IsCompact(width, height+8)
	cw := components.ContentWidth(width)

	// Labels follow the language, which may change in settings.
	for i, key := range h.keys {
		h.menu.Items[i].Label = t.T(key)
	}

	st := h.actx.Engine.State()
	sections := []string{renderTitle(t.T("app.name"), t.T("menu.title"), cw)}
	if !compact {
		sections = append(sections, renderTreeBox(st.Stage, cw))
	}
	sections = append(sections,
		renderStatsBar(st, t.T("tree."+string(st.Stage)), cw, compact),
		lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(h.menu.View(buttonWidth)),
	)
	if h.actx.Narrator.Enabled() && !compact {
		sections = append(sections, renderNarrationNote(h.actx.Narrator.Model(), cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return h.actx.T.T("menu.home")
}
